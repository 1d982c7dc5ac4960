package visits

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Clinic Visits"

// exportBounds caps the per-section column counts so one outlier visit
// cannot blow up the row width. Every row is padded to these bounds.
type exportBounds struct {
	MaxMedicines int
	MaxReferrals int
	MaxFollowUps int
}

func computeExportBounds(visits []models.Visit) exportBounds {
	var bounds exportBounds
	for _, visit := range visits {
		if len(visit.Medicines) > bounds.MaxMedicines {
			bounds.MaxMedicines = len(visit.Medicines)
		}
		if len(visit.Referrals) > bounds.MaxReferrals {
			bounds.MaxReferrals = len(visit.Referrals)
		}
		for _, referral := range visit.Referrals {
			if len(referral.FollowUpVisits) > bounds.MaxFollowUps {
				bounds.MaxFollowUps = len(referral.FollowUpVisits)
			}
		}
	}
	if bounds.MaxMedicines > constvars.ExportMaxMedicines {
		bounds.MaxMedicines = constvars.ExportMaxMedicines
	}
	if bounds.MaxReferrals > constvars.ExportMaxReferrals {
		bounds.MaxReferrals = constvars.ExportMaxReferrals
	}
	if bounds.MaxFollowUps > constvars.ExportMaxFollowUps {
		bounds.MaxFollowUps = constvars.ExportMaxFollowUps
	}
	return bounds
}

func buildExportHeader(bounds exportBounds) []interface{} {
	header := []interface{}{
		"Token No", "Date", "Time", "Emp No", "Employee Name", "Emirates ID",
		"Insurance ID", "TR Location", "Mobile Number", "Location",
		"Nature Of Case", "Case Category", "Nurse Assessment",
		"Symptom Duration", "Temperature", "Blood Pressure", "Heart Rate",
		"Others", "Sent To", "Provider Name", "Doctor Name",
		"Primary Diagnosis", "Secondary Diagnosis", "Sick Leave Status",
		"Sick Leave Start", "Sick Leave End", "Total Sick Leave Days",
		"Remarks", "Visit Status", "Final Remarks", "IP Admission Required",
		"Created By",
	}
	for i := 1; i <= bounds.MaxMedicines; i++ {
		header = append(header,
			fmt.Sprintf("Medicine %d Name", i),
			fmt.Sprintf("Medicine %d Course", i),
			fmt.Sprintf("Medicine %d Expiry", i),
		)
	}
	for i := 1; i <= bounds.MaxReferrals; i++ {
		header = append(header,
			fmt.Sprintf("Referral %d Code", i),
			fmt.Sprintf("Referral %d Type", i),
			fmt.Sprintf("Referral %d Hospital", i),
			fmt.Sprintf("Referral %d Visit Date", i),
			fmt.Sprintf("Referral %d Specialist", i),
			fmt.Sprintf("Referral %d Doctor", i),
			fmt.Sprintf("Referral %d Investigation Reports", i),
			fmt.Sprintf("Referral %d Primary Diagnosis", i),
			fmt.Sprintf("Referral %d Secondary Diagnosis", i),
			fmt.Sprintf("Referral %d Nurse Remarks", i),
			fmt.Sprintf("Referral %d Insurance Approval", i),
			fmt.Sprintf("Referral %d Follow Up Required", i),
		)
		for j := 1; j <= bounds.MaxFollowUps; j++ {
			header = append(header,
				fmt.Sprintf("Referral %d Follow Up %d Date", i, j),
				fmt.Sprintf("Referral %d Follow Up %d Remarks", i, j),
			)
		}
	}
	return header
}

func buildExportRow(visit models.Visit, bounds exportBounds) []interface{} {
	row := []interface{}{
		visit.TokenNo,
		visit.Date.Format(constvars.DateFormat),
		visit.Time,
		visit.EmpNo,
		visit.EmployeeName,
		visit.EmiratesID,
		visit.InsuranceID,
		visit.TrLocation,
		visit.MobileNumber,
		visit.LocationID,
		visit.NatureOfCase,
		visit.CaseCategory,
		strings.Join(visit.NurseAssessment, ", "),
		visit.SymptomDuration,
		formatFloatPtr(visit.Temperature),
		visit.BloodPressure,
		formatIntPtr(visit.HeartRate),
		visit.Others,
		visit.SentTo,
		visit.ProviderName,
		visit.DoctorName,
		visit.PrimaryDiagnosis,
		strings.Join(visit.SecondaryDiagnosis, ", "),
		visit.SickLeaveStatus,
		formatDatePtr(visit.SickLeaveStartDate),
		formatDatePtr(visit.SickLeaveEndDate),
		visit.TotalSickLeaveDays,
		visit.Remarks,
		visit.VisitStatus,
		visit.FinalRemarks,
		formatYesNo(visit.IPAdmissionRequired),
		visit.CreatedByName,
	}

	for i := 0; i < bounds.MaxMedicines; i++ {
		if i < len(visit.Medicines) {
			medicine := visit.Medicines[i]
			row = append(row, medicine.Name, medicine.Course, formatDatePtr(medicine.ExpiryDate))
		} else {
			row = append(row, "", "", "")
		}
	}

	for i := 0; i < bounds.MaxReferrals; i++ {
		var referral models.Referral
		if i < len(visit.Referrals) {
			referral = visit.Referrals[i]
			row = append(row,
				referral.ReferralCode,
				referral.ReferralType,
				referral.ReferredToHospital,
				formatDatePtr(referral.VisitDateReferral),
				referral.SpecialistType,
				referral.DoctorName,
				referral.InvestigationReports,
				referral.PrimaryDiagnosisReferral,
				strings.Join(referral.SecondaryDiagnosisReferral, ", "),
				referral.NurseRemarksReferral,
				formatYesNo(referral.InsuranceApprovalRequested),
				formatYesNo(referral.FollowUpRequired),
			)
		} else {
			row = append(row, "", "", "", "", "", "", "", "", "", "", "", "")
		}
		for j := 0; j < bounds.MaxFollowUps; j++ {
			if j < len(referral.FollowUpVisits) {
				followUp := referral.FollowUpVisits[j]
				row = append(row, formatDatePtr(followUp.VisitDate), followUp.VisitRemarks)
			} else {
				row = append(row, "", "")
			}
		}
	}
	return row
}

// buildExportWorkbook flattens the visit collection into one fixed-width
// sheet. Rows keep storage order; bounds are computed in a first pass so
// every row has an identical column count.
func buildExportWorkbook(visits []models.Visit) ([]byte, error) {
	bounds := computeExportBounds(visits)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, exceptions.ErrExcelBuild(err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, exceptions.ErrExcelBuild(err)
	}

	header := buildExportHeader(bounds)
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, exceptions.ErrExcelBuild(err)
	}

	for i, visit := range visits {
		row := buildExportRow(visit, bounds)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, exceptions.ErrExcelBuild(err)
		}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, exceptions.ErrExcelBuild(err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, exceptions.ErrExcelBuild(err)
	}
	return buffer.Bytes(), nil
}

func formatYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func formatDatePtr(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(constvars.DateFormat)
}

func formatFloatPtr(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *value)
}

func formatIntPtr(value *int) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}
