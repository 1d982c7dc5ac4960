package visits

import (
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"
)

func parseDatePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func toMedicines(entries []requests.MedicineEntry) []models.Medicine {
	if len(entries) == 0 {
		return nil
	}
	medicines := make([]models.Medicine, 0, len(entries))
	for _, entry := range entries {
		medicines = append(medicines, models.Medicine{
			Name:       entry.Name,
			Course:     entry.Course,
			ExpiryDate: parseDatePtr(entry.ExpiryDate),
		})
	}
	return medicines
}

func toFollowUpVisits(entries []requests.FollowUpVisitEntry) []models.FollowUpVisit {
	if len(entries) == 0 {
		return nil
	}
	followUps := make([]models.FollowUpVisit, 0, len(entries))
	for _, entry := range entries {
		followUps = append(followUps, models.FollowUpVisit{
			VisitDate:    parseDatePtr(entry.VisitDate),
			VisitRemarks: entry.VisitRemarks,
		})
	}
	return followUps
}

func toReferrals(entries []requests.ReferralEntry) []models.Referral {
	if len(entries) == 0 {
		return nil
	}
	referrals := make([]models.Referral, 0, len(entries))
	for _, entry := range entries {
		referrals = append(referrals, models.Referral{
			ReferralCode:               entry.ReferralCode,
			ReferralType:               entry.ReferralType,
			ReferredToHospital:         entry.ReferredToHospital,
			VisitDateReferral:          parseDatePtr(entry.VisitDateReferral),
			SpecialistType:             entry.SpecialistType,
			DoctorName:                 entry.DoctorName,
			InvestigationReports:       entry.InvestigationReports,
			PrimaryDiagnosisReferral:   entry.PrimaryDiagnosisReferral,
			SecondaryDiagnosisReferral: entry.SecondaryDiagnosisReferral,
			NurseRemarksReferral:       entry.NurseRemarksReferral,
			InsuranceApprovalRequested: entry.InsuranceApprovalRequested,
			FollowUpRequired:           entry.FollowUpRequired,
			FollowUpVisits:             toFollowUpVisits(entry.FollowUpVisits),
		})
	}
	return referrals
}
