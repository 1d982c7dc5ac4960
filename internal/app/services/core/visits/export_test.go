package visits

import (
	"bytes"
	"testing"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func makeMedicines(n int) []models.Medicine {
	medicines := make([]models.Medicine, n)
	for i := range medicines {
		medicines[i] = models.Medicine{Name: "Paracetamol", Course: "5 days"}
	}
	return medicines
}

func makeReferrals(n int) []models.Referral {
	referrals := make([]models.Referral, n)
	for i := range referrals {
		referrals[i] = models.Referral{ReferredToHospital: "City Hospital"}
	}
	return referrals
}

func TestComputeExportBounds(t *testing.T) {
	t.Run("Tracks Maximum Per Section", func(t *testing.T) {
		visits := []models.Visit{
			{Medicines: makeMedicines(2), Referrals: makeReferrals(1)},
			{Medicines: makeMedicines(4), Referrals: []models.Referral{
				{FollowUpVisits: []models.FollowUpVisit{{}, {}, {}}},
				{},
				{},
			}},
		}

		bounds := computeExportBounds(visits)

		assert.Equal(t, 4, bounds.MaxMedicines)
		assert.Equal(t, 3, bounds.MaxReferrals)
		assert.Equal(t, 3, bounds.MaxFollowUps)
	})

	t.Run("Caps Outliers", func(t *testing.T) {
		visits := []models.Visit{
			{Medicines: makeMedicines(25), Referrals: makeReferrals(9)},
		}

		bounds := computeExportBounds(visits)

		assert.Equal(t, constvars.ExportMaxMedicines, bounds.MaxMedicines)
		assert.Equal(t, constvars.ExportMaxReferrals, bounds.MaxReferrals)
	})

	t.Run("Empty Collection", func(t *testing.T) {
		bounds := computeExportBounds(nil)

		assert.Zero(t, bounds.MaxMedicines)
		assert.Zero(t, bounds.MaxReferrals)
		assert.Zero(t, bounds.MaxFollowUps)
	})
}

func TestBuildExportRow(t *testing.T) {
	date := time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC)

	t.Run("Row Width Matches Header For Every Visit", func(t *testing.T) {
		visits := []models.Visit{
			{TokenNo: "DIC2-2602-0001", Date: date, Medicines: makeMedicines(3), Referrals: makeReferrals(2)},
			{TokenNo: "DIC2-2602-0002", Date: date},
		}
		bounds := computeExportBounds(visits)
		header := buildExportHeader(bounds)

		for _, visit := range visits {
			row := buildExportRow(visit, bounds)
			assert.Len(t, row, len(header), "every row must be padded to the header width")
		}
	})

	t.Run("Missing Sections Padded With Blanks", func(t *testing.T) {
		visits := []models.Visit{
			{TokenNo: "DIC2-2602-0001", Date: date, Medicines: makeMedicines(2)},
			{TokenNo: "DIC2-2602-0002", Date: date},
		}
		bounds := computeExportBounds(visits)

		row := buildExportRow(visits[1], bounds)

		assert.Equal(t, "", row[len(row)-1], "trailing cells of a sparse visit stay blank")
		assert.Equal(t, "DIC2-2602-0002", row[0])
	})

	t.Run("Booleans Rendered As Yes No", func(t *testing.T) {
		visit := models.Visit{
			TokenNo:             "DIC2-2602-0001",
			Date:                date,
			IPAdmissionRequired: true,
		}
		bounds := computeExportBounds([]models.Visit{visit})

		row := buildExportRow(visit, bounds)

		assert.Contains(t, row, "Yes")
	})
}

func TestBuildExportWorkbook(t *testing.T) {
	date := time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC)

	visits := []models.Visit{
		{TokenNo: "DIC2-2602-0001", Date: date, EmpNo: "EMP-1", Referrals: makeReferrals(1)},
		{TokenNo: "DIC2-2602-0002", Date: date, EmpNo: "EMP-2"},
	}

	content, err := buildExportWorkbook(visits)
	assert.NoError(t, err)
	assert.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	assert.NoError(t, err)
	assert.Len(t, rows, 3, "header plus one row per visit")
	assert.Equal(t, "Token No", rows[0][0])
	assert.Equal(t, "DIC2-2602-0001", rows[1][0], "rows keep storage order")
	assert.Equal(t, "DIC2-2602-0002", rows[2][0])
}
