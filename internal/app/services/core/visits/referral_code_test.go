package visits

import (
	"testing"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyReferralCodes(t *testing.T) {
	t.Run("Derives Shared Code From Token", func(t *testing.T) {
		referrals := []models.Referral{
			{ReferredToHospital: "City Hospital"},
			{ReferredToHospital: "Specialist Clinic"},
		}

		ApplyReferralCodes("DIC2-2602-0007", referrals)

		assert.Equal(t, "DIC2-2602-0007-REF", referrals[0].ReferralCode)
		assert.Equal(t, "DIC2-2602-0007-REF", referrals[1].ReferralCode, "all code-less referrals of one visit share the same code")
	})

	t.Run("Never Overwrites Existing Code", func(t *testing.T) {
		referrals := []models.Referral{
			{ReferredToHospital: "City Hospital", ReferralCode: "LEGACY-001"},
			{ReferredToHospital: "City Hospital"},
		}

		ApplyReferralCodes("DIC2-2602-0007", referrals)

		assert.Equal(t, "LEGACY-001", referrals[0].ReferralCode)
		assert.Equal(t, "DIC2-2602-0007-REF", referrals[1].ReferralCode)
	})

	t.Run("Skips Referrals Without Hospital", func(t *testing.T) {
		referrals := []models.Referral{
			{ReferralType: "Internal"},
		}

		ApplyReferralCodes("DIC2-2602-0007", referrals)

		assert.Empty(t, referrals[0].ReferralCode, "a referral without a hospital gets no code")
	})

	t.Run("Idempotent", func(t *testing.T) {
		referrals := []models.Referral{
			{ReferredToHospital: "City Hospital"},
		}

		ApplyReferralCodes("DIC2-2602-0007", referrals)
		ApplyReferralCodes("DIC2-2602-0007", referrals)

		assert.Equal(t, "DIC2-2602-0007-REF", referrals[0].ReferralCode, "re-applying must not stack suffixes")
	})

	t.Run("Empty Slice", func(t *testing.T) {
		assert.NotPanics(t, func() {
			ApplyReferralCodes("DIC2-2602-0007", nil)
		})
	})
}
