package visits

import (
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
)

// ApplyReferralCodes fills referralCode on every referral that names a
// hospital and has no code yet. All code-less referrals of one visit share
// the same `<tokenNo>-REF` value, marking them as one referral batch. A code
// already present is never overwritten.
func ApplyReferralCodes(tokenNo string, referrals []models.Referral) {
	for i := range referrals {
		if referrals[i].ReferredToHospital != "" && referrals[i].ReferralCode == "" {
			referrals[i].ReferralCode = tokenNo + "-REF"
		}
	}
}
