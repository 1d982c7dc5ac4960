package visits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"go.uber.org/zap"
)

// TokenSequencer derives the human-readable visit token
// `<code>-<ddmm>-<seq>` from the clinic location, the visit date and an
// atomically incremented per-location daily counter.
type TokenSequencer struct {
	CounterRepository contracts.TokenCounterRepository
	LocationCodes     map[string]string
	Log               *zap.Logger
}

func NewTokenSequencer(counterRepository contracts.TokenCounterRepository, locationCodes map[string]string, log *zap.Logger) *TokenSequencer {
	return &TokenSequencer{
		CounterRepository: counterRepository,
		LocationCodes:     locationCodes,
		Log:               log,
	}
}

// Generate produces the next token for locationID. The location label only
// drives the short code; the counter is keyed by locationID and day.
func (s *TokenSequencer) Generate(ctx context.Context, locationID, locationLabel, sentTo string, whenCreated time.Time) (string, error) {
	if whenCreated.IsZero() {
		whenCreated = time.Now()
	}

	code := s.locationCode(locationLabel)
	if isExternalReferral(sentTo) {
		code += constvars.TokenExternalSuffix
	}

	sequence, err := s.CounterRepository.Next(ctx, locationID, whenCreated)
	if err != nil {
		return "", err
	}

	return FormatToken(code, whenCreated, sequence, s.Log), nil
}

func (s *TokenSequencer) locationCode(locationLabel string) string {
	normalized := normalizeLocationLabel(locationLabel)
	if code, ok := s.LocationCodes[normalized]; ok {
		return code
	}

	var fallback []rune
	for _, r := range normalized {
		if r == ' ' {
			continue
		}
		fallback = append(fallback, r)
		if len(fallback) == 4 {
			break
		}
	}
	if len(fallback) == 0 {
		return constvars.TokenFallbackLocationCode
	}
	return string(fallback)
}

// FormatToken renders `<code>-<ddmm>-<seq>` with the sequence zero-padded to
// four digits. Sequences past 9999 keep only their last four digits, which
// can collide; that overflow is logged and accepted.
func FormatToken(code string, when time.Time, sequence int64, log *zap.Logger) string {
	if sequence > constvars.TokenSequenceMax {
		truncated := sequence % 10000
		if log != nil {
			log.Warn("visit token sequence overflow, suffix truncated to last four digits",
				zap.Int64(constvars.LoggingSequenceKey, sequence),
			)
		}
		sequence = truncated
	}
	return fmt.Sprintf("%s-%s-%0*d", code, when.Format("0201"), constvars.TokenSequenceDigits, sequence)
}

func normalizeLocationLabel(locationLabel string) string {
	return strings.Join(strings.Fields(strings.ToUpper(locationLabel)), " ")
}

func isExternalReferral(sentTo string) bool {
	return strings.EqualFold(strings.TrimSpace(sentTo), constvars.SentToExternalProvider)
}
