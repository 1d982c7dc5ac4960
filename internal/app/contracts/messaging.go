package contracts

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
)

// EventPublisher delivery is best effort. Callers log publish failures
// and carry on with the request.
type EventPublisher interface {
	Publish(ctx context.Context, event *models.RecordEvent) error
	Close() error
}
