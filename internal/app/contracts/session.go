package contracts

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
)

type SessionService interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
