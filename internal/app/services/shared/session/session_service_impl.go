package session

import (
	"context"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (s *sessionService) Create(ctx context.Context, user *models.User) (string, error) {
	sessionID := utils.GenerateSessionID()
	sessionData := &models.Session{
		UserID:          user.ID.Hex(),
		Name:            user.Name,
		Role:            user.Role,
		LocationID:      user.LocationID,
		ManagerLocation: user.ManagerLocation,
	}

	expiry := time.Duration(s.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	err := s.RedisRepository.Set(ctx, constvars.RedisKeySessionPrefix+sessionID, sessionData, expiry)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := s.RedisRepository.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, constvars.RedisKeySessionPrefix+sessionID)
}
