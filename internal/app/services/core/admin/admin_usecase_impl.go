package admin

import (
	"context"
	"os"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type adminUsecase struct {
	AuthUsecase         contracts.AuthUsecase
	UserRepository      contracts.UserRepository
	VisitRepository     contracts.VisitRepository
	HospitalRepository  contracts.HospitalRepository
	IsolationRepository contracts.IsolationRepository
	InternalConfig      *config.InternalConfig
	StartedAt           time.Time
	Log                 *zap.Logger
}

func NewAdminUsecase(
	authUsecase contracts.AuthUsecase,
	userRepository contracts.UserRepository,
	visitRepository contracts.VisitRepository,
	hospitalRepository contracts.HospitalRepository,
	isolationRepository contracts.IsolationRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AdminUsecase {
	return &adminUsecase{
		AuthUsecase:         authUsecase,
		UserRepository:      userRepository,
		VisitRepository:     visitRepository,
		HospitalRepository:  hospitalRepository,
		IsolationRepository: isolationRepository,
		InternalConfig:      internalConfig,
		StartedAt:           time.Now(),
		Log:                 logger,
	}
}

func (uc *adminUsecase) SystemInfo(ctx context.Context) (*responses.SystemInfo, error) {
	return &responses.SystemInfo{
		UptimeSeconds: time.Since(uc.StartedAt).Seconds(),
		Env:           uc.InternalConfig.App.Env,
		PID:           os.Getpid(),
	}, nil
}

func (uc *adminUsecase) Stats(ctx context.Context) (*responses.Stats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.Stats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	clinics, err := uc.VisitRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	hospitals, err := uc.HospitalRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	isolations, err := uc.IsolationRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.Stats{
		Users:      users,
		Clinics:    clinics,
		Hospitals:  hospitals,
		Isolations: isolations,
	}, nil
}

func (uc *adminUsecase) ListUsers(ctx context.Context, filter *requests.UserListFilter, pagination *requests.Pagination) ([]responses.User, int64, error) {
	return uc.AuthUsecase.ListUsers(ctx, filter, pagination)
}
