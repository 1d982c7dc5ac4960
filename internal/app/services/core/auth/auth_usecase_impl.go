package auth

import (
	"context"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/responses"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmailOrEmpID(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = uc.UserRepository.FindByEmailOrEmpID(ctx, request.EmpID)
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, exceptions.ErrUserAlreadyExists(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleStaff
	}

	now := time.Now()
	user := &models.User{
		Name:            request.Name,
		EmpID:           request.EmpID,
		Email:           request.Email,
		Password:        hashedPassword,
		Role:            role,
		LocationID:      request.LocationID,
		ManagerLocation: request.ManagerLocation,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	response := toUserResponse(user)
	return &response, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identifier := request.Email
	if identifier == "" {
		identifier = request.EmpID
	}
	if identifier == "" {
		return nil, exceptions.ErrMissingField("email or empId")
	}

	user, err := uc.UserRepository.FindByEmailOrEmpID(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	return uc.issueSession(ctx, user)
}

func (uc *authUsecase) Refresh(ctx context.Context, session *models.Session, sessionID string) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	if err := uc.SessionService.Delete(ctx, sessionID); err != nil {
		uc.Log.Warn("authUsecase.Refresh error deleting old session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return uc.issueSession(ctx, user)
}

func (uc *authUsecase) issueSession(ctx context.Context, user *models.User) (*responses.Auth, error) {
	sessionID, err := uc.SessionService.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Auth{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (uc *authUsecase) ListUsers(ctx context.Context, filter *requests.UserListFilter, pagination *requests.Pagination) ([]responses.User, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, total, err := uc.UserRepository.Find(ctx, buildUserFilter(filter), pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	userResponses := make([]responses.User, 0, len(users))
	for i := range users {
		userResponses = append(userResponses, toUserResponse(&users[i]))
	}
	return userResponses, total, nil
}

func (uc *authUsecase) GetUser(ctx context.Context, userID string) (*responses.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	response := toUserResponse(user)
	return &response, nil
}

func (uc *authUsecase) UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	// Role and location changes are reserved for superadmins; anyone may
	// change their own name, email, and password.
	if session.Role != constvars.RoleSuperadmin {
		if session.UserID != userID {
			return nil, exceptions.ErrRecordAccessDenied(nil)
		}
		if request.Role != nil || request.LocationID != nil || request.ManagerLocation != nil {
			return nil, exceptions.ErrRoleNotAllowed(nil)
		}
	}

	set := bson.M{"updatedAt": time.Now()}
	if request.Name != nil {
		set["name"] = *request.Name
	}
	if request.Email != nil {
		set["email"] = *request.Email
	}
	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		set["password"] = hashedPassword
	}
	if request.Role != nil {
		set["role"] = *request.Role
	}
	if request.LocationID != nil {
		set["locationId"] = *request.LocationID
	}
	if request.ManagerLocation != nil {
		set["managerLocation"] = *request.ManagerLocation
	}

	updated, err := uc.UserRepository.UpdateByID(ctx, objectID, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	response := toUserResponse(updated)
	return &response, nil
}

func (uc *authUsecase) DeleteUser(ctx context.Context, session *models.Session, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	return uc.UserRepository.DeleteByID(ctx, objectID)
}

func toUserResponse(user *models.User) responses.User {
	return responses.User{
		ID:              user.ID.Hex(),
		Name:            user.Name,
		EmpID:           user.EmpID,
		Email:           user.Email,
		Role:            user.Role,
		LocationID:      user.LocationID,
		ManagerLocation: user.ManagerLocation,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func buildUserFilter(filter *requests.UserListFilter) bson.M {
	mongoFilter := bson.M{}
	if filter == nil {
		return mongoFilter
	}
	if filter.EmpID != "" {
		mongoFilter["empId"] = filter.EmpID
	}
	if filter.Email != "" {
		mongoFilter["email"] = filter.Email
	}
	if filter.Role != "" {
		mongoFilter["role"] = filter.Role
	}
	if filter.LocationID != "" {
		mongoFilter["locationId"] = filter.LocationID
	}
	return mongoFilter
}
