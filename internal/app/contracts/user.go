package contracts

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.User, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	Refresh(ctx context.Context, session *models.Session, sessionID string) (*responses.Auth, error)
	ListUsers(ctx context.Context, filter *requests.UserListFilter, pagination *requests.Pagination) ([]responses.User, int64, error)
	GetUser(ctx context.Context, userID string) (*responses.User, error)
	UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, session *models.Session, userID string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrEmpID(ctx context.Context, identifier string) (*models.User, error)
	Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.User, int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	FindNamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

type AdminUsecase interface {
	SystemInfo(ctx context.Context) (*responses.SystemInfo, error)
	Stats(ctx context.Context) (*responses.Stats, error)
	ListUsers(ctx context.Context, filter *requests.UserListFilter, pagination *requests.Pagination) ([]responses.User, int64, error)
}
