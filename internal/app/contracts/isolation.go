package contracts

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IsolationUsecase interface {
	CreateIsolation(ctx context.Context, session *models.Session, request *requests.CreateIsolation) (*models.Isolation, error)
	FindAll(ctx context.Context, filter *requests.IsolationListFilter, pagination *requests.Pagination) ([]models.Isolation, int64, error)
	FindByID(ctx context.Context, isolationID string) (*models.Isolation, error)
	FindByUserLocation(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Isolation, int64, error)
	UpdateIsolation(ctx context.Context, session *models.Session, isolationID string, request *requests.UpdateIsolation) (*models.Isolation, error)
	DeleteIsolation(ctx context.Context, session *models.Session, isolationID string) (*models.Isolation, error)
}

type IsolationRepository interface {
	Insert(ctx context.Context, isolation *models.Isolation) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Isolation, error)
	Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Isolation, int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Isolation, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Isolation, error)
	Count(ctx context.Context) (int64, error)
}
