package contracts

import (
	"context"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) (*models.Hospital, error)
	FindAll(ctx context.Context, filter *requests.HospitalListFilter, pagination *requests.Pagination) ([]models.Hospital, int64, error)
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	FindByUserLocation(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Hospital, int64, error)
	UpdateHospital(ctx context.Context, session *models.Session, hospitalID string, request *requests.UpdateHospital) (*models.Hospital, error)
	DeleteHospital(ctx context.Context, session *models.Session, hospitalID string) (*models.Hospital, error)
}

type HospitalRepository interface {
	Insert(ctx context.Context, hospital *models.Hospital) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Hospital, error)
	Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Hospital, int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Hospital, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Hospital, error)
	Count(ctx context.Context) (int64, error)
}
