package contracts

import (
	"context"
	"io"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VisitUsecase interface {
	CreateVisit(ctx context.Context, session *models.Session, request *requests.CreateVisit) (*models.Visit, error)
	FindAll(ctx context.Context, filter *requests.VisitListFilter, pagination *requests.Pagination) ([]models.Visit, int64, error)
	FindByID(ctx context.Context, visitID string) (*models.Visit, error)
	FindByUserLocation(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Visit, int64, error)
	UpdateVisit(ctx context.Context, session *models.Session, visitID string, request *requests.UpdateVisit) (*models.Visit, error)
	DeleteVisit(ctx context.Context, session *models.Session, visitID string) (*models.Visit, error)
	EmployeeSummary(ctx context.Context, empNo string) (*responses.EmployeeSummary, error)
	ExportVisits(ctx context.Context) (*responses.ExportResult, []byte, error)
	UploadAttachment(ctx context.Context, session *models.Session, visitID, fileName, contentType string, size int64, content io.Reader) (*responses.AttachmentUpload, error)
}

type VisitRepository interface {
	Insert(ctx context.Context, visit *models.Visit) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Visit, error)
	Find(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Visit, int64, error)
	FindAll(ctx context.Context) ([]models.Visit, error)
	FindByEmpNo(ctx context.Context, empNo string) ([]models.Visit, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Visit, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Visit, error)
	Count(ctx context.Context) (int64, error)

	// Back-reference maintenance, set semantics on the stored arrays. The
	// boolean reports whether the parent visit still existed; a missing
	// parent is not an error.
	AddHospitalization(ctx context.Context, visitID, hospitalID primitive.ObjectID) (bool, error)
	RemoveHospitalization(ctx context.Context, visitID, hospitalID primitive.ObjectID) (bool, error)
	AddIsolation(ctx context.Context, visitID, isolationID primitive.ObjectID) (bool, error)
	RemoveIsolation(ctx context.Context, visitID, isolationID primitive.ObjectID) (bool, error)

	PushAttachment(ctx context.Context, visitID primitive.ObjectID, attachment *models.Attachment) (bool, error)
}

// TokenCounterRepository hands out the next sequence number for a location
// and calendar day through a single atomic increment.
type TokenCounterRepository interface {
	Next(ctx context.Context, locationID string, day time.Time) (int64, error)
}
