package hospitals

import (
	"context"
	"testing"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeVisitRepository struct {
	visits        map[primitive.ObjectID]*models.Visit
	linkedAdds    []primitive.ObjectID
	linkedRemoves []primitive.ObjectID
	addMatched    bool
}

func newFakeVisitRepository() *fakeVisitRepository {
	return &fakeVisitRepository{
		visits:     make(map[primitive.ObjectID]*models.Visit),
		addMatched: true,
	}
}

func (r *fakeVisitRepository) Insert(_ context.Context, visit *models.Visit) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	r.visits[id] = visit
	return id, nil
}

func (r *fakeVisitRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Visit, error) {
	return r.visits[id], nil
}

func (r *fakeVisitRepository) Find(_ context.Context, _ bson.M, _, _ int) ([]models.Visit, int64, error) {
	return nil, 0, nil
}

func (r *fakeVisitRepository) FindAll(_ context.Context) ([]models.Visit, error) {
	return nil, nil
}

func (r *fakeVisitRepository) FindByEmpNo(_ context.Context, _ string) ([]models.Visit, error) {
	return nil, nil
}

func (r *fakeVisitRepository) UpdateByID(_ context.Context, _ primitive.ObjectID, _ bson.M) (*models.Visit, error) {
	return nil, nil
}

func (r *fakeVisitRepository) DeleteByID(_ context.Context, _ primitive.ObjectID) (*models.Visit, error) {
	return nil, nil
}

func (r *fakeVisitRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.visits)), nil
}

func (r *fakeVisitRepository) AddHospitalization(_ context.Context, _, hospitalID primitive.ObjectID) (bool, error) {
	r.linkedAdds = append(r.linkedAdds, hospitalID)
	return r.addMatched, nil
}

func (r *fakeVisitRepository) RemoveHospitalization(_ context.Context, _, hospitalID primitive.ObjectID) (bool, error) {
	r.linkedRemoves = append(r.linkedRemoves, hospitalID)
	return true, nil
}

func (r *fakeVisitRepository) AddIsolation(_ context.Context, _, _ primitive.ObjectID) (bool, error) {
	return true, nil
}

func (r *fakeVisitRepository) RemoveIsolation(_ context.Context, _, _ primitive.ObjectID) (bool, error) {
	return true, nil
}

func (r *fakeVisitRepository) PushAttachment(_ context.Context, _ primitive.ObjectID, _ *models.Attachment) (bool, error) {
	return true, nil
}

type fakeHospitalRepository struct {
	hospitals map[primitive.ObjectID]*models.Hospital
}

func newFakeHospitalRepository() *fakeHospitalRepository {
	return &fakeHospitalRepository{hospitals: make(map[primitive.ObjectID]*models.Hospital)}
}

func (r *fakeHospitalRepository) Insert(_ context.Context, hospital *models.Hospital) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *hospital
	stored.ID = id
	r.hospitals[id] = &stored
	return id, nil
}

func (r *fakeHospitalRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Hospital, error) {
	return r.hospitals[id], nil
}

func (r *fakeHospitalRepository) Find(_ context.Context, _ bson.M, _, _ int) ([]models.Hospital, int64, error) {
	return nil, 0, nil
}

func (r *fakeHospitalRepository) UpdateByID(_ context.Context, id primitive.ObjectID, _ bson.M) (*models.Hospital, error) {
	return r.hospitals[id], nil
}

func (r *fakeHospitalRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (*models.Hospital, error) {
	hospital := r.hospitals[id]
	delete(r.hospitals, id)
	return hospital, nil
}

func (r *fakeHospitalRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.hospitals)), nil
}

func staffSession(locationID string) *models.Session {
	return &models.Session{
		UserID:     primitive.NewObjectID().Hex(),
		Name:       "Nurse Joy",
		Role:       constvars.RoleStaff,
		LocationID: locationID,
	}
}

func TestHospitalUsecaseCreateHospital(t *testing.T) {
	ctx := context.Background()

	t.Run("Links Back Reference On Parent Visit", func(t *testing.T) {
		visitRepo := newFakeVisitRepository()
		visitID := primitive.NewObjectID()
		visitRepo.visits[visitID] = &models.Visit{ID: visitID, TokenNo: "DIC2-2602-0001", LocationID: "dic-2"}

		uc := NewHospitalUsecase(newFakeHospitalRepository(), visitRepo, nil, zap.NewNop())

		created, err := uc.CreateHospital(ctx, staffSession("dic-2"), &requests.CreateHospital{
			ClinicVisitID: visitID.Hex(),
			EmpNo:         "EMP-1",
			EmployeeName:  "A Worker",
			EmiratesID:    "784-0000",
		})

		assert.NoError(t, err)
		assert.Equal(t, "DIC2-2602-0001", created.VisitTokenNo)
		assert.Equal(t, []primitive.ObjectID{created.ID}, visitRepo.linkedAdds, "the new admission must be added to the visit's array")
	})

	t.Run("Rejects Missing Parent Visit", func(t *testing.T) {
		uc := NewHospitalUsecase(newFakeHospitalRepository(), newFakeVisitRepository(), nil, zap.NewNop())

		_, err := uc.CreateHospital(ctx, staffSession("dic-2"), &requests.CreateHospital{
			ClinicVisitID: primitive.NewObjectID().Hex(),
			EmpNo:         "EMP-1",
			EmployeeName:  "A Worker",
			EmiratesID:    "784-0000",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrVisitReferenceNotFound(nil).StatusCode, customErr.StatusCode)
	})

	t.Run("Parent Vanished After Insert Is Accepted", func(t *testing.T) {
		visitRepo := newFakeVisitRepository()
		visitID := primitive.NewObjectID()
		visitRepo.visits[visitID] = &models.Visit{ID: visitID, TokenNo: "DIC2-2602-0001", LocationID: "dic-2"}
		visitRepo.addMatched = false

		uc := NewHospitalUsecase(newFakeHospitalRepository(), visitRepo, nil, zap.NewNop())

		created, err := uc.CreateHospital(ctx, staffSession("dic-2"), &requests.CreateHospital{
			ClinicVisitID: visitID.Hex(),
			EmpNo:         "EMP-1",
			EmployeeName:  "A Worker",
			EmiratesID:    "784-0000",
		})

		assert.NoError(t, err, "a vanished parent is logged, never surfaced to the caller")
		assert.NotNil(t, created)
	})

	t.Run("Invalid Visit ID", func(t *testing.T) {
		uc := NewHospitalUsecase(newFakeHospitalRepository(), newFakeVisitRepository(), nil, zap.NewNop())

		_, err := uc.CreateHospital(ctx, staffSession("dic-2"), &requests.CreateHospital{
			ClinicVisitID: "not-an-object-id",
			EmpNo:         "EMP-1",
			EmployeeName:  "A Worker",
			EmiratesID:    "784-0000",
		})

		assert.Error(t, err)
	})
}

func TestHospitalUsecaseDeleteHospital(t *testing.T) {
	ctx := context.Background()

	t.Run("Unlinks Back Reference", func(t *testing.T) {
		visitRepo := newFakeVisitRepository()
		visitID := primitive.NewObjectID()
		visitRepo.visits[visitID] = &models.Visit{ID: visitID, TokenNo: "DIC2-2602-0001", LocationID: "dic-2"}

		hospitalRepo := newFakeHospitalRepository()
		hospitalID := primitive.NewObjectID()
		hospitalRepo.hospitals[hospitalID] = &models.Hospital{
			ID:            hospitalID,
			LocationID:    "dic-2",
			ClinicVisitID: visitID,
		}

		uc := NewHospitalUsecase(hospitalRepo, visitRepo, nil, zap.NewNop())

		deleted, err := uc.DeleteHospital(ctx, staffSession("dic-2"), hospitalID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, hospitalID, deleted.ID)
		assert.Equal(t, []primitive.ObjectID{hospitalID}, visitRepo.linkedRemoves, "the deleted admission must be pulled from the visit's array")
	})

	t.Run("Denies Foreign Location", func(t *testing.T) {
		hospitalRepo := newFakeHospitalRepository()
		hospitalID := primitive.NewObjectID()
		hospitalRepo.hospitals[hospitalID] = &models.Hospital{
			ID:            hospitalID,
			LocationID:    "al-qouz",
			ClinicVisitID: primitive.NewObjectID(),
		}

		uc := NewHospitalUsecase(hospitalRepo, newFakeVisitRepository(), nil, zap.NewNop())

		_, err := uc.DeleteHospital(ctx, staffSession("dic-2"), hospitalID.Hex())

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrRecordAccessDenied(nil).StatusCode, customErr.StatusCode)
	})
}
