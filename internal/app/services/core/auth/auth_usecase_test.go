package auth

import (
	"context"
	"testing"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/config"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepository) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByEmailOrEmpID(_ context.Context, identifier string) (*models.User, error) {
	if identifier == "" {
		return nil, nil
	}
	for _, user := range r.users {
		if user.Email == identifier || user.EmpID == identifier {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) Find(_ context.Context, _ bson.M, _, _ int) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (r *fakeUserRepository) UpdateByID(_ context.Context, id primitive.ObjectID, _ bson.M) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepository) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepository) FindNamesByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			names[id] = user.Name
		}
	}
	return names, nil
}

type fakeSessionService struct {
	created map[string]*models.User
	deleted []string
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{created: make(map[string]*models.User)}
}

func (s *fakeSessionService) Create(_ context.Context, user *models.User) (string, error) {
	sessionID := primitive.NewObjectID().Hex()
	s.created[sessionID] = user
	return sessionID, nil
}

func (s *fakeSessionService) GetSessionData(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (s *fakeSessionService) ParseSessionData(_ context.Context, _ string) (*models.Session, error) {
	return nil, nil
}

func (s *fakeSessionService) Delete(_ context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 24,
		},
	}
}

func TestAuthUsecaseRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Role To Staff", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepository(), newFakeSessionService(), testInternalConfig(), zap.NewNop())

		user, err := uc.Register(ctx, &requests.Register{
			Name:       "Nurse Joy",
			EmpID:      "EMP-1",
			Email:      "joy@example.com",
			Password:   "Sup3r$ecret",
			LocationID: "dic-2",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleStaff, user.Role)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("Rejects Duplicate Email", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewAuthUsecase(userRepo, newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.NoError(t, err)

		_, err = uc.Register(ctx, &requests.Register{
			EmpID: "EMP-2", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.Error(t, err, "re-using an email must fail")
	})

	t.Run("Rejects Duplicate EmpID", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewAuthUsecase(userRepo, newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.NoError(t, err)

		_, err = uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "other@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.Error(t, err, "re-using an employee id must fail")
	})

	t.Run("Stores Hashed Password", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewAuthUsecase(userRepo, newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.NoError(t, err)

		stored, err := userRepo.FindByEmailOrEmpID(ctx, "joy@example.com")
		assert.NoError(t, err)
		assert.NotEqual(t, "Sup3r$ecret", stored.Password)
		assert.True(t, utils.CheckPasswordHash("Sup3r$ecret", stored.Password))
	})
}

func TestAuthUsecaseLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Login By Email", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		sessionService := newFakeSessionService()
		uc := NewAuthUsecase(userRepo, sessionService, testInternalConfig(), zap.NewNop())

		_, err := uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.NoError(t, err)

		auth, err := uc.Login(ctx, &requests.Login{Email: "joy@example.com", Password: "Sup3r$ecret"})

		assert.NoError(t, err)
		assert.NotEmpty(t, auth.Token)
		assert.Equal(t, "EMP-1", auth.User.EmpID)
		assert.Len(t, sessionService.created, 1)
	})

	t.Run("Login By EmpID", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepository(), newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.NoError(t, err)

		auth, err := uc.Login(ctx, &requests.Login{EmpID: "EMP-1", Password: "Sup3r$ecret"})

		assert.NoError(t, err)
		assert.Equal(t, "joy@example.com", auth.User.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepository(), newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Register(ctx, &requests.Register{
			EmpID: "EMP-1", Email: "joy@example.com", Password: "Sup3r$ecret", LocationID: "dic-2",
		})
		assert.NoError(t, err)

		_, err = uc.Login(ctx, &requests.Login{Email: "joy@example.com", Password: "wrong"})

		assert.Error(t, err)
	})

	t.Run("Unknown User", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepository(), newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Login(ctx, &requests.Login{Email: "ghost@example.com", Password: "whatever"})

		assert.Error(t, err)
	})

	t.Run("Missing Identifier", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepository(), newFakeSessionService(), testInternalConfig(), zap.NewNop())

		_, err := uc.Login(ctx, &requests.Login{Password: "whatever"})

		assert.Error(t, err)
	})
}
