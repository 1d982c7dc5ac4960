package isolations

import (
	"context"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/shared/access"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type isolationUsecase struct {
	IsolationRepository contracts.IsolationRepository
	VisitRepository     contracts.VisitRepository
	EventPublisher      contracts.EventPublisher
	Log                 *zap.Logger
}

func NewIsolationUsecase(
	isolationRepository contracts.IsolationRepository,
	visitRepository contracts.VisitRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.IsolationUsecase {
	return &isolationUsecase{
		IsolationRepository: isolationRepository,
		VisitRepository:     visitRepository,
		EventPublisher:      eventPublisher,
		Log:                 logger,
	}
}

func (uc *isolationUsecase) CreateIsolation(ctx context.Context, session *models.Session, request *requests.CreateIsolation) (*models.Isolation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("isolationUsecase.CreateIsolation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmpNoKey, request.EmpNo),
	)

	clinicVisitID, err := primitive.ObjectIDFromHex(request.ClinicVisitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	visit, err := uc.VisitRepository.FindByID(ctx, clinicVisitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitReferenceNotFound(nil)
	}

	createdBy, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}

	now := time.Now()
	isolation := &models.Isolation{
		LocationID:      session.LocationID,
		ClinicVisitID:   clinicVisitID,
		EmpNo:           request.EmpNo,
		Type:            request.Type,
		EmployeeName:    request.EmployeeName,
		EmiratesID:      request.EmiratesID,
		InsuranceID:     request.InsuranceID,
		MobileNumber:    request.MobileNumber,
		TrLocation:      request.TrLocation,
		IsolatedIn:      request.IsolatedIn,
		IsolationReason: request.IsolationReason,
		Nationality:     request.Nationality,
		SlUpto:          parseDatePtr(request.SlUpto),
		DateFrom:        parseDatePtr(request.DateFrom),
		DateTo:          parseDatePtr(request.DateTo),
		CurrentStatus:   request.CurrentStatus,
		Remarks:         request.Remarks,
		CreatedBy:       createdBy,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	isolationID, err := uc.IsolationRepository.Insert(ctx, isolation)
	if err != nil {
		return nil, err
	}
	isolation.ID = isolationID
	isolation.CreatedByName = session.Name
	isolation.VisitTokenNo = visit.TokenNo

	matched, err := uc.VisitRepository.AddIsolation(ctx, clinicVisitID, isolationID)
	if err != nil {
		uc.Log.Error("isolationUsecase.CreateIsolation error linking visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, clinicVisitID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		uc.Log.Warn("isolationUsecase.CreateIsolation parent visit vanished, link skipped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, clinicVisitID.Hex()),
		)
	}

	uc.publishEvent(ctx, requestID, constvars.EventActionCreated, isolation)
	return isolation, nil
}

func (uc *isolationUsecase) FindAll(ctx context.Context, filter *requests.IsolationListFilter, pagination *requests.Pagination) ([]models.Isolation, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("isolationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	mongoFilter, err := buildIsolationFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	return uc.IsolationRepository.Find(ctx, mongoFilter, pagination.Page, pagination.PageSize)
}

func (uc *isolationUsecase) FindByID(ctx context.Context, isolationID string) (*models.Isolation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("isolationUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(isolationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	isolation, err := uc.IsolationRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if isolation == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	visit, err := uc.VisitRepository.FindByID(ctx, isolation.ClinicVisitID)
	if err == nil && visit != nil {
		isolation.VisitTokenNo = visit.TokenNo
	}
	return isolation, nil
}

func (uc *isolationUsecase) FindByUserLocation(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Isolation, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("isolationUsecase.FindByUserLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationIDKey, session.LocationID),
	)

	return uc.IsolationRepository.Find(ctx, access.LocationFilter(session, "locationId"), pagination.Page, pagination.PageSize)
}

func (uc *isolationUsecase) UpdateIsolation(ctx context.Context, session *models.Session, isolationID string, request *requests.UpdateIsolation) (*models.Isolation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("isolationUsecase.UpdateIsolation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(isolationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.IsolationRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !access.CanAccess(session, existing.LocationID) {
		return nil, exceptions.ErrRecordAccessDenied(nil)
	}

	// Updates never touch clinicVisitId, so no re-linking happens here.
	set := buildIsolationUpdateSet(request)
	updated, err := uc.IsolationRepository.UpdateByID(ctx, objectID, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return updated, nil
}

func (uc *isolationUsecase) DeleteIsolation(ctx context.Context, session *models.Session, isolationID string) (*models.Isolation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("isolationUsecase.DeleteIsolation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(isolationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.IsolationRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !access.CanAccess(session, existing.LocationID) {
		return nil, exceptions.ErrRecordAccessDenied(nil)
	}

	deleted, err := uc.IsolationRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	matched, err := uc.VisitRepository.RemoveIsolation(ctx, deleted.ClinicVisitID, deleted.ID)
	if err != nil {
		uc.Log.Error("isolationUsecase.DeleteIsolation error unlinking visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, deleted.ClinicVisitID.Hex()),
			zap.Error(err),
		)
	} else if !matched {
		uc.Log.Warn("isolationUsecase.DeleteIsolation parent visit vanished, unlink skipped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, deleted.ClinicVisitID.Hex()),
		)
	}

	uc.publishEvent(ctx, requestID, constvars.EventActionDeleted, deleted)
	return deleted, nil
}

func (uc *isolationUsecase) publishEvent(ctx context.Context, requestID, action string, isolation *models.Isolation) {
	if uc.EventPublisher == nil {
		return
	}
	event := &models.RecordEvent{
		Entity:     constvars.EventEntityIsolation,
		Action:     action,
		RecordID:   isolation.ID.Hex(),
		EmpNo:      isolation.EmpNo,
		LocationID: isolation.LocationID,
		OccurredAt: time.Now(),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("isolationUsecase record event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func parseDatePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func buildIsolationFilter(filter *requests.IsolationListFilter) (bson.M, error) {
	mongoFilter := bson.M{}
	if filter == nil {
		return mongoFilter, nil
	}
	if filter.LocationID != "" {
		mongoFilter["locationId"] = filter.LocationID
	}
	if filter.EmpNo != "" {
		mongoFilter["empNo"] = filter.EmpNo
	}
	if filter.EmiratesID != "" {
		mongoFilter["emiratesId"] = filter.EmiratesID
	}

	dateFilter := bson.M{}
	if filter.DateFrom != "" {
		from, err := utils.ParseDate(filter.DateFrom)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateFilter["$gte"] = from
	}
	if filter.DateTo != "" {
		to, err := utils.ParseDate(filter.DateTo)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateFilter["$lt"] = to.AddDate(0, 0, 1)
	}
	if len(dateFilter) > 0 {
		mongoFilter["dateFrom"] = dateFilter
	}
	return mongoFilter, nil
}

func buildIsolationUpdateSet(request *requests.UpdateIsolation) bson.M {
	set := bson.M{"updatedAt": time.Now()}

	if request.EmpNo != nil {
		set["empNo"] = *request.EmpNo
	}
	if request.Type != nil {
		set["type"] = *request.Type
	}
	if request.EmployeeName != nil {
		set["employeeName"] = *request.EmployeeName
	}
	if request.EmiratesID != nil {
		set["emiratesId"] = *request.EmiratesID
	}
	if request.InsuranceID != nil {
		set["insuranceId"] = *request.InsuranceID
	}
	if request.MobileNumber != nil {
		set["mobileNumber"] = *request.MobileNumber
	}
	if request.TrLocation != nil {
		set["trLocation"] = *request.TrLocation
	}
	if request.IsolatedIn != nil {
		set["isolatedIn"] = *request.IsolatedIn
	}
	if request.IsolationReason != nil {
		set["isolationReason"] = *request.IsolationReason
	}
	if request.Nationality != nil {
		set["nationality"] = *request.Nationality
	}
	if request.SlUpto != nil {
		set["slUpto"] = parseDatePtr(*request.SlUpto)
	}
	if request.DateFrom != nil {
		set["dateFrom"] = parseDatePtr(*request.DateFrom)
	}
	if request.DateTo != nil {
		set["dateTo"] = parseDatePtr(*request.DateTo)
	}
	if request.CurrentStatus != nil {
		set["currentStatus"] = *request.CurrentStatus
	}
	if request.Remarks != nil {
		set["remarks"] = *request.Remarks
	}
	return set
}
