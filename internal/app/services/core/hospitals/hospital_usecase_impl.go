package hospitals

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

type hospitalUsecase struct {
	HospitalRepository contracts.HospitalRepository
	VisitRepository    contracts.VisitRepository
	EventPublisher     contracts.EventPublisher
	Log                *zap.Logger
}

func NewHospitalUsecase(
	hospitalRepository contracts.HospitalRepository,
	visitRepository contracts.VisitRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.HospitalUsecase {
	return &hospitalUsecase{
		HospitalRepository: hospitalRepository,
		VisitRepository:    visitRepository,
		EventPublisher:     eventPublisher,
		Log:                logger,
	}
}

func (uc *hospitalUsecase) CreateHospital(ctx context.Context, session *models.Session, request *requests.CreateHospital) (*models.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.CreateHospital called",
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
	hospital := &models.Hospital{
		LocationID:               session.LocationID,
		ClinicVisitID:            clinicVisitID,
		EmpNo:                    request.EmpNo,
		EmployeeName:             request.EmployeeName,
		EmiratesID:               request.EmiratesID,
		InsuranceID:              request.InsuranceID,
		TrLocation:               request.TrLocation,
		MobileNumber:             request.MobileNumber,
		HospitalName:             request.HospitalName,
		DateOfAdmission:          parseDatePtr(request.DateOfAdmission),
		NatureOfCase:             request.NatureOfCase,
		CaseCategory:             request.CaseCategory,
		PrimaryDiagnosis:         request.PrimaryDiagnosis,
		SecondaryDiagnosis:       request.SecondaryDiagnosis,
		Status:                   request.Status,
		DischargeSummaryReceived: request.DischargeSummaryReceived,
		DateOfDischarge:          parseDatePtr(request.DateOfDischarge),
		DaysHospitalized:         request.DaysHospitalized,
		FollowUp:                 toFollowUps(request.FollowUp),
		FitnessStatus:            request.FitnessStatus,
		IsolationRequired:        request.IsolationRequired,
		FinalRemarks:             request.FinalRemarks,
		CreatedBy:                createdBy,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	hospitalID, err := uc.HospitalRepository.Insert(ctx, hospital)
	if err != nil {
		return nil, err
	}
	hospital.ID = hospitalID
	hospital.CreatedByName = session.Name
	hospital.VisitTokenNo = visit.TokenNo

	// The child is durable at this point; a parent that vanished in the
	// meantime leaves the back-reference unset, which is accepted.
	matched, err := uc.VisitRepository.AddHospitalization(ctx, clinicVisitID, hospitalID)
	if err != nil {
		uc.Log.Error("hospitalUsecase.CreateHospital error linking visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, clinicVisitID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		uc.Log.Warn("hospitalUsecase.CreateHospital parent visit vanished, link skipped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, clinicVisitID.Hex()),
		)
	}

	uc.publishEvent(ctx, requestID, constvars.EventActionCreated, hospital)
	return hospital, nil
}

func (uc *hospitalUsecase) FindAll(ctx context.Context, filter *requests.HospitalListFilter, pagination *requests.Pagination) ([]models.Hospital, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	mongoFilter, err := buildHospitalFilter(filter)
	if err != nil {
		return nil, 0, err
	}
	return uc.HospitalRepository.Find(ctx, mongoFilter, pagination.Page, pagination.PageSize)
}

func (uc *hospitalUsecase) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	visit, err := uc.VisitRepository.FindByID(ctx, hospital.ClinicVisitID)
	if err == nil && visit != nil {
		hospital.VisitTokenNo = visit.TokenNo
	}
	return hospital, nil
}

func (uc *hospitalUsecase) FindByUserLocation(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Hospital, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.FindByUserLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationIDKey, session.LocationID),
	)

	return uc.HospitalRepository.Find(ctx, access.LocationFilter(session, "locationId"), pagination.Page, pagination.PageSize)
}

func (uc *hospitalUsecase) UpdateHospital(ctx context.Context, session *models.Session, hospitalID string, request *requests.UpdateHospital) (*models.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.UpdateHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.HospitalRepository.FindByID(ctx, objectID)
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
	set := buildHospitalUpdateSet(request)
	updated, err := uc.HospitalRepository.UpdateByID(ctx, objectID, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return updated, nil
}

func (uc *hospitalUsecase) DeleteHospital(ctx context.Context, session *models.Session, hospitalID string) (*models.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.DeleteHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.HospitalRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !access.CanAccess(session, existing.LocationID) {
		return nil, exceptions.ErrRecordAccessDenied(nil)
	}

	deleted, err := uc.HospitalRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	matched, err := uc.VisitRepository.RemoveHospitalization(ctx, deleted.ClinicVisitID, deleted.ID)
	if err != nil {
		uc.Log.Error("hospitalUsecase.DeleteHospital error unlinking visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, deleted.ClinicVisitID.Hex()),
			zap.Error(err),
		)
	} else if !matched {
		uc.Log.Warn("hospitalUsecase.DeleteHospital parent visit vanished, unlink skipped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, deleted.ClinicVisitID.Hex()),
		)
	}

	uc.publishEvent(ctx, requestID, constvars.EventActionDeleted, deleted)
	return deleted, nil
}

func (uc *hospitalUsecase) publishEvent(ctx context.Context, requestID, action string, hospital *models.Hospital) {
	if uc.EventPublisher == nil {
		return
	}
	event := &models.RecordEvent{
		Entity:     constvars.EventEntityHospital,
		Action:     action,
		RecordID:   hospital.ID.Hex(),
		EmpNo:      hospital.EmpNo,
		LocationID: hospital.LocationID,
		OccurredAt: time.Now(),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("hospitalUsecase record event publish failed",
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

func toFollowUps(entries []requests.FollowUpEntry) []models.FollowUp {
	if len(entries) == 0 {
		return nil
	}
	followUps := make([]models.FollowUp, 0, len(entries))
	for _, entry := range entries {
		followUps = append(followUps, models.FollowUp{
			Date:    parseDatePtr(entry.Date),
			Remarks: entry.Remarks,
		})
	}
	return followUps
}

func buildHospitalFilter(filter *requests.HospitalListFilter) (bson.M, error) {
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
	if filter.Status != "" {
		mongoFilter["status"] = filter.Status
	}

	dateFilter := bson.M{}
	if filter.StartDate != "" {
		start, err := utils.ParseDate(filter.StartDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateFilter["$gte"] = start
	}
	if filter.EndDate != "" {
		end, err := utils.ParseDate(filter.EndDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateFilter["$lt"] = end.AddDate(0, 0, 1)
	}
	if len(dateFilter) > 0 {
		mongoFilter["dateOfAdmission"] = dateFilter
	}
	return mongoFilter, nil
}

func buildHospitalUpdateSet(request *requests.UpdateHospital) bson.M {
	set := bson.M{"updatedAt": time.Now()}

	if request.EmpNo != nil {
		set["empNo"] = *request.EmpNo
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
	if request.TrLocation != nil {
		set["trLocation"] = *request.TrLocation
	}
	if request.MobileNumber != nil {
		set["mobileNumber"] = *request.MobileNumber
	}
	if request.HospitalName != nil {
		set["hospitalName"] = *request.HospitalName
	}
	if request.DateOfAdmission != nil {
		set["dateOfAdmission"] = parseDatePtr(*request.DateOfAdmission)
	}
	if request.NatureOfCase != nil {
		set["natureOfCase"] = *request.NatureOfCase
	}
	if request.CaseCategory != nil {
		set["caseCategory"] = *request.CaseCategory
	}
	if request.PrimaryDiagnosis != nil {
		set["primaryDiagnosis"] = *request.PrimaryDiagnosis
	}
	if request.SecondaryDiagnosis != nil {
		set["secondaryDiagnosis"] = *request.SecondaryDiagnosis
	}
	if request.Status != nil {
		set["status"] = *request.Status
	}
	if request.DischargeSummaryReceived != nil {
		set["dischargeSummaryReceived"] = *request.DischargeSummaryReceived
	}
	if request.DateOfDischarge != nil {
		set["dateOfDischarge"] = parseDatePtr(*request.DateOfDischarge)
	}
	if request.DaysHospitalized != nil {
		set["daysHospitalized"] = *request.DaysHospitalized
	}
	if request.FollowUp != nil {
		set["followUp"] = toFollowUps(*request.FollowUp)
	}
	if request.FitnessStatus != nil {
		set["fitnessStatus"] = *request.FitnessStatus
	}
	if request.IsolationRequired != nil {
		set["isolationRequired"] = *request.IsolationRequired
	}
	if request.FinalRemarks != nil {
		set["finalRemarks"] = *request.FinalRemarks
	}
	return set
}
