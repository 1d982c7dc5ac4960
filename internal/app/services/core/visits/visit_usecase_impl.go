package visits

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/models"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/services/shared/access"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/responses"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type visitUsecase struct {
	VisitRepository   contracts.VisitRepository
	UserRepository    contracts.UserRepository
	TokenSequencer    *TokenSequencer
	EventPublisher    contracts.EventPublisher
	AttachmentStorage contracts.AttachmentStorage
	PresignedExpiry   time.Duration
	Log               *zap.Logger
}

func NewVisitUsecase(
	visitRepository contracts.VisitRepository,
	userRepository contracts.UserRepository,
	tokenSequencer *TokenSequencer,
	eventPublisher contracts.EventPublisher,
	attachmentStorage contracts.AttachmentStorage,
	presignedExpiry time.Duration,
	logger *zap.Logger,
) contracts.VisitUsecase {
	return &visitUsecase{
		VisitRepository:   visitRepository,
		UserRepository:    userRepository,
		TokenSequencer:    tokenSequencer,
		EventPublisher:    eventPublisher,
		AttachmentStorage: attachmentStorage,
		PresignedExpiry:   presignedExpiry,
		Log:               logger,
	}
}

func (uc *visitUsecase) CreateVisit(ctx context.Context, session *models.Session, request *requests.CreateVisit) (*models.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.CreateVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmpNoKey, request.EmpNo),
	)

	visitDate, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	createdBy, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}

	tokenNo := request.TokenNo
	if tokenNo == "" {
		tokenNo, err = uc.TokenSequencer.Generate(ctx, session.LocationID, session.LocationID, request.SentTo, visitDate)
		if err != nil {
			uc.Log.Error("visitUsecase.CreateVisit error generating token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	visitStatus := request.VisitStatus
	if visitStatus == "" {
		visitStatus = constvars.VisitStatusOpen
	}

	referrals := toReferrals(request.Referrals)
	ApplyReferralCodes(tokenNo, referrals)

	now := time.Now()
	visit := &models.Visit{
		LocationID:          session.LocationID,
		Date:                visitDate,
		Time:                request.Time,
		EmpNo:               request.EmpNo,
		EmployeeName:        request.EmployeeName,
		EmiratesID:          request.EmiratesID,
		InsuranceID:         request.InsuranceID,
		TrLocation:          request.TrLocation,
		MobileNumber:        request.MobileNumber,
		NatureOfCase:        request.NatureOfCase,
		CaseCategory:        request.CaseCategory,
		NurseAssessment:     request.NurseAssessment,
		SymptomDuration:     request.SymptomDuration,
		Temperature:         request.Temperature,
		BloodPressure:       request.BloodPressure,
		HeartRate:           request.HeartRate,
		Others:              request.Others,
		TokenNo:             tokenNo,
		SentTo:              request.SentTo,
		ProviderName:        request.ProviderName,
		DoctorName:          request.DoctorName,
		PrimaryDiagnosis:    request.PrimaryDiagnosis,
		SecondaryDiagnosis:  request.SecondaryDiagnosis,
		Medicines:           toMedicines(request.Medicines),
		SickLeaveStatus:     request.SickLeaveStatus,
		SickLeaveStartDate:  parseDatePtr(request.SickLeaveStartDate),
		SickLeaveEndDate:    parseDatePtr(request.SickLeaveEndDate),
		TotalSickLeaveDays:  request.TotalSickLeaveDays,
		Remarks:             request.Remarks,
		Referrals:           referrals,
		VisitStatus:         visitStatus,
		FinalRemarks:        request.FinalRemarks,
		IPAdmissionRequired: request.IPAdmissionRequired,
		Hospitalizations:    []primitive.ObjectID{},
		Isolations:          []primitive.ObjectID{},
		CreatedBy:           createdBy,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	visitID, err := uc.VisitRepository.Insert(ctx, visit)
	if err != nil {
		uc.Log.Error("visitUsecase.CreateVisit error inserting visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	visit.ID = visitID
	visit.CreatedByName = session.Name

	uc.publishEvent(ctx, requestID, constvars.EventEntityVisit, constvars.EventActionCreated, visit.ID, visit.TokenNo, visit.EmpNo, visit.LocationID)

	uc.Log.Info("visitUsecase.CreateVisit visit created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visit.ID.Hex()),
		zap.String(constvars.LoggingTokenNoKey, visit.TokenNo),
	)
	return visit, nil
}

func (uc *visitUsecase) FindAll(ctx context.Context, filter *requests.VisitListFilter, pagination *requests.Pagination) ([]models.Visit, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	mongoFilter, err := buildVisitFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	visits, total, err := uc.VisitRepository.Find(ctx, mongoFilter, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	if err := uc.resolveCreatorNames(ctx, visits); err != nil {
		uc.Log.Warn("visitUsecase.FindAll error resolving creator names",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return visits, total, nil
}

func (uc *visitUsecase) FindByID(ctx context.Context, visitID string) (*models.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	visit, err := uc.VisitRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	visitsSlice := []models.Visit{*visit}
	if err := uc.resolveCreatorNames(ctx, visitsSlice); err == nil {
		visit.CreatedByName = visitsSlice[0].CreatedByName
	}
	return visit, nil
}

func (uc *visitUsecase) FindByUserLocation(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]models.Visit, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.FindByUserLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationIDKey, session.LocationID),
	)

	visits, total, err := uc.VisitRepository.Find(ctx, access.LocationFilter(session, "locationId"), pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	if err := uc.resolveCreatorNames(ctx, visits); err != nil {
		uc.Log.Warn("visitUsecase.FindByUserLocation error resolving creator names",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return visits, total, nil
}

func (uc *visitUsecase) UpdateVisit(ctx context.Context, session *models.Session, visitID string, request *requests.UpdateVisit) (*models.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.UpdateVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.VisitRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !access.CanAccess(session, existing.LocationID) {
		return nil, exceptions.ErrRecordAccessDenied(nil)
	}

	set, err := buildVisitUpdateSet(request, existing.TokenNo)
	if err != nil {
		return nil, err
	}

	updated, err := uc.VisitRepository.UpdateByID(ctx, objectID, set)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	updated.CreatedByName = existing.CreatedByName
	return updated, nil
}

func (uc *visitUsecase) DeleteVisit(ctx context.Context, session *models.Session, visitID string) (*models.Visit, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.DeleteVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.VisitRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !access.CanAccess(session, existing.LocationID) {
		return nil, exceptions.ErrRecordAccessDenied(nil)
	}

	// Hospital and isolation children are not cascade-deleted; they keep
	// their own data and their clinicVisitId pointer goes stale.
	deleted, err := uc.VisitRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	uc.publishEvent(ctx, requestID, constvars.EventEntityVisit, constvars.EventActionDeleted, deleted.ID, deleted.TokenNo, deleted.EmpNo, deleted.LocationID)
	return deleted, nil
}

func (uc *visitUsecase) EmployeeSummary(ctx context.Context, empNo string) (*responses.EmployeeSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.EmployeeSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmpNoKey, empNo),
	)

	if empNo == "" {
		return nil, exceptions.ErrMissingField("empNo")
	}

	visits, err := uc.VisitRepository.FindByEmpNo(ctx, empNo)
	if err != nil {
		return nil, err
	}

	return BuildEmployeeSummary(empNo, visits, time.Now()), nil
}

// BuildEmployeeSummary computes the five summary figures over one employee's
// visits. The figures are independent cuts, not mutually exclusive filters.
func BuildEmployeeSummary(empNo string, visits []models.Visit, now time.Time) *responses.EmployeeSummary {
	summary := &responses.EmployeeSummary{
		EmpNo:              empNo,
		AllTimeTotalVisits: len(visits),
		Last90Days: responses.Last90Days{
			Visits: []responses.SummaryVisit{},
		},
	}

	windowStart := now.AddDate(0, 0, -90)
	for _, visit := range visits {
		if !visit.Date.Before(windowStart) {
			summary.Last90Days.Visits = append(summary.Last90Days.Visits, responses.SummaryVisit{
				Date:     visit.Date,
				Provider: visitProvider(visit),
			})
		}
		if visit.SickLeaveStatus == constvars.SickLeaveApproved {
			summary.SickLeaveApprovedCount++
		}
		summary.TotalReferrals += len(visit.Referrals)
		for _, referral := range visit.Referrals {
			if referral.FollowUpRequired {
				summary.OpenReferrals++
			}
		}
	}

	sort.Slice(summary.Last90Days.Visits, func(i, j int) bool {
		return summary.Last90Days.Visits[i].Date.After(summary.Last90Days.Visits[j].Date)
	})
	summary.Last90Days.Count = len(summary.Last90Days.Visits)
	return summary
}

func visitProvider(visit models.Visit) *string {
	for _, candidate := range []string{visit.ProviderName, visit.DoctorName, visit.SentTo} {
		if candidate != "" {
			value := candidate
			return &value
		}
	}
	return nil
}

func (uc *visitUsecase) ExportVisits(ctx context.Context) (*responses.ExportResult, []byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.ExportVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	visits, err := uc.VisitRepository.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(visits) == 0 {
		return nil, nil, exceptions.ErrNothingToExport(nil)
	}

	if err := uc.resolveCreatorNames(ctx, visits); err != nil {
		uc.Log.Warn("visitUsecase.ExportVisits error resolving creator names",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	content, err := buildExportWorkbook(visits)
	if err != nil {
		return nil, nil, err
	}

	result := &responses.ExportResult{
		Filename: utils.GenerateExportFilename(time.Now()),
		RowCount: len(visits),
	}
	uc.Log.Info("visitUsecase.ExportVisits workbook built",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRowCountKey, result.RowCount),
	)
	return result, content, nil
}

func (uc *visitUsecase) UploadAttachment(ctx context.Context, session *models.Session, visitID, fileName, contentType string, size int64, content io.Reader) (*responses.AttachmentUpload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("visitUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	if !constvars.AttachmentAllowedMIMETypes[contentType] {
		return nil, exceptions.ErrUnsupportedFileType(nil)
	}
	if size > constvars.AttachmentMaxSizeBytes {
		return nil, exceptions.ErrFileTooLarge(nil)
	}

	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	visit, err := uc.VisitRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !access.CanAccess(session, visit.LocationID) {
		return nil, exceptions.ErrRecordAccessDenied(nil)
	}

	now := time.Now()
	objectName := utils.GenerateAttachmentObjectName(visitID, fileName, now)
	if err := uc.AttachmentStorage.Put(ctx, objectName, contentType, size, content); err != nil {
		return nil, err
	}

	attachment := &models.Attachment{
		ObjectName:  objectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		UploadedAt:  now,
	}
	matched, err := uc.VisitRepository.PushAttachment(ctx, objectID, attachment)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	downloadURL, err := uc.AttachmentStorage.PresignedURL(ctx, objectName, uc.PresignedExpiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("visitUsecase.UploadAttachment attachment stored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.AttachmentUpload{
		ObjectName:  objectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		DownloadURL: downloadURL,
	}, nil
}

func (uc *visitUsecase) resolveCreatorNames(ctx context.Context, visits []models.Visit) error {
	if len(visits) == 0 {
		return nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(visits))
	for _, visit := range visits {
		if !visit.CreatedBy.IsZero() && !seen[visit.CreatedBy] {
			seen[visit.CreatedBy] = true
			ids = append(ids, visit.CreatedBy)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	names, err := uc.UserRepository.FindNamesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range visits {
		visits[i].CreatedByName = names[visits[i].CreatedBy]
	}
	return nil
}

func (uc *visitUsecase) publishEvent(ctx context.Context, requestID, entity, action string, recordID primitive.ObjectID, tokenNo, empNo, locationID string) {
	if uc.EventPublisher == nil {
		return
	}
	event := &models.RecordEvent{
		Entity:     entity,
		Action:     action,
		RecordID:   recordID.Hex(),
		TokenNo:    tokenNo,
		EmpNo:      empNo,
		LocationID: locationID,
		OccurredAt: time.Now(),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("visitUsecase record event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityKey, entity),
			zap.Error(err),
		)
	}
}

func buildVisitFilter(filter *requests.VisitListFilter) (bson.M, error) {
	mongoFilter := bson.M{}
	if filter == nil {
		return mongoFilter, nil
	}
	if filter.EmiratesID != "" {
		mongoFilter["emiratesId"] = filter.EmiratesID
	}
	if filter.EmpNo != "" {
		mongoFilter["empNo"] = filter.EmpNo
	}
	if filter.VisitStatus != "" {
		mongoFilter["visitStatus"] = filter.VisitStatus
	}
	if filter.LocationID != "" {
		mongoFilter["locationId"] = filter.LocationID
	}
	if filter.TokenNo != "" {
		mongoFilter["tokenNo"] = filter.TokenNo
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
		mongoFilter["date"] = dateFilter
	}
	return mongoFilter, nil
}

func buildVisitUpdateSet(request *requests.UpdateVisit, tokenNo string) (bson.M, error) {
	set := bson.M{"updatedAt": time.Now()}

	if request.Date != nil {
		parsed, err := utils.ParseDate(*request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		set["date"] = parsed
	}
	if request.Time != nil {
		set["time"] = *request.Time
	}
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
	if request.NatureOfCase != nil {
		set["natureOfCase"] = *request.NatureOfCase
	}
	if request.CaseCategory != nil {
		set["caseCategory"] = *request.CaseCategory
	}
	if request.NurseAssessment != nil {
		set["nurseAssessment"] = *request.NurseAssessment
	}
	if request.SymptomDuration != nil {
		set["symptomDuration"] = *request.SymptomDuration
	}
	if request.Temperature != nil {
		set["temperature"] = *request.Temperature
	}
	if request.BloodPressure != nil {
		set["bloodPressure"] = *request.BloodPressure
	}
	if request.HeartRate != nil {
		set["heartRate"] = *request.HeartRate
	}
	if request.Others != nil {
		set["others"] = *request.Others
	}
	if request.SentTo != nil {
		set["sentTo"] = *request.SentTo
	}
	if request.ProviderName != nil {
		set["providerName"] = *request.ProviderName
	}
	if request.DoctorName != nil {
		set["doctorName"] = *request.DoctorName
	}
	if request.PrimaryDiagnosis != nil {
		set["primaryDiagnosis"] = *request.PrimaryDiagnosis
	}
	if request.SecondaryDiagnosis != nil {
		set["secondaryDiagnosis"] = *request.SecondaryDiagnosis
	}
	if request.Medicines != nil {
		set["medicines"] = toMedicines(*request.Medicines)
	}
	if request.SickLeaveStatus != nil {
		set["sickLeaveStatus"] = *request.SickLeaveStatus
	}
	if request.SickLeaveStartDate != nil {
		set["sickLeaveStartDate"] = parseDatePtr(*request.SickLeaveStartDate)
	}
	if request.SickLeaveEndDate != nil {
		set["sickLeaveEndDate"] = parseDatePtr(*request.SickLeaveEndDate)
	}
	if request.TotalSickLeaveDays != nil {
		set["totalSickLeaveDays"] = *request.TotalSickLeaveDays
	}
	if request.Remarks != nil {
		set["remarks"] = *request.Remarks
	}
	if request.Referrals != nil {
		referrals := toReferrals(*request.Referrals)
		ApplyReferralCodes(tokenNo, referrals)
		set["referrals"] = referrals
	}
	if request.VisitStatus != nil {
		set["visitStatus"] = *request.VisitStatus
	}
	if request.FinalRemarks != nil {
		set["finalRemarks"] = *request.FinalRemarks
	}
	if request.IPAdmissionRequired != nil {
		set["ipAdmissionRequired"] = *request.IPAdmissionRequired
	}
	return set, nil
}
