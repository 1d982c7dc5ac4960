package utils

import (
	"fmt"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateExportFilename(now time.Time) string {
	return fmt.Sprintf("clinic_visits_%s.xlsx", now.Format(constvars.ExportFileTime))
}

func GenerateAttachmentObjectName(visitID, fileName string, now time.Time) string {
	return fmt.Sprintf("visits/%s/%s_%s", visitID, now.Format(constvars.ExportFileTime), fileName)
}
