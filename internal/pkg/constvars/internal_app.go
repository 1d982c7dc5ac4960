package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY   ContextKey = "session_id"
)

const (
	RoleStaff      = "staff"
	RoleManager    = "manager"
	RoleSuperadmin = "superadmin"
)

const (
	VisitStatusOpen     = "Open"
	VisitStatusClosed   = "Closed"
	VisitStatusReferred = "Referred"
	VisitStatusOther    = "Other"

	SickLeaveApproved    = "Approved"
	SickLeaveNotApproved = "Not Approved"
)

// Destination value that switches the token prefix to the external variant.
const SentToExternalProvider = "EXTERNAL PROVIDER"

const (
	TokenFallbackLocationCode = "UNKN"
	TokenExternalSuffix       = "XT"
	TokenSequenceDigits       = 4
	TokenSequenceMax          = 9999
)

// Export column caps keep row width bounded regardless of outliers.
const (
	ExportMaxMedicines = 10
	ExportMaxReferrals = 5
	ExportMaxFollowUps = 5
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RedisKeySessionPrefix = "session:"
)

const (
	EventActionCreated = "created"
	EventActionDeleted = "deleted"

	EventEntityVisit     = "clinic_visit"
	EventEntityHospital  = "hospital"
	EventEntityIsolation = "isolation"
)

const (
	AttachmentMaxSizeBytes = 5 << 20
)

// AttachmentAllowedMIMETypes is the upload whitelist: images and PDF only.
var AttachmentAllowedMIMETypes = map[string]bool{
	MIMEImageJPEG:      true,
	MIMEImagePNG:       true,
	MIMEImageWEBP:      true,
	MIMEImageGIF:       true,
	MIMEApplicationPDF: true,
}
