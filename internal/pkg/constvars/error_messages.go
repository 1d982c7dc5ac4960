package constvars

// Client-facing messages. Kept deliberately vague for anything that would
// leak internals.
const (
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized, please login first"
	ErrClientNotAllowed                    = "You are not allowed to perform this action"
	ErrClientNotLoggedIn                   = "Your session is invalid or expired, please login again"
	ErrClientInvalidCredentials            = "Invalid email/employee id or password"
	ErrClientUserAlreadyExists             = "A user with this email or employee id already exists"
	ErrClientRecordNotFound                = "The requested record was not found"
	ErrClientVisitReferenceNotFound        = "The referenced clinic visit does not exist"
	ErrClientNothingToExport               = "There are no visits to export"
	ErrClientUnsupportedFileType           = "Unsupported file type"
	ErrClientFileTooLarge                  = "Uploaded file exceeds the maximum allowed size"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Developer-facing messages, surfaced in logs and non-production responses.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevURLParamIDValidationFailed = "URL parameter '%s' is not a valid id"
	ErrDevCannotParseJSON            = "Failed to parse JSON payload"
	ErrDevCannotParseDate            = "Failed to parse date value"
	ErrDevCannotMarshalJSON          = "Failed to marshal value into JSON"
	ErrDevCannotParseMultipartForm   = "Failed to parse multipart form"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to generate JWT"
	ErrDevAuthInvalidSession        = "Session not found or expired"
	ErrDevAuthRoleNotAllowed        = "Actor role is not allowed for this endpoint"
	ErrDevAuthRecordAccessDenied    = "Actor cannot access this record"
	ErrDevInvalidCredentials        = "Credentials do not match any user"
	ErrDevUserAlreadyExists         = "User with same email or empId already exists"
	ErrDevFailedToHashPassword      = "Failed to hash password"

	ErrDevRecordNotFound          = "Document with given id does not exist"
	ErrDevVisitReferenceNotFound  = "clinicVisitId does not reference an existing visit"
	ErrDevNothingToExport         = "Visit collection is empty, refusing to build export"
	ErrDevUnsupportedFileType     = "File content type is not in the allowed set"
	ErrDevFileTooLarge            = "File size exceeds configured limit"
	ErrDevServerDeadlineExceeded  = "Request deadline exceeded"
	ErrDevServerProcess           = "Unhandled server error"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document(s)"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToCountDocuments   = "MongoDB failed to count documents"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate cursor"
	ErrDevDBStringNotObjectID        = "Given string is not a valid ObjectID"
	ErrDevDBFailedToIncrementCounter = "MongoDB failed to increment token counter"

	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisDeleteData = "Redis failed to delete data"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue %s"

	ErrDevMinioFailedToCreateObject = "Minio failed to store object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "Minio failed to build presigned URL for bucket %s"

	ErrDevExcelBuildFailed = "Failed to build spreadsheet"
)
