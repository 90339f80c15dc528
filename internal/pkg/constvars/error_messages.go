package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientUsernameAlreadyExists         = "Username already exists"
	ErrClientEmailAlreadyExists            = "Email already exists"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"

	ErrClientAddonRequestNotFound = "Add-on request not found"
	ErrClientAddonInvalidAction   = "Approval action must be add_to_same_sample or need_new_sample"
	ErrClientAddonReasonRequired  = "Rejection reason is required"
	ErrClientAddonAlreadyDecided  = "Add-on request is no longer pending"
	ErrClientAddonNotApproved     = "Only approved add-on requests can be completed"
	ErrClientAddonRequestBusy     = "Add-on request is being processed, please retry"
	ErrClientWardNotFound         = "Ward not found"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed       = "VALIDATION_FAILED"
	ErrDevInvalidInput           = "INVALID_INPUT"
	ErrDevCannotParseJSON        = "CANNOT_PARSE_JSON"
	ErrDevCannotParseDate        = "CANNOT_PARSE_DATE"
	ErrDevMissingRequestID       = "MISSING_REQUEST_ID"
	ErrDevMissingSessionData     = "MISSING_SESSION_DATA"
	ErrDevServerProcess          = "SERVER_PROCESS_FAILED"
	ErrDevServerDeadlineExceeded = "SERVER_DEADLINE_EXCEEDED"

	ErrDevAuthTokenMissing          = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalid          = "AUTH_TOKEN_INVALID"
	ErrDevAuthTokenInvalidOrExpired = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthSigningMethod         = "AUTH_UNEXPECTED_SIGNING_METHOD"
	ErrDevAuthGenerateToken         = "AUTH_GENERATE_TOKEN_FAILED"
	ErrDevAuthInvalidSession        = "AUTH_INVALID_SESSION"
	ErrDevInvalidCredentials        = "AUTH_INVALID_CREDENTIALS"
	ErrDevFailedToHashPassword      = "AUTH_HASH_PASSWORD_FAILED"
	ErrDevUsernameAlreadyExists     = "USERNAME_ALREADY_EXISTS"
	ErrDevEmailAlreadyExists        = "EMAIL_ALREADY_EXISTS"
	ErrDevUserNotExists             = "USER_NOT_EXISTS"

	ErrDevAddonRequestNotFound   = "ADDON_REQUEST_NOT_FOUND"
	ErrDevAddonInvalidTransition = "ADDON_INVALID_TRANSITION"
	ErrDevAddonInvalidAction     = "ADDON_INVALID_APPROVAL_ACTION"
	ErrDevAddonReasonRequired    = "ADDON_REJECTION_REASON_REQUIRED"
	ErrDevAddonLockNotAcquired   = "ADDON_LOCK_NOT_ACQUIRED"
	ErrDevAuditLogUnknownRequest = "AUDIT_LOG_UNKNOWN_REQUEST"
	ErrDevWardNotFound           = "WARD_NOT_FOUND"

	ErrDevDBFailedToFindDocument     = "DB_FIND_DOCUMENT_FAILED"
	ErrDevDBFailedToInsertDocument   = "DB_INSERT_DOCUMENT_FAILED"
	ErrDevDBFailedToUpdateDocument   = "DB_UPDATE_DOCUMENT_FAILED"
	ErrDevDBFailedToDeleteDocument   = "DB_DELETE_DOCUMENT_FAILED"
	ErrDevDBFailedToIterateDocuments = "DB_ITERATE_DOCUMENTS_FAILED"
	ErrDevDBStringNotObjectID        = "DB_STRING_NOT_OBJECT_ID"

	ErrDevRedisSetData      = "REDIS_SET_FAILED"
	ErrDevRedisGetData      = "REDIS_GET_FAILED"
	ErrDevRedisDeleteData   = "REDIS_DELETE_FAILED"
	ErrDevRedisUnlock       = "REDIS_UNLOCK_FAILED"
	ErrDevCannotMarshalJSON = "CANNOT_MARSHAL_JSON"
)

// Validation messages mapper.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

const ResponseUnknown = "unknown"
