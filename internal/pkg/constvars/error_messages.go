package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to do this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "a user already exists with this email"
	ErrClientUserNotFound                  = "user not found"
	ErrClientClientNotFound                = "client not found"
	ErrClientProgramNotFound               = "program not found"
	ErrClientEnrollmentNotFound            = "enrollment not found"
	ErrClientSearchTermRequired            = "search query parameter is required"
	ErrClientClientRequiredFields          = "first name, last name, and email are required"
	ErrClientProgramRequiredFields         = "program name and description are required"
	ErrClientEnrollmentRequiredFields      = "client ID and program ID are required"
	ErrClientEnrollmentInvalidTransition   = "enrollment status cannot change from %s to %s"
)

// Error messages for developers
const (
	ErrDevValidationFailed         = "validation failed"
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON data"
	ErrDevCannotMarshalJSON        = "cannot marshal data to JSON"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevURLParamMissing          = "URL parameter %s is missing"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid"
	ErrDevAuthSigningMethod        = "unexpected JWT signing method"
	ErrDevAuthGenerateToken        = "failed to generate auth token"
	ErrDevAuthInvalidSession       = "session is invalid or expired"
	ErrDevAuthInvalidCredentials   = "invalid credentials"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevUserNotExists            = "user does not exist"
	ErrDevUserAlreadyExists        = "user already exists with the given email"
	ErrDevClientNotExists          = "client does not exist"
	ErrDevProgramNotExists         = "program does not exist"
	ErrDevEnrollmentNotExists      = "enrollment does not exist"
	ErrDevMissingRequiredFields    = "required fields are missing or empty"
	ErrDevSearchTermEmpty          = "search term is empty"
	ErrDevInvalidStatusTransition  = "status transition is not allowed"
	ErrDevDBFailedToFindDocument   = "database failed to find document"
	ErrDevDBFailedToInsertDocument = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument = "database failed to update document"
	ErrDevDBFailedToIterateCursor  = "database failed to iterate cursor"
	ErrDevDBFailedToDistinctValues = "database failed to list distinct values"
	ErrDevRedisSetData             = "redis failed to set data"
	ErrDevRedisGetData             = "redis failed to get data"
	ErrDevRedisDeleteData          = "redis failed to delete data"
	ErrDevRabbitMQPublish          = "rabbitmq failed to publish message to queue %s"
	ErrDevUnknown                  = "unknown"
)
