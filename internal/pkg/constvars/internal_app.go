package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "requestID"
	CONTEXT_SESSION_DATA_KEY ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY   ContextKey = "sessionID"
)

const (
	MongoCollectionUsers       = "users"
	MongoCollectionClients     = "clients"
	MongoCollectionPrograms    = "programs"
	MongoCollectionEnrollments = "enrollments"
)

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"

	ProgramStatusActive   = "active"
	ProgramStatusInactive = "inactive"

	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusCancelled = "cancelled"

	UserRoleDefault = "user"
)

const (
	URLParamClientID     = "clientID"
	URLParamProgramID    = "programID"
	URLParamEnrollmentID = "enrollmentID"
	QueryParamSearchTerm = "q"
)
