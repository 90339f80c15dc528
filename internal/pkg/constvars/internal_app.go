package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
	CONTEXT_USER_ID_KEY      ContextKey = "user_id"
)

// User roles carried on the account record. Authorization per route is the
// caller's responsibility; the service only records who acted.
const (
	RoleAdmin       = "admin"
	RoleChargeNurse = "charge_nurse"
	RoleLabStaff    = "lab_staff"
	RoleQuality     = "quality"
)


const (
	RedisSessionKeyFormat   = "session:%s"
	RedisAddonLockKeyFormat = "addon:lock:%s"
)
