package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldKey       = "key"
	FieldEntityID  = "entity_id"
	FieldCount     = "count"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldCategory  = "category"
	FieldLevel     = "level"
	FieldPeriod    = "period"
)

// Components defines standard component names.
const (
	ComponentApp        = "app"
	ComponentStore      = "store"
	ComponentRepository = "repository"
	ComponentBootstrap  = "bootstrap"
	ComponentAlerts     = "alerts"
	ComponentWorker     = "worker"
	ComponentDashboard  = "dashboard"
)

// Operations defines standard operation names.
const (
	OpList    = "list"
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpReplace = "replace"
	OpSeed    = "seed"
	OpPublish = "publish"
)
