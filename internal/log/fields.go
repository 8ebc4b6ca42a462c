package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldSource     = "source"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldDirection  = "direction"
	FieldSection    = "section"
	FieldBackend    = "backend"
	FieldSheet      = "sheet"
	FieldEmail      = "email"
	FieldCount      = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentSession = "session"
	ComponentGateway = "gateway"
	ComponentExport  = "export"
	ComponentWorker  = "worker"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
	ComponentCache   = "cache"
)

// Operations defines standard operation names
const (
	OpFetch    = "fetch"
	OpAppend   = "append"
	OpSubmit   = "submit"
	OpValidate = "validate"
	OpExport   = "export"
	OpLogin    = "login"
	OpLogout   = "logout"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
