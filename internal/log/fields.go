package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldEmail      = "email"
	FieldExpenseID  = "expense_id"
	FieldPort       = "port"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentStore  = "store"
	ComponentAuth   = "auth"
	ComponentReport = "report"
	ComponentEvents = "events"
	ComponentConfig = "config"
)
