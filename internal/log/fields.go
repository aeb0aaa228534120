package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldYear        = "year"
	FieldMonth       = "month"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldSkippedRows = "skipped_rows"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentStore    = "store"
	ComponentReport   = "report"
	ComponentForecast = "forecast"
	ComponentBudget   = "budget"
	ComponentTemplate = "template"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpLoad     = "load"
	OpReport   = "report"
	OpForecast = "forecast"
	OpBudget   = "budget"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
