package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldCatalogVersion = "catalog-version"
	FieldCursor         = "cursor"
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldErrors         = "errors"
	FieldExample        = "example"
	FieldHasNext        = "has-next"
	FieldHTTPMethod     = "http-method"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldObjectID       = "object-id"
	FieldObjectType     = "object-type"
	FieldObjects        = "objects"
	FieldOutcome        = "outcome"
	FieldPage           = "page"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldTraceID        = "trace-id"
	FieldURL            = "url"
)
