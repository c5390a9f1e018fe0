package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyOrgSlug   = "org_slug"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableOrganizations = "organizations"
	TableMemberships   = "memberships"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
