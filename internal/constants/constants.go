package constants

const (
	// Pagination
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100

	// Context keys
	ContextKeyUser      = "current_user"
	ContextKeyRequestID = "request_id"

	// Headers
	HeaderTotalCount  = "X-Total-Count"
	HeaderRequestID   = "X-Request-ID"
	HeaderProcessTime = "X-Process-Time"

	// Tokens
	TokenTypeBearer  = "bearer"
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"

	// Slug generation retries after a unique violation on insert
	MaxSlugAttempts = 5

	// Password rules
	MinPasswordLength = 8
	MaxPasswordLength = 100
)
