// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError = "error.internal"
	KeyInvalidID     = "error.invalid_id"
	KeyRateLimited   = "error.rate_limited"

	// Orders
	KeyOrderCreated  = "order.created"
	KeyOrderUpdated  = "order.updated"
	KeyOrderDeleted  = "order.deleted"
	KeyOrderNotFound = "order.not_found"

	// Clients
	KeyClientCreated  = "client.created"
	KeyClientUpdated  = "client.updated"
	KeyClientDeleted  = "client.deleted"
	KeyClientNotFound = "client.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
