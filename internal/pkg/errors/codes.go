package errors

import "net/http"

// Error code constants. Errors carry code + params; backend logs are
// always in English, user-facing translation happens in the frontend.

// Capacity error codes.
const (
	CodeCapacityExceeded     = "CAPACITY_EXCEEDED"
	CodeCapacityOverflow     = "CAPACITY_OVERFLOW"
	CodeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
)

// Field error codes.
const (
	CodeFieldNotFound = "FIELD_NOT_FOUND"
	CodeFieldInactive = "FIELD_INACTIVE"
	CodeFieldExists   = "FIELD_ALREADY_EXISTS"
)

// Reservation/Project error codes.
const (
	CodeReservationNotFound = "RESERVATION_NOT_FOUND"
	CodeProjectNotFound     = "PROJECT_NOT_FOUND"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeNotPending          = "RESERVATION_NOT_PENDING"
	CodeCannotDelete        = "CANNOT_DELETE"
)

// Transaction error codes.
const (
	CodeTransactionTimeout = "TRANSACTION_TIMEOUT"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
	CodeUserNotFound = "USER_NOT_FOUND"
)

// Validation error codes.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// CapacityExceeded reports that a consumption would overdraw a field's
// free capacity. 409: the request was well-formed, current state refuses it.
func CapacityExceeded(fieldID string, requested, free float64) *AppError {
	return New(CodeCapacityExceeded, "requested surface exceeds free capacity", http.StatusConflict).
		WithParams(map[string]interface{}{
			"field_id":  fieldID,
			"requested": requested,
			"free":      free,
		})
}

// CapacityOverflow reports that a release would push free capacity above
// total capacity. Only reachable through a bookkeeping bug, so 500.
func CapacityOverflow(fieldID string) *AppError {
	return Internal(CodeCapacityOverflow, "free capacity would exceed total capacity for field "+fieldID)
}

// InsufficientCapacity reports a total-capacity reduction below current usage.
func InsufficientCapacity(fieldID string, newTotal, used float64) *AppError {
	return New(CodeInsufficientCapacity, "total capacity below current usage", http.StatusConflict).
		WithParams(map[string]interface{}{
			"field_id":  fieldID,
			"new_total": newTotal,
			"used":      used,
		})
}

// FieldNotFound creates a field not found error.
func FieldNotFound(fieldID string) *AppError {
	return NotFound(CodeFieldNotFound, "field not found").
		WithParams(map[string]interface{}{"field_id": fieldID})
}

// FieldInactive reports an operation that requires an ACTIVE field.
func FieldInactive(fieldID string) *AppError {
	return Conflict(CodeFieldInactive, "field is inactive").
		WithParams(map[string]interface{}{"field_id": fieldID})
}

// InvalidTransition reports a state-machine move not permitted from the
// current state.
func InvalidTransition(from, to string) *AppError {
	return Conflict(CodeInvalidTransition, "transition not permitted").
		WithParams(map[string]interface{}{"from": from, "to": to})
}

// NotPending reports a decision attempted on a non-PENDING reservation.
func NotPending(reservationID, status string) *AppError {
	return Conflict(CodeNotPending, "reservation is not pending").
		WithParams(map[string]interface{}{"reservation_id": reservationID, "status": status})
}

// CannotDelete reports a deletion blocked by existing holders or pending
// requests.
func CannotDelete(resourceType, resourceID, reason string) *AppError {
	return Conflict(CodeCannotDelete, "deletion blocked: "+reason).
		WithParams(map[string]interface{}{"resource_type": resourceType, "resource_id": resourceID})
}

// TransactionTimeout reports that the atomic unit of work could not commit.
// Retryable by the caller; no partial state is visible.
func TransactionTimeout(err error) *AppError {
	return Wrap(err, CodeTransactionTimeout, "transaction could not complete", http.StatusServiceUnavailable)
}
