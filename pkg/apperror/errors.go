package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code, so callers can
// write errors.Is(err, apperror.ErrForbidden()).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrUnauthenticated() *AppError {
	return New("AUTH_001", "Authentication required", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_003", "Forbidden", http.StatusForbidden)
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 error carrying the offending field's message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Funds (FUND) ----

func ErrInsufficientFunds() *AppError {
	return New("FUND_001", "Insufficient balance", http.StatusBadRequest)
}

func ErrUserBalanceTooLow() *AppError {
	return New("FUND_001", "User balance too low", http.StatusBadRequest)
}

func ErrShopBalanceTooLow() *AppError {
	return New("FUND_001", "Shop balance too low", http.StatusBadRequest)
}

// ---- Requests (REQ) ----

func ErrAlreadyReviewed() *AppError {
	return New("REQ_001", "Request has already been reviewed", http.StatusConflict)
}

// ---- Orders (ORD) ----

func ErrEmptyCart() *AppError {
	return New("ORD_001", "Cart is empty", http.StatusBadRequest)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("ORD_002", fmt.Sprintf("Cannot move order from %s to %s", from, to), http.StatusConflict)
}

func ErrStaleOrder() *AppError {
	return New("ORD_003", "Order was modified concurrently", http.StatusConflict)
}

func ErrCheckoutInProgress() *AppError {
	return New("ORD_004", "A checkout with this idempotency key is still in progress", http.StatusConflict)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
