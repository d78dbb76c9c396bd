package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // internal cause, never sent to the client
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

// ---- Pix (PIX) ----

// ErrPixKeyNotConfigured is returned when no receiver key is configured.
// The message is the one the storefront has always shown.
func ErrPixKeyNotConfigured() *AppError {
	return New("PIX_001", "PIX_KEY não configurada", http.StatusBadRequest)
}

func ErrPixFieldOverflow(err error) *AppError {
	return Wrap("PIX_002", "Pix payload field too long", http.StatusInternalServerError, err)
}

func ErrInvalidPayload(err error) *AppError {
	return Wrap("PIX_003", "Invalid Pix payload", http.StatusUnprocessableEntity, err)
}

// ---- QR code (QR) ----

func ErrQRRender(err error) *AppError {
	return Wrap("QR_001", "Falha ao gerar QR", http.StatusInternalServerError, err)
}

// ---- Catalog (CAT) ----

func ErrProductNotFound(id string) *AppError {
	return New("CAT_001", fmt.Sprintf("Product %s not found", id), http.StatusNotFound)
}

func ErrUnknownVariant(productID, label string) *AppError {
	return New("CAT_002", fmt.Sprintf("Product %s has no variant %q", productID, label), http.StatusUnprocessableEntity)
}

// ---- Checkout (CHK) ----

func ErrEmptyCart() *AppError {
	return New("CHK_001", "Cart is empty", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 error carrying message to the client.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// NotFound is the response for unknown routes.
func NotFound() *AppError {
	return New("SYS_404", "Not found", http.StatusNotFound)
}
