// Package errors defines the application error taxonomy. Every error carries a
// fixed HTTP status, a business error code and a message catalog key; the
// human-readable text is resolved from the locale catalog at response time.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int             // HTTP status code
	ErrorCode() string         // Business error code
	MessageKey() string        // Key into the locale message catalog
	Params() map[string]string // Placeholder values for the catalog template
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode   int
	errorCode  string
	messageKey string
	params     map[string]string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, messageKey string) *BaseError {
	return &BaseError{
		httpCode:   httpCode,
		errorCode:  errorCode,
		messageKey: messageKey,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.errorCode
}

// Is matches any derived copy of the same template, so errors.Is works across
// With and WrapMessage.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// With returns a copy of the error carrying one more placeholder value for
// message resolution.
func (e *BaseError) With(key, value string) *BaseError {
	params := make(map[string]string, len(e.params)+1)
	for k, v := range e.params {
		params[k] = v
	}
	params[key] = value

	return &BaseError{
		httpCode:   e.httpCode,
		errorCode:  e.errorCode,
		messageKey: e.messageKey,
		params:     params,
	}
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// MessageKey returns the message catalog key.
func (e *BaseError) MessageKey() string {
	return e.messageKey
}

// Params returns the placeholder values for the catalog template.
func (e *BaseError) Params() map[string]string {
	return e.params
}

// Predefined error types
var (
	// Category errors
	ErrCategoryNotFound      = NewBaseError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "category.not_found")
	ErrCategoryAlreadyExists = NewBaseError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS", "category.already_exists")
	ErrCategoriesEmpty       = NewBaseError(http.StatusNotFound, "CATEGORIES_EMPTY", "category.empty")

	// Product errors
	ErrProductNotFound = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "product.not_found")
	ErrProductsEmpty   = NewBaseError(http.StatusNotFound, "PRODUCTS_EMPTY", "product.empty")

	// Wishlist errors
	ErrWishlistNotFound      = NewBaseError(http.StatusNotFound, "WISHLIST_NOT_FOUND", "wishlist.not_found")
	ErrWishlistAlreadyExists = NewBaseError(http.StatusConflict, "WISHLIST_ALREADY_EXISTS", "wishlist.already_exists")
	ErrWishlistsEmpty        = NewBaseError(http.StatusNotFound, "WISHLISTS_EMPTY", "wishlist.empty")
	ErrWishlistLimitReached  = NewBaseError(http.StatusBadRequest, "WISHLIST_LIMIT_REACHED", "wishlist.limit_reached")

	// Pagination errors
	ErrInvalidPagination    = NewBaseError(http.StatusBadRequest, "INVALID_PAGINATION", "pagination.invalid_arguments")
	ErrInvalidSortDirection = NewBaseError(http.StatusBadRequest, "INVALID_SORT_DIRECTION", "pagination.invalid_sort_direction")

	// User and authentication errors
	ErrUserNotFound        = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "user.not_found")
	ErrLoginAlreadyExists  = NewBaseError(http.StatusConflict, "LOGIN_ALREADY_EXISTS", "user.login_already_exists")
	ErrEmailAlreadyExists  = NewBaseError(http.StatusConflict, "EMAIL_ALREADY_EXISTS", "user.email_already_exists")
	ErrUserAlreadyVerified = NewBaseError(http.StatusBadRequest, "USER_ALREADY_VERIFIED", "user.already_verified")
	ErrUserNotEnabled      = NewBaseError(http.StatusBadRequest, "USER_NOT_ENABLED", "user.not_enabled")
	ErrInvalidCredentials  = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "auth.invalid_credentials")
	ErrInvalidOtp          = NewBaseError(http.StatusUnauthorized, "INVALID_OTP", "auth.invalid_otp")

	// Password reset errors
	ErrMissingResetArguments = NewBaseError(http.StatusBadRequest, "MISSING_RESET_ARGUMENTS", "auth.missing_reset_arguments")
	ErrPasswordsDoNotMatch   = NewBaseError(http.StatusBadRequest, "PASSWORDS_DO_NOT_MATCH", "auth.passwords_do_not_match")

	// Shopping cart errors
	ErrCartItemNotFound           = NewBaseError(http.StatusNotFound, "CART_ITEM_NOT_FOUND", "cart.item_not_found")
	ErrUnauthorizedCartItemUpdate = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED_CART_ITEM_UPDATE", "cart.unauthorized_item_update")

	// Address errors
	ErrAddressNotFound     = NewBaseError(http.StatusNotFound, "ADDRESS_NOT_FOUND", "address.not_found")
	ErrAddressesEmpty      = NewBaseError(http.StatusNotFound, "ADDRESSES_EMPTY", "address.empty")
	ErrAddressLimitReached = NewBaseError(http.StatusBadRequest, "ADDRESS_LIMIT_REACHED", "address.limit_reached")

	// General errors
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "common.validation_failed")
	ErrForbidden        = NewBaseError(http.StatusForbidden, "FORBIDDEN", "common.forbidden")
	ErrMailDispatch     = NewBaseError(http.StatusInternalServerError, "MAIL_DISPATCH_FAILED", "common.mail_dispatch_failed")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "common.internal_error")
)

// DatabaseExecuteError represents a database execution error, implementing the
// AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// MessageKey returns the message catalog key.
func (e *DatabaseExecuteError) MessageKey() string {
	return "common.database_failed"
}

// Params returns the placeholder values for the catalog template.
func (e *DatabaseExecuteError) Params() map[string]string {
	return map[string]string{"details": e.details}
}
