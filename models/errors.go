package models

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindNotAllowed
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindNotAllowed:
		return "NOT_ALLOWED"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// HTTPStatus maps the kind onto the response code the API promises for it.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error messages shared between services and tests.
const (
	ErrMsgNoCart          = "no cart with the given id"
	ErrMsgCartEmpty       = "cart is empty"
	ErrMsgNoProduct       = "no product with given id"
	ErrMsgCartNotFound    = "cart not found"
	ErrMsgCartItemMissing = "cart item not found"
	ErrMsgCheckedOut      = "cart was already checked out"
	ErrMsgNoCustomer      = "no customer is associated with this account"
	ErrMsgOrderNotFound   = "order not found"
	ErrMsgProductNotFound = "product not found"
	ErrMsgProductInOrder  = "Product cannot be deleted because it is associated with an order item."
	ErrMsgCollectionInUse = "Collection cannot be deleted because it includes one or more products."
	ErrMsgCollectionMiss  = "collection not found"
	ErrMsgNoCollection    = "no collection with given id"
	ErrMsgNoTag           = "no tag with given id"
	ErrMsgUpsertConflict  = "cart item was modified concurrently, please retry"
	ErrMsgQuantity        = "quantity must be a positive integer"
	ErrMsgQuantityRange   = "quantity is out of range"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewValidationErrorf(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewNotAllowed(message string) *AppError {
	return &AppError{Kind: KindNotAllowed, Message: message}
}

func NewConflict(message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf classifies any error; errors that are not an *AppError are internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
