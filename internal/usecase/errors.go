package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// handlerで返すエラーコード
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
)

var (
	ErrEmptyCart         = errors.New("cart empty")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrPriceMismatch     = errors.New("price mismatch")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type HTTPError struct {
	Status  int
	Message string
	Code    string
	Err     error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// errors.Isで中のセンチネルを見られるようにする
func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Code:    codeForStatus(status),
	}
}

// センチネル付き
func wrapHTTPError(status int, code string, message string, err error) error {
	return &HTTPError{
		Status:  status,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnauthorized:
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}

func dbError(err error) error {
	return wrapHTTPError(http.StatusInternalServerError, CodeInternal, "db error", err)
}
