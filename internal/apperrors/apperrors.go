package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Kind classifies a failure for the HTTP boundary.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindAuthFailed
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// AuthFailed carries a fixed generic message so that "unknown email" and
// "wrong password" are indistinguishable to the caller.
func AuthFailed() *Error {
	return &Error{Kind: KindAuthFailed, Message: "AUTH_FAILED"}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// ToHTTP is the single boundary mapping from store/library failures to an
// HTTP error. Anything unrecognized is logged in full and rendered as an
// opaque 500; internal detail never reaches the client.
func ToHTTP(err error) *echo.HTTPError {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindNotFound:
			return echo.NewHTTPError(http.StatusNotFound, appErr.Message)
		case KindValidation:
			return echo.NewHTTPError(http.StatusUnprocessableEntity, appErr.Message)
		case KindAuthFailed:
			return echo.NewHTTPError(http.StatusUnauthorized, appErr.Message)
		case KindConflict:
			return echo.NewHTTPError(http.StatusConflict, appErr.Message)
		}
		err = appErr.Err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	}

	logrus.WithError(err).Error("internal error")
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
