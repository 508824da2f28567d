package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind tells callers whether a failure is the client's fault, a state
// conflict, or infrastructure that is safe to retry.
type Kind string

const (
	KindValidation    Kind = "validation_error"
	KindInvalidState  Kind = "invalid_state"
	KindNotFound      Kind = "not_found"
	KindUnauthorized  Kind = "unauthorized"
	KindStore         Kind = "store_error"
	KindGateway       Kind = "gateway_error"
	KindUnverified    Kind = "unverified_event"
	KindOrphanedEvent Kind = "orphaned_event"
	KindInternal      Kind = "internal_error"
)

type CustomError struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, code int, msg string, err error) *CustomError {
	return &CustomError{Kind: kind, Code: code, Message: msg, Err: err}
}

func BadRequest(msg string) *CustomError {
	return newError(KindValidation, http.StatusBadRequest, msg, nil)
}

func ValidationError(msg string) *CustomError {
	return newError(KindValidation, http.StatusBadRequest, msg, nil)
}

func InvalidStateError(msg string) *CustomError {
	return newError(KindInvalidState, http.StatusConflict, msg, nil)
}

func NotFound(msg string) *CustomError {
	return newError(KindNotFound, http.StatusNotFound, msg, nil)
}

func UnauthorizedError(msg string) *CustomError {
	return newError(KindUnauthorized, http.StatusUnauthorized, msg, nil)
}

func StoreError(msg string, err error) *CustomError {
	return newError(KindStore, http.StatusInternalServerError, msg, err)
}

// GatewayError is a failed call to an upstream HTTP service (payment
// gateway, mail provider, places API).
func GatewayError(msg string, err error) *CustomError {
	return newError(KindGateway, http.StatusBadGateway, msg, err)
}

func UnverifiedEventError(msg string, err error) *CustomError {
	return newError(KindUnverified, http.StatusBadRequest, msg, err)
}

// OrphanedEventError marks an event that matched no booking. It is logged for
// reconciliation and acknowledged, never returned to the event source.
func OrphanedEventError(msg string) *CustomError {
	return newError(KindOrphanedEvent, http.StatusOK, msg, nil)
}

func InternalServerError(msg string) *CustomError {
	return newError(KindInternal, http.StatusInternalServerError, msg, nil)
}

// CacheError is a failed call to redis (cache, event markers, scheduled
// tasks). Callers degrade instead of failing the request.
func CacheError(msg string, err error) *CustomError {
	return newError(KindInternal, http.StatusInternalServerError, msg, err)
}

// KindOf returns the kind of the first CustomError in err's chain, or
// KindInternal for foreign errors.
func KindOf(err error) Kind {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// Retryable reports whether repeating the same call may succeed.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindStore, KindGateway, KindInternal:
		return err != nil
	default:
		return false
	}
}

// StatusCode maps err to the HTTP status the handlers answer with.
func StatusCode(err error) int {
	var ce *CustomError
	if stderrors.As(err, &ce) && ce.Code != 0 {
		return ce.Code
	}
	return http.StatusInternalServerError
}
