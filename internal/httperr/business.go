package httperr

import "errors"

// Error codes shared by domain operations. Handlers map them to HTTP
// statuses via StatusFor.
const (
	CodeInvalidInput      = "invalid_input"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeForbidden         = "forbidden"
	CodeUnauthorized      = "unauthorized"
	CodeInvalidState      = "invalid_state"
	CodeInvalidTransition = "invalid_transition"
	CodeUnavailable       = "unavailable"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func StatusFor(code string) int {
	switch code {
	case CodeInvalidInput:
		return 400
	case CodeUnauthorized:
		return 401
	case CodeForbidden:
		return 403
	case CodeNotFound:
		return 404
	case CodeConflict:
		return 409
	case CodeInvalidState, CodeInvalidTransition:
		return 422
	case CodeUnavailable:
		return 503
	default:
		return 500
	}
}
