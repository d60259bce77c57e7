package httperr

import "errors"

// Kind classifies a business error so transports can pick a status code
// without matching on error strings.
type Kind int

const (
	KindInvalidArgument Kind = iota
	KindNotFound
	KindConflict
	KindAlreadyExists
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrInvalid(code, message string) error {
	return BusinessError{Kind: KindInvalidArgument, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrAlreadyExists(code, message string) error {
	return BusinessError{Kind: KindAlreadyExists, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
