package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/marketplace/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// AsCustomError unwraps err into a CustomError when one is present in the chain.
func AsCustomError(err error) (CustomError, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CustomError{}, false
}

// Is reports whether err carries a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := AsCustomError(err)
	return ok && ce.errType == errorType
}
