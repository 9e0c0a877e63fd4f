package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/marketplace/constant"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrForbidden)

	assert.Equal(t, "access denied", err.Error())
	assert.Equal(t, "0007", err.ErrorCode())
	assert.Equal(t, http.StatusForbidden, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrForbidden, err.Type())
}

func TestAsCustomError(t *testing.T) {
	wrapped := fmt.Errorf("confirm: %w", cerr.SetCustomError(constant.ErrNotFound))

	ce, ok := cerr.AsCustomError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ce.ErrorHTTPCode())

	_, ok = cerr.AsCustomError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIs(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrInsufficientStock)

	assert.True(t, cerr.Is(err, constant.ErrInsufficientStock))
	assert.False(t, cerr.Is(err, constant.ErrEmptyCart))
	assert.False(t, cerr.Is(nil, constant.ErrInsufficientStock))
}

func TestErrorMapsAreComplete(t *testing.T) {
	for errType := range constant.ErrorTypeMessage {
		_, hasCode := constant.ErrorTypeCode[errType]
		_, hasHTTP := constant.ErrorTypeHTTPCode[errType]
		assert.Truef(t, hasCode, "missing code for %d", errType)
		assert.Truef(t, hasHTTP, "missing http status for %d", errType)
	}
}
