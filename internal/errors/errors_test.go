package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := NotFound("tag not found")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrConflict))
}

func TestError_Wrapping(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeInternal, "persist failed")

	assert.Contains(t, err.Error(), "persist failed")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, Unwrap(err))
	assert.True(t, Is(err, ErrInternal))
}

func TestError_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeValidation, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_WithDetails(t *testing.T) {
	err := Validation("validation failed").WithDetails(map[string]string{"name": "is required"})

	assert.Equal(t, CodeValidation, err.Code)
	assert.NotNil(t, err.Details)
}
