package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/editoria/editoria-server/internal/errors"
)

type createTagForm struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(createTagForm{Name: "Urgente", Color: "#ff0000"}))
	assert.NoError(t, v.Validate(createTagForm{Name: "Urgente"}))
}

func TestValidate_MissingRequired(t *testing.T) {
	v := New()
	err := v.Validate(createTagForm{})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	// Field errors use the JSON tag name.
	var derr *domainerrors.Error
	require.True(t, domainerrors.As(err, &derr))
	details, ok := derr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
}

func TestValidate_BadColor(t *testing.T) {
	v := New()
	err := v.Validate(createTagForm{Name: "x", Color: "red"})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}
