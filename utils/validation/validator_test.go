package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name      string `validate:"required,min=3"`
	Ownership string `validate:"required,oneof=Government Private"`
	Year      int    `validate:"omitempty,gte=1800"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(sampleRequest{Name: "AIIMS", Ownership: "Government", Year: 1956})
	assert.NoError(t, err)

	err = v.ValidateStruct(sampleRequest{Name: "x", Ownership: "Communal"})
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	assert.Contains(t, formatted["name"], "at least 3")
	assert.Contains(t, formatted["ownership"], "one of")
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "AIIMS Delhi", SanitizeString("  AIIMS\x00 Delhi \x00"))
	assert.Equal(t, "", SanitizeString("   "))
}
