package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDraft struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Notes string `json:"notes"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(testDraft{Name: "Durand", Email: "durand@example.com"})
	assert.NoError(t, err)
}

func TestValidate_ReportsFailedFields(t *testing.T) {
	err := Validate(testDraft{Email: "not-an-email"})
	require.Error(t, err)

	var derr *DraftError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, []string{"name", "email"}, derr.Fields)
	assert.Contains(t, derr.Error(), "name")
}

func TestValidate_EmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"local@domain.tld", true},
		{"a@b.co", true},
		{"missing-at.example.com", false},
		{"spaces in@domain.tld", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := Validate(testDraft{Name: "x", Email: tt.email})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
