package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `json:"username" validate:"required,max=10"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidationErrorsUsesJSONTags(t *testing.T) {
	v := validator.New()
	err := v.Struct(signupForm{Username: "", Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	out := ValidationErrors(err, signupForm{})
	assert.Equal(t, []string{"This field is required."}, out["username"])
	assert.Equal(t, []string{"Enter a valid email address."}, out["email"])
	assert.Equal(t, []string{"Ensure this field has at least 8 characters."}, out["password"])
}

func TestValidationErrorsFallsBackOnNonValidatorError(t *testing.T) {
	out := ValidationErrors(assert.AnError, signupForm{})
	assert.Equal(t, []string{"Invalid request body."}, out["non_field_errors"])
}
