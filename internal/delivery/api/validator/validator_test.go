package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Nickname string `json:"nickname,omitempty" validate:"max=5"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   signUpInput
		wantErr string
	}{
		{
			name:  "valid",
			input: signUpInput{Email: "ada@example.com", Password: "correct horse"},
		},
		{
			name:    "missing email reported by json name",
			input:   signUpInput{Password: "correct horse"},
			wantErr: "email is required",
		},
		{
			name:    "malformed email",
			input:   signUpInput{Email: "ada", Password: "correct horse"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			input:   signUpInput{Email: "ada@example.com", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name:    "every failing field is listed",
			input:   signUpInput{Email: "ada@example.com", Password: "short", Nickname: "toolong"},
			wantErr: "password must be at least 8 characters; nickname must be at most 5 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.EqualError(t, err, tt.wantErr)
			var fieldErrs FieldErrors
			assert.ErrorAs(t, err, &fieldErrs)
		})
	}
}

func TestValidator_RejectsNonStruct(t *testing.T) {
	assert.Error(t, New().Validate("not a struct"))
}
