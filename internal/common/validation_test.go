package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupShape struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   signupShape
		wantErr bool
		wantMsg string
	}{
		{
			name:  "valid",
			input: signupShape{Username: "pan", Email: "pan@example.com", Password: "x"},
		},
		{
			name:    "missing username",
			input:   signupShape{Email: "pan@example.com", Password: "x"},
			wantErr: true,
			wantMsg: "username is required",
		},
		{
			name:    "bad email",
			input:   signupShape{Username: "pan", Email: "nope", Password: "x"},
			wantErr: true,
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "everything missing",
			input:   signupShape{},
			wantErr: true,
			wantMsg: "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestHTTPStatusFromError(t *testing.T) {
	assert.Equal(t, 200, HTTPStatusFromError(nil))
	assert.Equal(t, 404, HTTPStatusFromError(ErrNotFound))
	assert.Equal(t, 401, HTTPStatusFromError(ErrUnauthorized))
	assert.Equal(t, 403, HTTPStatusFromError(ErrForbidden))
	assert.Equal(t, 400, HTTPStatusFromError(ErrConflict))
	assert.Equal(t, 400, HTTPStatusFromError(ErrValidation))
	assert.Equal(t, 500, HTTPStatusFromError(errors.New("boom")))
}
