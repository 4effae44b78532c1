package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{name: "valid", req: RegisterRequest{Username: "jordan", Email: "jordan@example.com"}},
		{name: "valid with password", req: RegisterRequest{Username: "jordan", Email: "jordan@example.com", Password: "hunter2"}},
		{name: "missing username", req: RegisterRequest{Email: "jordan@example.com"}, wantErr: true},
		{name: "missing email", req: RegisterRequest{Username: "jordan"}, wantErr: true},
		{name: "malformed email", req: RegisterRequest{Username: "jordan", Email: "not-an-email"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "jordan@example.com"}).Validate())
	assert.Error(t, (&LoginRequest{}).Validate())
	assert.Error(t, (&LoginRequest{Email: "nope"}).Validate())
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	user := User{Username: "jordan", Email: "jordan@example.com", Credits: 3, PasswordHash: "$2a$10$secret"}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "jordan@example.com")
}
