package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordConfig(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.BcryptCost, "default cost is 12")
}

func TestNewPasswordConfig_CostRange(t *testing.T) {
	tests := []struct {
		cost    string
		wantErr bool
	}{
		{cost: "10", wantErr: false},
		{cost: "14", wantErr: false},
		{cost: "9", wantErr: true},
		{cost: "15", wantErr: true},
		{cost: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("cost_"+tt.cost, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)

			_, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2", hash)

	// bcrypt salts, so repeated hashing differs
	hash2, err := cfg.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost, "hash carries the configured cost")
}
