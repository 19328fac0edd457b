package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, expires, err := m.Generate("MEM123456", "Jane Doe")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "MEM123456", claims.MemberID)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "MEM123456", claims.Subject)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Generate("MEM123456", "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		mgr   *JWTManager
		token string
	}{
		{"wrong secret", NewJWTManager("other", time.Hour), token},
		{"garbage", m, "not.a.token"},
		{"empty", m, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mgr.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	t.Run("expired", func(t *testing.T) {
		short := NewJWTManager("test-secret", -time.Minute)
		expired, _, err := short.Generate("MEM123456", "")
		require.NoError(t, err)
		_, err = m.Validate(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
