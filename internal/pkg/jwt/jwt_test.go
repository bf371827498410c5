//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	svc := NewService("test-secret", 30*time.Minute)
	svc.now = func() time.Time { return now }
	sessionID := uuid.New()

	token, err := svc.GenerateSessionToken(sessionID)
	require.NoError(t, err)

	got, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)

	now = now.Add(31 * time.Minute)
	_, err = svc.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateSessionTokenRejects(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	svc := NewService("test-secret", time.Hour)
	svc.now = func() time.Time { return now }

	sign := func(t *testing.T, method gojwt.SigningMethod, key any, claims Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := gojwt.RegisteredClaims{
		Audience:  gojwt.ClaimStrings{sessionAudience},
		ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"other secret", sign(t, gojwt.SigningMethodHS256, []byte("other"), Claims{SessionID: uuid.New(), RegisteredClaims: valid})},
		{"wrong audience", sign(t, gojwt.SigningMethodHS256, []byte("test-secret"), Claims{
			SessionID:        uuid.New(),
			RegisteredClaims: gojwt.RegisteredClaims{Audience: gojwt.ClaimStrings{"admin"}, ExpiresAt: valid.ExpiresAt},
		})},
		{"no session id", sign(t, gojwt.SigningMethodHS256, []byte("test-secret"), Claims{RegisteredClaims: valid})},
		{"unsigned", sign(t, gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, Claims{SessionID: uuid.New(), RegisteredClaims: valid})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ValidateSessionToken(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
