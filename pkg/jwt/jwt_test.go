package jwt

import (
	"testing"
	"time"

	"healthcare-management-system/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret", Expiry: time.Hour})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, "Doctor")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Doctor", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, time.Hour, svc.GetExpiry())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "one", Expiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "two", Expiry: time.Hour})

	token, _, err := issuer.GenerateToken(uuid.New(), "Patient")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret", Expiry: time.Minute})
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateToken(uuid.New(), "Patient")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestValidateToken_RejectsUnsigned(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret", Expiry: time.Hour})
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: uuid.New(), Role: "Admin"})
	unsigned, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}
