package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateJWT(1, "ADMIN", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "scriptstore", claims.Issuer)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "Garbage token",
			token: func() string { return "not.a.token" },
		},
		{
			name: "Expired token",
			token: func() string {
				token, _ := service.GenerateJWT(1, "USER", time.Now().Add(-time.Hour))
				return token
			},
		},
		{
			name: "Wrong secret",
			token: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(1, "USER", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Missing user ID",
			token: func() string {
				token, _ := service.GenerateJWT(0, "USER", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Unsigned token rejected",
			token: func() string {
				claims := Claims{
					UserID: 1,
					Role:   "ADMIN",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    issuer,
					},
				}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token())
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestHashService(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, service.ComparePassword(hash, "s3cret"))
	assert.False(t, service.ComparePassword(hash, "wrong"))

	_, err = service.HashPassword("")
	assert.Error(t, err)
}
