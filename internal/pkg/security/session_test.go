package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CreatorHub/internal/api/config"
)

func signSession(t *testing.T, key string, claims *SessionClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestValidateSession(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Auth.SessionKey = "test-key"

	tokenString := signSession(t, "test-key", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ValidateSession(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.Subject)
}

func TestValidateSessionRejectsBadToken(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Auth.SessionKey = "test-key"

	// 错误密钥
	tokenString := signSession(t, "other-key", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	_, err := ValidateSession(tokenString)
	assert.Error(t, err)

	// 过期令牌
	tokenString = signSession(t, "test-key", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	_, err = ValidateSession(tokenString)
	assert.Error(t, err)

	// 缺少用户标识
	tokenString = signSession(t, "test-key", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	_, err = ValidateSession(tokenString)
	assert.Error(t, err)
}

func TestValidateSessionIssuer(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Auth.SessionKey = "test-key"
	config.Cfg.Auth.Issuer = "idp.example.com"

	tokenString := signSession(t, "test-key", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_123",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	_, err := ValidateSession(tokenString)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	config.Cfg = &config.Config{}
	config.Cfg.Auth.SessionKey = "test-key"

	tokenString := signSession(t, "test-key", &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user_123"},
	})

	sig, err := ExtractSignature(tokenString)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	_, err = ExtractSignature("not.a-token")
	assert.Error(t, err)
}
