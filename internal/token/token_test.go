package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims(issuer string, expiresIn time.Duration) Claims {
	now := time.Now()

	return Claims{
		AccountID: "account-1",
		SessionID: "session-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
		},
	}
}

func TestGenerateAndValidate(t *testing.T) {
	auth := NewAuthenticator("account-api", "account-api")

	tokenStr, err := auth.Generate(testClaims("account-api", time.Minute), "secret")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims := &Claims{}
	_, err = auth.Validate(tokenStr, "secret", claims)
	require.NoError(t, err)

	assert.Equal(t, "account-1", claims.AccountID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestValidateWrongSecret(t *testing.T) {
	auth := NewAuthenticator("account-api", "account-api")

	tokenStr, err := auth.Generate(testClaims("account-api", time.Minute), "secret")
	require.NoError(t, err)

	_, err = auth.Validate(tokenStr, "other-secret", &Claims{})
	assert.Error(t, err)
}

func TestValidateWrongIssuer(t *testing.T) {
	auth := NewAuthenticator("account-api", "account-api")

	tokenStr, err := auth.Generate(testClaims("someone-else", time.Minute), "secret")
	require.NoError(t, err)

	_, err = auth.Validate(tokenStr, "secret", &Claims{})
	assert.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	auth := NewAuthenticator("account-api", "account-api")

	tokenStr, err := auth.Generate(testClaims("account-api", -time.Minute), "secret")
	require.NoError(t, err)

	_, err = auth.Validate(tokenStr, "secret", &Claims{})
	assert.Error(t, err)
}
