package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseActorToken(t *testing.T) {
	token, err := GenerateActorToken("user-1", "LEGAL", "secret", time.Hour, "recon")
	require.NoError(t, err)

	claims, err := ParseAndValidateActorToken(token, "secret", "recon")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "LEGAL", claims.Role)
}

func TestParseActorTokenRejectsBadTokens(t *testing.T) {
	token, err := GenerateActorToken("user-1", "LEGAL", "secret", time.Hour, "recon")
	require.NoError(t, err)

	_, err = ParseAndValidateActorToken(token, "other-secret", "recon")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateActorToken(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := GenerateActorToken("user-1", "LEGAL", "secret", -time.Minute, "recon")
	require.NoError(t, err)
	_, err = ParseAndValidateActorToken(expired, "secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
