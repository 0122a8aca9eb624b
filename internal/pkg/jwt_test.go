package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseAccess(t *testing.T) {
	InitJWT("test-access", "test-refresh")

	pair, err := GeneratePair(7, "bob")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	InitJWT("test-access", "test-refresh")

	pair, err := GeneratePair(7, "bob")
	require.NoError(t, err)

	// refresh 用另一把密钥签名，不能当 access 用
	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	InitJWT("test-access", "test-refresh")

	pair, err := GeneratePair(7, "bob")
	require.NoError(t, err)

	next, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := ParseAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
}
