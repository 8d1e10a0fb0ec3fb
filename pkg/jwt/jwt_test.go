package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate("s3cret", "reconcile-cli", ScopeWrite, "inventario-conciliacion", 5)
	require.NoError(t, err)

	claims, err := Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "reconcile-cli", claims.Subject)
	assert.Equal(t, "inventario-conciliacion", claims.Issuer)
	assert.True(t, claims.CanWrite())
}

func TestParse_Rejects(t *testing.T) {
	tok, err := Generate("s3cret", "svc", ScopeRead, "iss", 5)
	require.NoError(t, err)

	_, err = Parse("otro", tok)
	assert.Error(t, err)

	_, err = Parse("", tok)
	assert.Error(t, err)

	expired, err := Generate("s3cret", "svc", ScopeRead, "iss", -1)
	require.NoError(t, err)
	_, err = Parse("s3cret", expired)
	assert.Error(t, err)

	_, err = Generate("", "svc", ScopeRead, "iss", 5)
	assert.Error(t, err)
}

func TestSource_ReusesUntilNearExpiry(t *testing.T) {
	now := time.Now()
	src := NewSource("s3cret", "api", ScopeRead, "iss", 10)
	src.now = func() time.Time { return now }

	first, err := src.Token()
	require.NoError(t, err)
	second, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	now = now.Add(9*time.Minute + 30*time.Second)
	third, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Minute), src.expires)
	claims, err := Parse("s3cret", third)
	require.NoError(t, err)
	assert.False(t, claims.CanWrite())
}

func TestSource_EmptySecret(t *testing.T) {
	tok, err := NewSource("", "api", ScopeRead, "iss", 10).Token()
	require.NoError(t, err)
	assert.Empty(t, tok)
}
