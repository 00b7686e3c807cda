package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndParse(t *testing.T) {
	m := NewJWTManager("super-secret", time.Hour)

	token, exp, err := m.Generate("user-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestJWTManager_Parse_Expired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, _, err := m.Generate("u1", "bob")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("right-secret", time.Hour)
	verifier := NewJWTManager("wrong-secret", time.Hour)

	token, _, err := issuer.Generate("u2", "carol")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestJWTManager_Parse_Malformed(t *testing.T) {
	m := NewJWTManager("k", time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		_, err := m.Parse(tok)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestJWTManager_Parse_TamperedSignature(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, _, err := m.Generate("u3", "dave")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Parse(tampered)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}
