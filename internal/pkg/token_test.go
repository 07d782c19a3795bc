package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	SessionSecret = []byte("test-secret")

	token, err := SignSession("sid-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sid, err := ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

func TestSessionTokenTampered(t *testing.T) {
	SessionSecret = []byte("test-secret")

	token, err := SignSession("sid-123")
	require.NoError(t, err)

	_, err = ParseSession(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	SessionSecret = []byte("test-secret")
	token, err := SignSession("sid-123")
	require.NoError(t, err)

	SessionSecret = []byte("other-secret")
	_, err = ParseSession(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSessionTokenGarbage(t *testing.T) {
	SessionSecret = []byte("test-secret")
	_, err := ParseSession("not-a-token")
	assert.Error(t, err)
}
