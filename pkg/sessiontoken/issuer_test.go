package sessiontoken_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbay/marketkit/pkg/sessiontoken"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := sessiontoken.New(nil, time.Hour)
		assert.ErrorIs(t, err, sessiontoken.ErrMissingSigningKey)
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Parallel()
		_, err := sessiontoken.New(testKey, 0)
		assert.ErrorIs(t, err, sessiontoken.ErrInvalidTTL)
	})
}

func TestIssuer_IssueAndParse(t *testing.T) {
	t.Parallel()

	issuer, err := sessiontoken.New(testKey, 24*time.Hour)
	require.NoError(t, err)

	accountID := uuid.New()

	tok, expiresAt, err := issuer.Issue(accountID)
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := issuer.Parse(tok)
	require.NoError(t, err)

	parsed, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, parsed)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt)
}

func TestIssuer_Issue_NilAccount(t *testing.T) {
	t.Parallel()

	issuer, err := sessiontoken.New(testKey, time.Hour)
	require.NoError(t, err)

	_, _, err = issuer.Issue(uuid.Nil)
	assert.ErrorIs(t, err, sessiontoken.ErrMissingSubject)
}

func TestIssuer_Parse_Failures(t *testing.T) {
	t.Parallel()

	issuer, err := sessiontoken.New(testKey, time.Hour)
	require.NoError(t, err)

	valid, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		parts := strings.Split(valid, ".")
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]
		_, err := issuer.Parse(tampered)
		assert.ErrorIs(t, err, sessiontoken.ErrInvalidSignature)
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Parallel()
		other, err := sessiontoken.New([]byte("another-signing-key-of-32-bytes!"), time.Hour)
		require.NoError(t, err)
		_, err = other.Parse(valid)
		assert.ErrorIs(t, err, sessiontoken.ErrInvalidSignature)
	})
}

func TestIssuer_Parse_Expiry(t *testing.T) {
	t.Parallel()

	current := time.Now()
	issuer, err := sessiontoken.New(testKey, time.Hour,
		sessiontoken.WithClock(func() time.Time { return current }),
	)
	require.NoError(t, err)

	tok, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	// Still valid one minute before expiry.
	current = current.Add(59 * time.Minute)
	_, err = issuer.Parse(tok)
	require.NoError(t, err)

	// Expiry is absolute, not sliding: the parse above must not extend it.
	current = current.Add(2 * time.Minute)
	_, err = issuer.Parse(tok)
	assert.ErrorIs(t, err, sessiontoken.ErrTokenExpired)
}
