package totp_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbay/marketkit/pkg/totp"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	first, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	second, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 32, len(first), "20 raw bytes encode to 32 base32 chars")
	assert.Equal(t, strings.ToUpper(first), first)
}

func TestVerifyAt(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	now := time.Unix(1_700_000_000, 0)

	code, err := totp.GenerateCodeAt(secret, now)
	require.NoError(t, err)
	require.Len(t, code, 6)

	t.Run("current period", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.VerifyAt(secret, code, totp.DefaultWindow, now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("previous period within window", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.VerifyAt(secret, code, totp.DefaultWindow, now.Add(totp.Period*time.Second))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("outside window", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.VerifyAt(secret, code, totp.DefaultWindow, now.Add(3*totp.Period*time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("zero window is exact", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.VerifyAt(secret, code, 0, now.Add(totp.Period*time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong code", func(t *testing.T) {
		t.Parallel()
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		ok, err := totp.VerifyAt(secret, wrong, totp.DefaultWindow, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestVerify_InputValidation(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	t.Run("malformed code", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{"", "12345", "1234567", "abcdef", "12 456"} {
			_, err := totp.Verify(secret, code, totp.DefaultWindow)
			assert.ErrorIs(t, err, totp.ErrInvalidCodeFormat, "code %q", code)
		}
	})

	t.Run("malformed secret", func(t *testing.T) {
		t.Parallel()
		_, err := totp.Verify("not&base32!", "123456", totp.DefaultWindow)
		assert.ErrorIs(t, err, totp.ErrInvalidSecret)
	})

	t.Run("code with surrounding spaces accepted", func(t *testing.T) {
		t.Parallel()
		now := time.Unix(1_700_000_123, 0)
		code, err := totp.GenerateCodeAt(secret, now)
		require.NoError(t, err)
		ok, err := totp.VerifyAt(secret, "  "+code+"  ", totp.DefaultWindow, now)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestGenerateEnrollment(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		enr, err := totp.GenerateEnrollment("shadowbay", "alice1")
		require.NoError(t, err)

		assert.NotEmpty(t, enr.Secret)
		assert.Contains(t, enr.URI, "otpauth://totp/shadowbay:alice1?")
		assert.Contains(t, enr.URI, "secret="+enr.Secret)
		assert.Contains(t, enr.URI, "issuer=shadowbay")
		assert.Contains(t, enr.URI, "digits=6")
		assert.Contains(t, enr.URI, "period=30")
	})

	t.Run("missing issuer", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateEnrollment("", "alice1")
		assert.ErrorIs(t, err, totp.ErrMissingIssuer)
	})

	t.Run("missing account name", func(t *testing.T) {
		t.Parallel()
		_, err := totp.GenerateEnrollment("shadowbay", "")
		assert.ErrorIs(t, err, totp.ErrMissingAccountName)
	})

	t.Run("fresh secret per enrollment", func(t *testing.T) {
		t.Parallel()
		a, err := totp.GenerateEnrollment("shadowbay", "alice1")
		require.NoError(t, err)
		b, err := totp.GenerateEnrollment("shadowbay", "alice1")
		require.NoError(t, err)
		assert.NotEqual(t, a.Secret, b.Secret)
	})
}
