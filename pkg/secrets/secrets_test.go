package secrets_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbay/marketkit/pkg/secrets"
)

func newTestCodec(t *testing.T) *secrets.Codec {
	t.Helper()
	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	codec, err := secrets.New(key)
	require.NoError(t, err)
	return codec
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	testCases := []struct {
		name      string
		plaintext string
	}{
		{"mnemonic phrase", "amber falcon orbit velvet crater lunar nomad pixel"},
		{"totp secret", "JBSWY3DPEHPK3PXP"},
		{"empty string", ""},
		{"unicode", "пароль-фраза 秘密"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sealed, err := codec.EncryptString(secrets.PurposeMnemonic, tc.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tc.plaintext, sealed)

			opened, err := codec.DecryptString(secrets.PurposeMnemonic, sealed)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, opened)
		})
	}
}

func TestCodec_PurposeSeparation(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	sealed, err := codec.EncryptString(secrets.PurposeMnemonic, "secret phrase")
	require.NoError(t, err)

	// Ciphertext sealed for one purpose must not open under another.
	_, err = codec.DecryptString(secrets.PurposeTOTP, sealed)
	require.Error(t, err)
	assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
}

func TestCodec_NonDeterministic(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	first, err := codec.EncryptString(secrets.PurposeTOTP, "same input")
	require.NoError(t, err)
	second, err := codec.EncryptString(secrets.PurposeTOTP, "same input")
	require.NoError(t, err)

	// Fresh nonce per call.
	assert.NotEqual(t, first, second)
}

func TestCodec_DecryptErrors(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	t.Run("not base64", func(t *testing.T) {
		t.Parallel()
		_, err := codec.DecryptString(secrets.PurposeMnemonic, "%%%not-base64%%%")
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		short := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
		_, err := codec.DecryptString(secrets.PurposeMnemonic, short)
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()
		sealed, err := codec.EncryptString(secrets.PurposeMnemonic, "payload")
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(sealed)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xff
		tampered := base64.StdEncoding.EncodeToString(raw)

		_, err = codec.DecryptString(secrets.PurposeMnemonic, tampered)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("missing purpose", func(t *testing.T) {
		t.Parallel()
		_, err := codec.EncryptString("", "payload")
		assert.ErrorIs(t, err, secrets.ErrMissingPurpose)
	})
}

func TestNew_KeyValidation(t *testing.T) {
	t.Parallel()

	_, err := secrets.New([]byte("too short"))
	assert.ErrorIs(t, err, secrets.ErrInvalidKeyLength)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid key", func(t *testing.T) {
		t.Parallel()
		encoded, err := secrets.GenerateEncodedKey()
		require.NoError(t, err)

		codec, err := secrets.NewFromConfig(secrets.Config{EncryptionKey: encoded})
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.NewFromConfig(secrets.Config{})
		assert.ErrorIs(t, err, secrets.ErrKeyNotSet)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		encoded := base64.StdEncoding.EncodeToString([]byte("short"))
		_, err := secrets.NewFromConfig(secrets.Config{EncryptionKey: encoded})
		assert.ErrorIs(t, err, secrets.ErrInvalidKeyLength)
	})
}
