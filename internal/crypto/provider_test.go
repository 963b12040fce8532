package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/crypto"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

func TestProvider_DeriveKey(t *testing.T) {
	provider := crypto.NewProvider()

	tests := []struct {
		name     string
		password string
		salt     []byte
		wantErr  error
	}{
		{
			name:     "valid password with salt",
			password: "correct horse battery staple",
			salt:     make([]byte, crypto.SaltSize),
		},
		{
			name:     "valid password without salt",
			password: "hunter2-but-longer",
			salt:     nil,
		},
		{
			name:     "unicode password",
			password: "пароль123",
			salt:     make([]byte, crypto.SaltSize),
		},
		{
			name:     "empty password",
			password: "",
			salt:     make([]byte, crypto.SaltSize),
			wantErr:  models.ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, salt, err := provider.DeriveKey(tt.password, tt.salt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, key, crypto.KeySize)
			assert.Len(t, salt, crypto.SaltSize)

			// Deterministic given the same salt.
			key2, _, err := provider.DeriveKey(tt.password, salt)
			require.NoError(t, err)
			assert.Equal(t, key, key2)
		})
	}
}

func TestProvider_DeriveKey_SaltHandling(t *testing.T) {
	provider := crypto.NewProvider()

	t.Run("nil salt generates a fresh one each call", func(t *testing.T) {
		_, salt1, err := provider.DeriveKey("pw-one", nil)
		require.NoError(t, err)
		_, salt2, err := provider.DeriveKey("pw-one", nil)
		require.NoError(t, err)

		assert.NotEqual(t, salt1, salt2)
	})

	t.Run("wrong salt length rejected", func(t *testing.T) {
		_, _, err := provider.DeriveKey("pw-one", []byte("short"))
		assert.Error(t, err)
	})

	t.Run("different salts produce different keys", func(t *testing.T) {
		salt1 := make([]byte, crypto.SaltSize)
		salt2 := make([]byte, crypto.SaltSize)
		salt2[0] = 1

		key1, _, err := provider.DeriveKey("pw-one", salt1)
		require.NoError(t, err)
		key2, _, err := provider.DeriveKey("pw-one", salt2)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})

	t.Run("different passwords produce different keys", func(t *testing.T) {
		salt := make([]byte, crypto.SaltSize)

		key1, _, err := provider.DeriveKey("pw-one", salt)
		require.NoError(t, err)
		key2, _, err := provider.DeriveKey("pw-two", salt)
		require.NoError(t, err)

		assert.NotEqual(t, key1, key2)
	})
}

func TestProvider_DeriveKey_Normalization(t *testing.T) {
	provider := crypto.NewProvider()
	salt := make([]byte, crypto.SaltSize)

	// U+212B (angstrom sign) and U+00C5 (A with ring) are NFKC-equivalent.
	key1, _, err := provider.DeriveKey("caf\u212b", salt)
	require.NoError(t, err)
	key2, _, err := provider.DeriveKey("caf\u00c5", salt)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
}

func TestNewDataKey(t *testing.T) {
	key1, err := crypto.NewDataKey()
	require.NoError(t, err)
	assert.Len(t, key1, crypto.KeySize)

	key2, err := crypto.NewDataKey()
	require.NoError(t, err)
	assert.NotEqual(t, key1, key2)
}
