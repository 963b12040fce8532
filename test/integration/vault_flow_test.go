package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/audit"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/crypto"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/integrity"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/redact"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/vault"
)

// Exercises the full lifecycle: save an encrypted vault, read a credential
// back, sign the payload, audit the operations, and migrate a legacy
// plaintext file.
func TestVaultLifecycle(t *testing.T) {
	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "config.json")

	store := vault.NewStore(crypto.NewProviderWithIterations(1000), nil)

	payload := models.Payload{
		"api_keys": map[string]any{
			"fred": "fred-key-abcdef",
		},
		"rate_limits": map[string]any{
			"sec": 0.1,
		},
	}

	// Save and reload.
	require.NoError(t, store.Save(vaultPath, payload, "vault-pw"))

	loaded, err := store.Load(vaultPath, "vault-pw")
	require.NoError(t, err)

	apiKey, err := loaded.APIKey("fred")
	require.NoError(t, err)
	assert.Equal(t, "fred-key-abcdef", apiKey)

	// Wrong password is rejected without leaking plaintext.
	_, err = store.Load(vaultPath, "not-the-password")
	assert.ErrorIs(t, err, models.ErrAuthentication)

	// Sign what we loaded; the signature must match a payload rebuilt in a
	// different key order.
	signer, err := integrity.NewSigner("integrity-secret")
	require.NoError(t, err)

	signature, err := signer.Sign(loaded)
	require.NoError(t, err)

	rebuilt := models.Payload{
		"rate_limits": map[string]any{"sec": loaded["rate_limits"].(map[string]any)["sec"]},
		"api_keys":    map[string]any{"fred": apiKey},
	}
	ok, err := signer.Verify(rebuilt, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	// Audit the session; secrets must be masked in the log.
	auditPath := filepath.Join(dir, "audit.log")
	sink, err := audit.NewJSONLSink(auditPath, nil)
	require.NoError(t, err)
	require.NoError(t, sink.Record(audit.Entry{
		Op:     "save",
		Path:   vaultPath,
		Detail: map[string]any{"api_key": apiKey},
	}))
	require.NoError(t, sink.Close())

	logData, err := os.ReadFile(auditPath)
	require.NoError(t, err)
	assert.NotContains(t, string(logData), apiKey)
	assert.Contains(t, string(logData), redact.Mask(apiKey))
}

func TestLegacyPlaintextMigration(t *testing.T) {
	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "config.json")

	store := vault.NewStore(crypto.NewProviderWithIterations(1000), nil)

	require.NoError(t, os.WriteFile(vaultPath, []byte(`{"environment":"legacy"}`), 0o600))

	// Legacy file loads without a password.
	payload, err := store.Load(vaultPath, "")
	require.NoError(t, err)
	assert.Equal(t, "legacy", payload["environment"])

	// Saving encrypted removes the plaintext original.
	require.NoError(t, store.Save(vaultPath, payload, "new-pw"))

	_, err = os.Stat(vaultPath)
	assert.True(t, os.IsNotExist(err))

	source, err := store.Resolve(vaultPath)
	require.NoError(t, err)
	assert.Equal(t, vault.SourceEncrypted, source.Kind)

	reloaded, err := store.Load(vaultPath, "new-pw")
	require.NoError(t, err)
	assert.Equal(t, "legacy", reloaded["environment"])
}
