// Package secrets resolves the out-of-band secrets the vault depends on.
// Two distinct slots exist: the vault password and the integrity-signature
// key. Neither is ever read from disk by the vault itself.
package secrets

import (
	"os"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

// Environment variable names. Kept stable because deployed environments
// already export them.
const (
	VaultPasswordEnv = "CONFIG_PASSWORD"
	IntegrityKeyEnv  = "DATA_INTEGRITY_KEY"
)

// Resolver looks up secrets from the process environment. The lookup
// function is injectable for tests.
type Resolver struct {
	lookup func(string) (string, bool)
}

// NewResolver creates a resolver backed by os.LookupEnv.
func NewResolver() *Resolver {
	return &Resolver{lookup: os.LookupEnv}
}

// NewResolverFunc creates a resolver with a custom lookup, for tests.
func NewResolverFunc(lookup func(string) (string, bool)) *Resolver {
	return &Resolver{lookup: lookup}
}

// VaultPassword returns the vault password slot. Absence or an empty
// value is ErrMissingSecret.
func (r *Resolver) VaultPassword() (string, error) {
	return r.get(VaultPasswordEnv)
}

// IntegrityKey returns the integrity-signature secret slot.
func (r *Resolver) IntegrityKey() (string, error) {
	return r.get(IntegrityKeyEnv)
}

func (r *Resolver) get(name string) (string, error) {
	v, ok := r.lookup(name)
	if !ok || v == "" {
		return "", models.ErrMissingSecret
	}
	return v, nil
}
