package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the vault core. Callers are expected to branch on
// these with errors.Is rather than matching message text.
var (
	// ErrWeakPassword rejects zero-length secrets at key derivation.
	ErrWeakPassword = errors.New("password must not be empty")

	// ErrMissingSecret means a required out-of-band secret (vault password
	// or integrity key) was not configured in the environment.
	ErrMissingSecret = errors.New("required secret not configured")

	// ErrVaultNotFound means neither an encrypted vault nor a legacy
	// plaintext file exists at the requested path.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrVaultCorrupt means one of the paired vault files exists without
	// its partner.
	ErrVaultCorrupt = errors.New("vault corrupt: salt file missing for encrypted vault")

	// ErrMalformedToken means the token could not be parsed into its
	// structural parts at all.
	ErrMalformedToken = errors.New("malformed token")

	// ErrAuthentication means the token parsed but failed authentication.
	// Wrong password and tampering are indistinguishable by design.
	ErrAuthentication = errors.New("authentication failed")

	// ErrSerialization means a payload could not round-trip through the
	// canonical JSON encoding.
	ErrSerialization = errors.New("payload serialization failed")
)

// VaultError wraps a failure with the operation and vault path it occurred on.
type VaultError struct {
	Op   string // "save", "load", "rekey"
	Path string
	Err  error
}

func (e *VaultError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("vault %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("vault %s: %v", e.Op, e.Err)
}

func (e *VaultError) Unwrap() error {
	return e.Err
}

// IntegrityError reports a signature mismatch with both digests. The
// verifier itself returns a bool; this type is for callers that want to
// surface the difference.
type IntegrityError struct {
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity check failed: expected %s, got %s", e.Expected, e.Actual)
}
