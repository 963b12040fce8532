// Package vault persists password-encrypted payloads as a salt/token file
// pair, with a read-only fallback to legacy plaintext files.
package vault

import (
	"fmt"
	"os"
	"sync"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/crypto"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/events"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

// On-disk layout for a logical vault at {path}:
//
//	{path}.salt  raw 16 bytes, no header
//	{path}.enc   token produced by the cipher
//	{path}       legacy plaintext JSON, read only when both above are absent
const (
	SaltSuffix  = ".salt"
	TokenSuffix = ".enc"
)

// Store saves and loads encrypted vaults. Save and Load against the same
// path are serialized within the process; cross-process access is plain
// filesystem I/O with no locking.
type Store struct {
	provider crypto.Provider
	logger   *events.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a vault store. A nil logger discards output.
func NewStore(provider crypto.Provider, logger *events.Logger) *Store {
	if logger == nil {
		logger = events.Discard()
	}
	return &Store{
		provider: provider,
		logger:   logger.WithField("component", "vault_store"),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Save encrypts the payload under a key derived from password and writes
// the vault files. Every save generates a fresh salt; an existing salt is
// never reused. The salt is written before the token so a failed save can
// never leave a token paired with a salt from a different password. Any
// legacy plaintext file at path is removed afterwards.
func (s *Store) Save(path string, payload models.Payload, password string) error {
	unlock := s.lockPath(path)
	defer unlock()

	key, salt, err := s.provider.DeriveKey(password, nil)
	if err != nil {
		return &models.VaultError{Op: "save", Path: path, Err: err}
	}

	plaintext, err := payload.Marshal()
	if err != nil {
		return &models.VaultError{Op: "save", Path: path, Err: err}
	}

	token, err := s.provider.Encrypt(key, plaintext)
	if err != nil {
		return &models.VaultError{Op: "save", Path: path, Err: err}
	}

	if err := writeFileAtomic(path+SaltSuffix, salt); err != nil {
		return &models.VaultError{Op: "save", Path: path, Err: fmt.Errorf("write salt: %w", err)}
	}
	if err := writeFileAtomic(path+TokenSuffix, []byte(token)); err != nil {
		return &models.VaultError{Op: "save", Path: path, Err: fmt.Errorf("write token: %w", err)}
	}

	// Remove a plaintext leftover so secrets do not linger unencrypted.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &models.VaultError{Op: "save", Path: path, Err: fmt.Errorf("remove plaintext: %w", err)}
	}

	s.logger.WithField("path", path).Info("Vault saved")
	return nil
}

// Load reads a vault back into a payload. An encrypted vault requires the
// password-derived key; a legacy plaintext file is parsed directly.
func (s *Store) Load(path string, password string) (models.Payload, error) {
	unlock := s.lockPath(path)
	defer unlock()

	source, err := s.Resolve(path)
	if err != nil {
		return nil, &models.VaultError{Op: "load", Path: path, Err: err}
	}

	var data []byte
	switch source.Kind {
	case SourceEncrypted:
		data, err = s.loadEncrypted(path, password)
	case SourceLegacyPlaintext:
		s.logger.WithField("path", path).Warn("Loading legacy plaintext vault")
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &models.VaultError{Op: "load", Path: path, Err: err}
	}

	payload, err := models.ParsePayload(data)
	if err != nil {
		return nil, &models.VaultError{Op: "load", Path: path, Err: err}
	}
	return payload, nil
}

// Rekey re-encrypts the vault under a new password. The fresh salt comes
// for free because Save always rotates it.
func (s *Store) Rekey(path, oldPassword, newPassword string) error {
	payload, err := s.Load(path, oldPassword)
	if err != nil {
		return err
	}
	if err := s.Save(path, payload, newPassword); err != nil {
		return &models.VaultError{Op: "rekey", Path: path, Err: err}
	}
	return nil
}

func (s *Store) loadEncrypted(path, password string) ([]byte, error) {
	salt, err := os.ReadFile(path + SaltSuffix)
	if err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	token, err := os.ReadFile(path + TokenSuffix)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	key, _, err := s.provider.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}

	return s.provider.Decrypt(key, string(token))
}

// lockPath serializes operations per vault path within the process.
func (s *Store) lockPath(path string) func() {
	s.mu.Lock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
