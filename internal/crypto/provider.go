package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

const (
	// TokenVersion identifies the token format.
	TokenVersion = 1

	// Key sizes
	KeySize   = 32 // AES-256
	NonceSize = 12 // GCM standard
	TagSize   = 16 // GCM tag

	// PBKDF2 parameters
	DefaultIterations = 100000
	SaltSize          = 16
)

// KDFProvider derives keys and seals payloads.
type KDFProvider struct {
	iterations int
}

// NewProvider creates a provider with the default iteration count.
func NewProvider() *KDFProvider {
	return &KDFProvider{iterations: DefaultIterations}
}

// NewProviderWithIterations creates a provider with a custom iteration
// count. Intended for tests; production callers use NewProvider.
func NewProviderWithIterations(iterations int) *KDFProvider {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return &KDFProvider{iterations: iterations}
}

// DeriveKey derives a 32-byte key from a password and salt using
// PBKDF2-HMAC-SHA256. When salt is nil a fresh 16-byte salt is generated.
// The password is NFKC-normalized first so visually identical inputs
// derive the same key across platforms.
func (p *KDFProvider) DeriveKey(password string, salt []byte) ([]byte, []byte, error) {
	if password == "" {
		return nil, nil, models.ErrWeakPassword
	}

	if salt == nil {
		salt = make([]byte, SaltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("generate salt: %w", err)
		}
	} else if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	normalized := norm.NFKC.String(password)
	key := pbkdf2.Key([]byte(normalized), salt, p.iterations, KeySize, sha256.New)

	return key, salt, nil
}

// NewDataKey returns a fresh random 32-byte key for callers that encrypt
// without a password (machine-generated keys).
func NewDataKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate data key: %w", err)
	}
	return key, nil
}
