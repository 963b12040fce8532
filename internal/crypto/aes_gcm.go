package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

// Token layout (before encoding): version(1) || nonce(12) || ciphertext+tag.
// The whole blob is base64url-encoded so a token plus the key is all a
// decrypt call ever needs.

// Encrypt seals plaintext under key with AES-256-GCM and a fresh nonce.
func (p *KDFProvider) Encrypt(key, plaintext []byte) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, 1+NonceSize+len(sealed))
	blob = append(blob, TokenVersion)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decrypt opens a token produced by Encrypt. Structural failures return
// ErrMalformedToken; tag failures return ErrAuthentication and never any
// plaintext bytes.
func (p *KDFProvider) Decrypt(key []byte, token string) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	blob, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedToken, err)
	}

	// Minimum: version byte, nonce, tag over empty plaintext.
	if len(blob) < 1+NonceSize+TagSize {
		return nil, fmt.Errorf("%w: token too short (%d bytes)", models.ErrMalformedToken, len(blob))
	}
	if blob[0] != TokenVersion {
		return nil, fmt.Errorf("%w: unsupported token version %d", models.ErrMalformedToken, blob[0])
	}

	nonce := blob[1 : 1+NonceSize]
	sealed := blob[1+NonceSize:]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, models.ErrAuthentication
	}

	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: expected %d, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return aead, nil
}
