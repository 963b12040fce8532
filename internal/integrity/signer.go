// Package integrity provides a keyed digest over payloads, independent of
// the vault's encryption. A payload can be signed without ever being
// vault-encrypted.
package integrity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

// SignatureLength is the hex length of a signature (SHA-256 digest).
const SignatureLength = sha256.Size * 2

// Signer computes and checks HMAC-SHA256 signatures over canonical
// payload bytes. The zero value is unusable; construct with NewSigner.
type Signer struct {
	secret []byte
}

// NewSigner creates a signer keyed with the integrity secret. The secret
// is distinct from any vault password.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, models.ErrMissingSecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign computes the lowercase hex HMAC-SHA256 of the payload's canonical
// serialization. Payloads built with keys inserted in different orders
// sign identically.
func (s *Signer) Sign(payload models.Payload) (string, error) {
	data, err := payload.Marshal()
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the payload signature and compares it to the supplied
// one in constant time.
func (s *Signer) Verify(payload models.Payload, signature string) (bool, error) {
	computed, err := s.Sign(payload)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(computed), []byte(signature)), nil
}
