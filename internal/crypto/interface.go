package crypto

// Provider defines the cryptographic operations the vault depends on.
type Provider interface {
	// DeriveKey stretches a password into a 32-byte key. A nil salt
	// generates a fresh random one; the salt actually used is returned.
	DeriveKey(password string, salt []byte) (key, usedSalt []byte, err error)

	// Encrypt seals plaintext under the key, returning a self-contained
	// token string.
	Encrypt(key, plaintext []byte) (string, error)

	// Decrypt opens a token produced by Encrypt.
	Decrypt(key []byte, token string) ([]byte, error)
}
