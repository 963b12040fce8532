package vault

import (
	"fmt"
	"os"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

// SourceKind distinguishes how a vault path resolves on disk.
type SourceKind int

const (
	// SourceEncrypted means {path}.enc and {path}.salt both exist.
	SourceEncrypted SourceKind = iota
	// SourceLegacyPlaintext means only the unencrypted {path} file exists.
	SourceLegacyPlaintext
)

// Source is the result of resolving a vault path once, instead of
// scattering presence checks through call sites.
type Source struct {
	Kind SourceKind
	Path string
}

// Resolve decides which variant a vault path holds. Resolution order: an
// encrypted token file wins and requires its salt partner; otherwise a
// plaintext file at the bare path; otherwise the vault does not exist.
func (s *Store) Resolve(path string) (Source, error) {
	if fileExists(path + TokenSuffix) {
		if !fileExists(path + SaltSuffix) {
			return Source{}, models.ErrVaultCorrupt
		}
		return Source{Kind: SourceEncrypted, Path: path}, nil
	}

	if fileExists(path) {
		return Source{Kind: SourceLegacyPlaintext, Path: path}, nil
	}

	return Source{}, models.ErrVaultNotFound
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Encrypted reports whether a load of this source will need a password.
func (src Source) Encrypted() bool {
	return src.Kind == SourceEncrypted
}

func (src Source) String() string {
	switch src.Kind {
	case SourceEncrypted:
		return fmt.Sprintf("encrypted vault at %s", src.Path)
	case SourceLegacyPlaintext:
		return fmt.Sprintf("legacy plaintext vault at %s", src.Path)
	default:
		return "unknown vault source"
	}
}
