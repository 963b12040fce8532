package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/redact"
)

var showCmd = &cobra.Command{
	Use:   "show [vault-path]",
	Short: "Decrypt a vault and print its payload",
	Long: `Show loads a vault and prints the payload. Sensitive values are
masked unless --reveal is given.`,
	Example: `  troyvault show
  troyvault show .troyvault/config.json --reveal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var (
	showPassword string
	showReveal   bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showPassword, "password", "p", "",
		"Vault password (env or prompt if not provided)")
	showCmd.Flags().BoolVar(&showReveal, "reveal", false,
		"Print secret values unmasked")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := resolveVaultPath(argOrEmpty(args))

	payload, err := loadVault(path, showPassword)
	if err != nil {
		return err
	}

	recordAudit("show", path, map[string]any{"revealed": showReveal})

	out := map[string]any(payload)
	if !showReveal {
		out = redact.Sanitize(out)
	}
	printJSON(out)
	return nil
}

// loadVault resolves the vault variant first so a plaintext fallback does
// not trigger a password prompt.
func loadVault(path, flagPassword string) (models.Payload, error) {
	source, err := store.Resolve(path)
	if err != nil {
		return nil, &models.VaultError{Op: "load", Path: path, Err: err}
	}

	password := ""
	if source.Encrypted() {
		password, err = vaultPassword(flagPassword)
		if err != nil {
			return nil, err
		}
	}

	payload, err := store.Load(path, password)
	if err != nil {
		if errors.Is(err, models.ErrAuthentication) {
			printError("Wrong password or tampered vault")
		}
		return nil, err
	}
	return payload, nil
}
