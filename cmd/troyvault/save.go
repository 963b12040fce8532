package main

import (
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [vault-path]",
	Short: "Encrypt a payload and write it to a vault",
	Long: `Save encrypts a JSON payload under a password-derived key and writes
the salt and token files. Every save generates a fresh salt. A plaintext
file left at the vault path is removed.`,
	Example: `  troyvault save --payload config.json
  cat config.json | troyvault save .troyvault/config.json --payload -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

var (
	savePayloadFile string
	savePassword    string
)

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().StringVar(&savePayloadFile, "payload", "",
		"Payload JSON file, or - for stdin (required)")
	saveCmd.Flags().StringVarP(&savePassword, "password", "p", "",
		"Vault password (env or prompt if not provided)")

	_ = saveCmd.MarkFlagRequired("payload")
}

func runSave(cmd *cobra.Command, args []string) error {
	path := resolveVaultPath(argOrEmpty(args))

	payload, err := readPayload(savePayloadFile)
	if err != nil {
		return err
	}

	password, err := vaultPassword(savePassword)
	if err != nil {
		return err
	}

	if err := store.Save(path, payload, password); err != nil {
		recordAudit("save_failed", path, map[string]any{"error": err.Error()})
		return err
	}

	recordAudit("save", path, map[string]any{"keys": len(payload)})

	if jsonOutput {
		printJSON(map[string]any{"success": true, "path": path})
	} else {
		printSuccess("Vault saved to %s", path)
	}
	return nil
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
