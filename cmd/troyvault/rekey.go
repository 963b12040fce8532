package main

import (
	"github.com/spf13/cobra"
)

var rekeyCmd = &cobra.Command{
	Use:   "rekey [vault-path]",
	Short: "Re-encrypt a vault under a new password",
	Long: `Rekey decrypts the vault with the current password and saves it again
under a new password with a fresh salt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRekey,
}

var (
	rekeyOldPassword string
	rekeyNewPassword string
)

func init() {
	rootCmd.AddCommand(rekeyCmd)

	rekeyCmd.Flags().StringVar(&rekeyOldPassword, "old-password", "",
		"Current vault password (env or prompt if not provided)")
	rekeyCmd.Flags().StringVar(&rekeyNewPassword, "new-password", "",
		"New vault password (prompt if not provided)")
}

func runRekey(cmd *cobra.Command, args []string) error {
	path := resolveVaultPath(argOrEmpty(args))

	oldPassword, err := vaultPassword(rekeyOldPassword)
	if err != nil {
		return err
	}

	newPassword := rekeyNewPassword
	if newPassword == "" {
		newPassword, err = promptPassword("New vault password: ")
		if err != nil {
			return err
		}
	}

	if err := store.Rekey(path, oldPassword, newPassword); err != nil {
		recordAudit("rekey_failed", path, map[string]any{"error": err.Error()})
		return err
	}

	recordAudit("rekey", path, nil)

	if jsonOutput {
		printJSON(map[string]any{"success": true, "path": path})
	} else {
		printSuccess("Vault rekeyed at %s", path)
	}
	return nil
}
