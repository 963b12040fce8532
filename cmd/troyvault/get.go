package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <section> <name>",
	Short: "Read a single credential from the vault",
	Long: `Get loads the vault and prints one value from a payload section.
Sections follow the payload convention: api_keys, user_agents, rate_limits.`,
	Example: `  troyvault get api_keys fred
  troyvault get rate_limits sec --vault .troyvault/config.json`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

var (
	getVaultPath string
	getPassword  string
)

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVar(&getVaultPath, "vault", "",
		"Vault path (default from config)")
	getCmd.Flags().StringVarP(&getPassword, "password", "p", "",
		"Vault password (env or prompt if not provided)")
}

func runGet(cmd *cobra.Command, args []string) error {
	section, name := args[0], args[1]
	path := resolveVaultPath(getVaultPath)

	payload, err := loadVault(path, getPassword)
	if err != nil {
		return err
	}

	recordAudit("get", path, map[string]any{"section": section, "name": name})

	var value any
	switch section {
	case "api_keys":
		value, err = payload.APIKey(name)
	case "user_agents":
		value, err = payload.UserAgent(name)
	case "rate_limits":
		value, err = payload.RateLimit(name)
	default:
		return fmt.Errorf("unknown section %q (expected api_keys, user_agents, or rate_limits)", section)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{"section": section, "name": name, "value": value})
	} else {
		printInfo("%v", value)
	}
	return nil
}
