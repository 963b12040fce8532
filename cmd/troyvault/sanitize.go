package main

import (
	"github.com/spf13/cobra"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/redact"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Mask sensitive values in a JSON payload",
	Long: `Sanitize prints a copy of the payload with secret-bearing fields
masked, suitable for pasting into logs or bug reports. This is a hygiene
filter, not a security boundary.`,
	Example: `  troyvault sanitize --payload config.json
  cat config.json | troyvault sanitize --payload -`,
	RunE: runSanitize,
}

var sanitizePayloadFile string

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().StringVar(&sanitizePayloadFile, "payload", "",
		"Payload JSON file, or - for stdin (required)")
	_ = sanitizeCmd.MarkFlagRequired("payload")
}

func runSanitize(cmd *cobra.Command, args []string) error {
	payload, err := readPayload(sanitizePayloadFile)
	if err != nil {
		return err
	}

	printJSON(redact.Sanitize(payload))
	return nil
}
