package main

import (
	"github.com/spf13/cobra"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/integrity"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Compute an integrity signature over a payload",
	Long: `Sign computes an HMAC-SHA256 signature over the canonical form of a
JSON payload, keyed with the integrity secret from ` + "`DATA_INTEGRITY_KEY`" + `.
The signature detects tampering independently of vault encryption.`,
	Example: `  troyvault sign --payload data.json
  cat data.json | troyvault sign --payload -`,
	RunE: runSign,
}

var signPayloadFile string

func init() {
	rootCmd.AddCommand(signCmd)

	signCmd.Flags().StringVar(&signPayloadFile, "payload", "",
		"Payload JSON file, or - for stdin (required)")
	_ = signCmd.MarkFlagRequired("payload")
}

func runSign(cmd *cobra.Command, args []string) error {
	payload, err := readPayload(signPayloadFile)
	if err != nil {
		return err
	}

	secret, err := resolver.IntegrityKey()
	if err != nil {
		return err
	}

	signer, err := integrity.NewSigner(secret)
	if err != nil {
		return err
	}

	signature, err := signer.Sign(payload)
	if err != nil {
		return err
	}

	recordAudit("sign", signPayloadFile, nil)

	if jsonOutput {
		printJSON(map[string]any{"signature": signature})
	} else {
		printInfo("%s", signature)
	}
	return nil
}
