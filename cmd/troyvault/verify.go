package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/integrity"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <signature>",
	Short: "Check a payload against an integrity signature",
	Example: `  troyvault verify 9f2c... --payload data.json
  cat data.json | troyvault verify 9f2c... --payload -`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

var verifyPayloadFile string

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyPayloadFile, "payload", "",
		"Payload JSON file, or - for stdin (required)")
	_ = verifyCmd.MarkFlagRequired("payload")
}

func runVerify(cmd *cobra.Command, args []string) error {
	signature := args[0]

	payload, err := readPayload(verifyPayloadFile)
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

	ok, err := signer.Verify(payload, signature)
	if err != nil {
		return err
	}

	recordAudit("verify", verifyPayloadFile, map[string]any{"valid": ok})

	if jsonOutput {
		printJSON(map[string]any{"valid": ok})
		if !ok {
			return errors.New("signature mismatch")
		}
		return nil
	}

	if !ok {
		printError("Signature mismatch: payload was altered or signed with a different key")
		return errors.New("signature mismatch")
	}

	printSuccess("Signature valid")
	return nil
}
