package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/models"
)

// readPayload loads a JSON payload from a file, or from stdin when the
// path is "-".
func readPayload(path string) (models.Payload, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	payload, err := models.ParsePayload(data)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// resolveVaultPath falls back to the configured default vault path.
func resolveVaultPath(arg string) string {
	if arg != "" {
		return arg
	}
	return cfg.Storage.VaultPath
}
