package main

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/audit"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/config"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/crypto"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/events"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/secrets"
	"github.com/TroyonixAI/troyonix-financial-ai/internal/vault"
)

var rootCmd = &cobra.Command{
	Use:   "troyvault",
	Short: "Encrypted configuration and credential vault",
	Long: `Troyvault protects configuration and credential payloads at rest with
password-derived encryption, and provides integrity signatures and
redaction for safe handling of secret-bearing data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if auditSink != nil {
			_ = auditSink.Close()
		}
	},
}

var (
	cfgPath    string
	jsonOutput bool
	verbose    bool

	cfg       *config.Config
	logger    *events.Logger
	store     *vault.Store
	auditSink audit.Sink
	resolver  = secrets.NewResolver()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"Config file path (default: search standard locations)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
}

func initApp() error {
	var err error
	cfg, err = config.NewLoader(cfgPath).Load()
	if err != nil {
		return err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	level := events.ParseLevel(cfg.Log.Level)
	if verbose {
		level = events.DebugLevel
	}

	logOutput := os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOutput = f
	}
	logger = events.NewLogger(level, cfg.Log.Format, logOutput)

	store = vault.NewStore(crypto.NewProvider(), logger)

	auditSink, err = openAuditSink()
	if err != nil {
		return err
	}

	return nil
}

func openAuditSink() (audit.Sink, error) {
	switch cfg.Audit.Backend {
	case "jsonl":
		return audit.NewJSONLSink(cfg.Audit.Path, logger)
	case "sqlite":
		return audit.NewSQLiteSink(cfg.Audit.Path, logger)
	default:
		return audit.NopSink{}, nil
	}
}

// recordAudit best-efforts an audit entry; failures are logged, never fatal.
func recordAudit(op, path string, detail map[string]any) {
	if err := auditSink.Record(audit.Entry{Op: op, Path: path, Detail: detail}); err != nil {
		logger.WithError(err).Warn("Audit record failed")
	}
}

// vaultPassword resolves the vault password: flag, then environment slot,
// then interactive prompt. Headless runs with no secret configured fail
// with ErrMissingSecret instead of blocking on a prompt.
func vaultPassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	pw, err := resolver.VaultPassword()
	if err == nil {
		return pw, nil
	}
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", err
	}
	return promptPassword("Vault password: ")
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// Output helpers.

func printSuccess(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(os.Stdout, format+"\n", args...)
}

func printError(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
}

func printInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		printError("marshal output: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, string(data))
}
