package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent audit log entries",
	Long:  `Audit lists recent vault operations. Requires the sqlite audit backend.`,
	RunE:  runAudit,
}

var auditTail int

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().IntVar(&auditTail, "tail", 20,
		"Number of recent entries to show")
}

func runAudit(cmd *cobra.Command, args []string) error {
	sink, ok := auditSink.(*audit.SQLiteSink)
	if !ok {
		return fmt.Errorf("audit listing requires audit.backend=sqlite (current: %s)", cfg.Audit.Backend)
	}

	entries, err := sink.Entries(auditTail)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(entries)
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-12s %s", e.Time.Format("2006-01-02 15:04:05"), e.Op, e.Path)
		if len(e.Detail) > 0 {
			line += fmt.Sprintf("  %v", e.Detail)
		}
		printInfo("%s", line)
	}
	return nil
}
