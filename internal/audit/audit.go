// Package audit records vault operations to an append-only log. Entry
// details pass through the redactor before they are written, so the log
// itself never needs vault protection.
package audit

import (
	"time"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/redact"
)

// Entry is one audit record.
type Entry struct {
	Time   time.Time      `json:"time"`
	Op     string         `json:"op"`
	Path   string         `json:"path,omitempty"`
	Detail map[string]any `json:"detail,omitempty"`
}

// Sink persists audit entries.
type Sink interface {
	Record(entry Entry) error
	Close() error
}

// sanitized stamps the entry and masks secret-bearing detail values.
func sanitized(entry Entry) Entry {
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}
	entry.Detail = redact.Sanitize(entry.Detail)
	return entry
}

// NopSink discards entries. Used when auditing is disabled.
type NopSink struct{}

func (NopSink) Record(Entry) error { return nil }
func (NopSink) Close() error       { return nil }
