package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/TroyonixAI/troyonix-financial-ai/internal/events"
)

// JSONLSink appends one JSON object per line to a log file.
type JSONLSink struct {
	mu     sync.Mutex
	file   *os.File
	logger *events.Logger
}

// NewJSONLSink opens (or creates) the audit log file for appending.
func NewJSONLSink(path string, logger *events.Logger) (*JSONLSink, error) {
	if logger == nil {
		logger = events.Discard()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create audit directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	return &JSONLSink{
		file:   file,
		logger: logger.WithField("component", "audit_jsonl"),
	}, nil
}

// Record appends a sanitized entry as one JSON line.
func (s *JSONLSink) Record(entry Entry) error {
	data, err := json.Marshal(sanitized(entry))
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.Write(data); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
