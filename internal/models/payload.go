package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is the plaintext configuration/credential structure the vault
// protects: string keys mapped to JSON-compatible values. No schema is
// enforced here; validation belongs to the caller.
type Payload map[string]any

// Marshal serializes the payload to its canonical byte form. encoding/json
// sorts map keys, so logically identical payloads always serialize
// identically regardless of construction order.
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// ParsePayload decodes canonical payload bytes. Numbers decode as
// json.Number to survive a round trip without float drift.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return p, nil
}

// APIKey returns the stored API key for a service.
func (p Payload) APIKey(service string) (string, error) {
	return p.lookupString("api_keys", service)
}

// UserAgent returns the stored user agent string for a service.
func (p Payload) UserAgent(service string) (string, error) {
	return p.lookupString("user_agents", service)
}

// RateLimit returns the configured rate limit for a service.
func (p Payload) RateLimit(service string) (float64, error) {
	section, ok := p["rate_limits"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("rate_limits not found in payload")
	}
	v, ok := section[service]
	if !ok {
		return 0, fmt.Errorf("rate limit for %s not found", service)
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("rate limit for %s: %w", service, err)
		}
		return f, nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("rate limit for %s is not numeric", service)
	}
}

func (p Payload) lookupString(section, service string) (string, error) {
	m, ok := p[section].(map[string]any)
	if !ok {
		return "", fmt.Errorf("%s not found in payload", section)
	}
	v, ok := m[service].(string)
	if !ok {
		return "", fmt.Errorf("%s entry for %s not found", section, service)
	}
	return v, nil
}
