package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope is the loose wire shape of an action:
// {"type": ..., "payload": ..., "field": ..., "value": ..., "message": ...}.
// Each container decodes it into its own typed actions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Field   string          `json:"field,omitempty"`
	Value   string          `json:"value,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ParseEnvelope reads one wire action. The type tag is required.
func ParseEnvelope(b []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidAction, err)
	}
	env.Type = strings.TrimSpace(env.Type)
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("%w: missing type", ErrInvalidAction)
	}
	return env, nil
}

// DecodePayload unmarshals the payload into v, failing if it is absent.
func (e Envelope) DecodePayload(v any) error {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return fmt.Errorf("%w: %s: missing payload", ErrInvalidAction, e.Type)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: payload: %v", ErrInvalidAction, e.Type, err)
	}
	return nil
}
