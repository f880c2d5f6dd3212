// Package models defines the wire types exchanged with the WiFiQ
// ticketing API: the standard response envelope, domain records, and
// request payloads.
package models

import (
	"encoding/json"
	"fmt"
)

// Envelope is the backend's standard response wrapper. Every endpoint
// returns its payload under "data", list endpoints add "meta", and
// mutating endpoints add a human-readable "message".
type Envelope struct {
	// Data is the endpoint payload, left raw so each caller can decode
	// into its own type.
	Data json.RawMessage `json:"data,omitempty"`
	// Meta carries pagination metadata on list responses.
	Meta *Pagination `json:"meta,omitempty"`
	// Message is the backend's human-readable result message.
	Message string `json:"message,omitempty"`
}

// DecodeData unmarshals the envelope's data payload into v.
// Returns an error if the envelope carries no data.
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("response envelope has no data payload")
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode envelope data: %w", err)
	}
	return nil
}

// Pagination is the backend's list metadata block.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	From        *int `json:"from"`
	To          *int `json:"to"`
}
