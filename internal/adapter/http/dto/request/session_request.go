package request

import (
	"encoding/json"
	"strings"

	"estimate_editor/internal/usecase/editing"
)

// ActivateSessionRequest switches the active editing session to another estimate.
// Mode decides what happens to the unsynchronized work of the session being replaced.
type ActivateSessionRequest struct {
	EstimateID string `json:"estimate_id" binding:"required"`
	Mode       string `json:"mode"`
}

func (r ActivateSessionRequest) ResolveMode() editing.CloseMode {
	return resolveMode(r.Mode)
}

type CloseSessionRequest struct {
	Mode string `form:"mode" json:"mode"`
}

func (r CloseSessionRequest) ResolveMode() editing.CloseMode {
	return resolveMode(r.Mode)
}

type SetFieldRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type FocusRequest struct {
	LineID string `json:"line_id" binding:"required"`
	Field  string `json:"field" binding:"required"`
}

// RetryRequest retries the listed lines, or every failed line when empty.
type RetryRequest struct {
	LineIDs []string `json:"line_ids"`
}

func resolveMode(mode string) editing.CloseMode {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		return editing.CloseFlush
	}
	return editing.CloseMode(mode)
}
