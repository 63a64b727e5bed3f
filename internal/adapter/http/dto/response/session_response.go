package response

import (
	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/editing"
)

type LineViewResponse struct {
	Line          LineResponse `json:"line"`
	Status        string       `json:"status"`
	DirtyFields   []string     `json:"dirty_fields"`
	Error         string       `json:"error,omitempty"`
	PendingCreate bool         `json:"pending_create"`
}

type SessionResponse struct {
	SessionID         string                    `json:"session_id"`
	EstimateID        string                    `json:"estimate_id"`
	Status            string                    `json:"status"`
	Lines             []LineViewResponse        `json:"lines"`
	Rates             entities.RateConfig       `json:"rates"`
	Totals            TotalsResponse            `json:"totals"`
	PendingChanges    int                       `json:"pending_changes"`
	HasUnsavedChanges bool                      `json:"has_unsaved_changes"`
	ValidationIssues  []editing.ValidationIssue `json:"validation_issues"`
	Focus             *editing.FocusKey         `json:"focus,omitempty"`
}

func FromView(v editing.View) SessionResponse {
	out := SessionResponse{
		SessionID:         v.SessionID,
		EstimateID:        v.EstimateID,
		Status:            string(v.Status),
		Lines:             make([]LineViewResponse, 0, len(v.Lines)),
		Rates:             v.Rates,
		Totals:            FromTotals(v.Totals),
		PendingChanges:    v.Pending,
		HasUnsavedChanges: v.Unsaved,
		ValidationIssues:  v.Issues,
		Focus:             v.Focus,
	}
	if out.ValidationIssues == nil {
		out.ValidationIssues = []editing.ValidationIssue{}
	}
	for _, lv := range v.Lines {
		dirty := make([]string, 0, len(lv.DirtyFields))
		for _, f := range lv.DirtyFields {
			dirty = append(dirty, string(f))
		}
		out.Lines = append(out.Lines, LineViewResponse{
			Line:          FromLine(lv.Line),
			Status:        string(lv.Status),
			DirtyFields:   dirty,
			Error:         lv.Error,
			PendingCreate: lv.PendingCreate,
		})
	}
	return out
}

type NotificationsResponse struct {
	Notifications []editing.Notification `json:"notifications"`
}

// DiscardResponse reports how many lines were rolled back.
type DiscardResponse struct {
	Discarded int `json:"discarded"`
}
