package response

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/editing"
	"estimate_editor/pkg"

	"github.com/shopspring/decimal"
)

func TestFromLine_RoundTrip(t *testing.T) {
	l := entities.NewBlankLine("l-1", "est-1", 3)
	l.OperationCode = entities.OperationNew
	l.PartType = entities.PartTypeOEM
	l.PartCost = decimal.RequireFromString("120.5")
	l.Subtotals = entities.LineSubtotals{
		Part:  decimal.RequireFromString("150.63"),
		Total: decimal.RequireFromString("150.63"),
	}
	l.UpdatedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	res := FromLine(l)
	if res.Subtotals.Part != "150.63" || res.Subtotals.Labor != "0.00" {
		t.Fatalf("unexpected subtotals: %+v", res.Subtotals)
	}
	back := res.ToEntity()
	if back.ID != "l-1" || back.OperationCode != entities.OperationNew || back.PartType != entities.PartTypeOEM {
		t.Fatalf("unexpected line: %+v", back)
	}
	if !back.PartCost.Equal(l.PartCost) {
		t.Fatalf("expected part cost 120.5, got %s", back.PartCost)
	}
	if !back.Subtotals.Total.Equal(l.Subtotals.Total) || !back.UpdatedAt.Equal(l.UpdatedAt) {
		t.Fatalf("expected subtotals and timestamp to survive, got %+v", back)
	}
}

func TestFromBulkResults(t *testing.T) {
	mapErr := func(err error) *pkg.AppError {
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", err.Error(), http.StatusNotFound)
	}
	res := FromBulkResults([]entities.LineUpdateResult{
		{LineID: "l-1", Line: entities.NewBlankLine("l-1", "est-1", 1)},
		{LineID: "l-2", Err: errors.New("gone")},
	}, mapErr)

	if len(res.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.Results))
	}
	if res.Results[0].Line == nil || res.Results[0].Error != nil {
		t.Fatalf("expected a line for l-1, got %+v", res.Results[0])
	}
	if res.Results[1].Line != nil || res.Results[1].Error == nil || res.Results[1].Error.Code != "LINE_NOT_FOUND" {
		t.Fatalf("expected an error for l-2, got %+v", res.Results[1])
	}
}

func TestFromView(t *testing.T) {
	v := editing.View{
		SessionID:  "s-1",
		EstimateID: "est-1",
		Status:     editing.StatusDirty,
		Totals:     entities.Totals{TotalAmount: decimal.RequireFromString("3507.5")},
		Pending:    1,
		Unsaved:    true,
		Lines: []editing.LineView{{
			Line:        entities.NewBlankLine("l-1", "est-1", 1),
			Status:      editing.StatusDirty,
			DirtyFields: []entities.Field{entities.FieldQuantity},
		}},
	}

	res := FromView(v)
	if res.Status != "dirty" || res.PendingChanges != 1 || !res.HasUnsavedChanges {
		t.Fatalf("unexpected session: %+v", res)
	}
	if res.Totals.TotalAmount != "3507.50" {
		t.Fatalf("expected 3507.50, got %s", res.Totals.TotalAmount)
	}
	if len(res.Lines) != 1 || res.Lines[0].DirtyFields[0] != "quantity" {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
	if res.ValidationIssues == nil {
		t.Fatalf("expected an empty issue list rather than null")
	}
}
