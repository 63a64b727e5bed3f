package editing

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/infrastructure/backup"
	"estimate_editor/internal/infrastructure/scheduler"
	mock_interfaces "estimate_editor/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RefreshInterval = 0
	return cfg
}

func testEstimate() entities.Estimate {
	return entities.Estimate{
		ID:      "est-1",
		ClaimID: "claim-1",
		Rates: entities.RateConfig{
			LaborRate:               350,
			PaintMaterialRate:       2000,
			VATRatePercentage:       15,
			PartMarkupPercentage:    25,
			SpecialMarkupPercentage: 25,
		},
	}
}

func serverLines() []entities.EstimateLine {
	part := entities.NewBlankLine("l-1", "est-1", 1)
	part.OperationCode = entities.OperationNew
	part.PartCost = decimal.NewFromInt(100)
	part.Quantity = 2

	labor := entities.NewBlankLine("l-2", "est-1", 2)
	labor.RepairHours = 2
	labor.StripFitHours = 1

	paint := entities.NewBlankLine("l-3", "est-1", 3)
	paint.OperationCode = entities.OperationPaint
	paint.PaintHours = 1

	return []entities.EstimateLine{part, labor, paint}
}

func manyLines(n int) []entities.EstimateLine {
	out := make([]entities.EstimateLine, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entities.NewBlankLine(fmt.Sprintf("l-%03d", i), "est-1", i))
	}
	return out
}

// remote keeps the server side state behind a mocked line service.
type remote struct {
	lines   map[string]entities.EstimateLine
	batches [][]entities.LineUpdate
	created int
}

func newRemote(lines []entities.EstimateLine) *remote {
	r := &remote{lines: map[string]entities.EstimateLine{}}
	for _, l := range lines {
		r.lines[l.ID] = l
	}
	return r
}

func (r *remote) bulk(_ context.Context, _ string, items []entities.LineUpdate) ([]entities.LineUpdateResult, error) {
	r.batches = append(r.batches, items)
	out := make([]entities.LineUpdateResult, 0, len(items))
	for _, it := range items {
		l := r.lines[it.LineID]
		for f, v := range it.Fields {
			_ = l.Set(f, v)
		}
		r.lines[it.LineID] = l
		out = append(out, entities.LineUpdateResult{LineID: it.LineID, Line: l})
	}
	return out, nil
}

func (r *remote) create(_ context.Context, l entities.EstimateLine) (entities.EstimateLine, error) {
	r.created++
	l.ID = fmt.Sprintf("srv-%d", r.created)
	r.lines[l.ID] = l
	return l, nil
}

func (r *remote) list(_ context.Context, _ string) ([]entities.EstimateLine, error) {
	out := make([]entities.EstimateLine, 0, len(r.lines))
	for _, l := range r.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceNumber < out[j].SequenceNumber })
	return out, nil
}

type harness struct {
	t         *testing.T
	ctrl      *gomock.Controller
	lines     *mock_interfaces.MockILineService
	estimates *mock_interfaces.MockIEstimateProvider
	sched     *scheduler.Manual
	backups   *backup.DiskStore
	notes     []Notification
	s         *Session
	ids       int
}

// buildHarness prepares the collaborators without opening a session.
func buildHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &harness{
		t:       t,
		ctrl:    ctrl,
		lines:   mock_interfaces.NewMockILineService(ctrl),
		sched:   scheduler.NewManual(testStart),
		backups: backup.NewDiskStore(t.TempDir(), 24*time.Hour),
	}
}

func newHarness(t *testing.T, cfg Config, initial []entities.EstimateLine) *harness {
	t.Helper()
	h := buildHarness(t)
	h.open(cfg, initial)
	return h
}

func (h *harness) open(cfg Config, initial []entities.EstimateLine) {
	h.s = Open(context.Background(), cfg, h.deps(), testEstimate(), initial)
}

func (h *harness) deps() Dependencies {
	d := Dependencies{
		Lines:     h.lines,
		Backups:   h.backups,
		Scheduler: h.sched,
		Listener:  func(_ string, n Notification) { h.notes = append(h.notes, n) },
		NewID:     h.nextID,
	}
	if h.estimates != nil {
		d.Estimates = h.estimates
	}
	return d
}

func (h *harness) notesOf(kind string) []Notification {
	var out []Notification
	for _, n := range h.notes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (h *harness) nextID() string {
	h.ids++
	return fmt.Sprintf("id-%d", h.ids)
}

func (h *harness) set(lineID string, f entities.Field, v entities.Value) {
	h.t.Helper()
	if _, err := h.s.SetField(lineID, f, v); err != nil {
		h.t.Fatalf("set %s.%s: %v", lineID, f, err)
	}
}

func (h *harness) display(lineID string) entities.EstimateLine {
	h.t.Helper()
	for _, l := range h.s.DisplayLines() {
		if l.ID == lineID {
			return l
		}
	}
	h.t.Fatalf("line %s is not displayed", lineID)
	return entities.EstimateLine{}
}

func (h *harness) status(lineID string) SyncStatus {
	h.t.Helper()
	st, err := h.s.LineStatus(lineID)
	if err != nil {
		h.t.Fatalf("status of %s: %v", lineID, err)
	}
	return st
}

func (h *harness) hasBackup(lineID string, f entities.Field) bool {
	_, ok := h.backups.Get(h.s.backupKey(lineID, f), h.sched.Now())
	return ok
}
