package editing

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/infrastructure/backup"
	"estimate_editor/internal/infrastructure/scheduler"
	mock_interfaces "estimate_editor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type managerFixture struct {
	lines     *mock_interfaces.MockILineService
	estimates *mock_interfaces.MockIEstimateProvider
	backups   *backup.DiskStore
	sched     *scheduler.Manual
	m         *Manager
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &managerFixture{
		lines:     mock_interfaces.NewMockILineService(ctrl),
		estimates: mock_interfaces.NewMockIEstimateProvider(ctrl),
		backups:   backup.NewDiskStore(t.TempDir(), 24*time.Hour),
		sched:     scheduler.NewManual(testStart),
	}
	f.m = NewManager(testConfig(), Dependencies{
		Lines:     f.lines,
		Estimates: f.estimates,
		Backups:   f.backups,
		Scheduler: f.sched,
	})
	return f
}

func (f *managerFixture) expectOpen(est entities.Estimate, lines []entities.EstimateLine) {
	f.estimates.EXPECT().GetByID(gomock.Any(), est.ID).Return(est, nil)
	f.lines.EXPECT().List(gomock.Any(), est.ID).Return(lines, nil)
}

func TestManager_Activate(t *testing.T) {
	t.Run("same estimate returns the active session", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectOpen(testEstimate(), serverLines())

		first, err := f.m.Activate(context.Background(), "est-1", CloseFlush)
		if err != nil {
			t.Fatalf("activate: %v", err)
		}
		again, err := f.m.Activate(context.Background(), " est-1 ", CloseFlush)
		if err != nil {
			t.Fatalf("activate again: %v", err)
		}
		if first != again {
			t.Fatalf("expected the same session")
		}
		cur, err := f.m.Current()
		if err != nil || cur != first {
			t.Fatalf("expected the active session, got %v", err)
		}
	})

	t.Run("switching abandons the previous session", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectOpen(testEstimate(), serverLines())

		first, err := f.m.Activate(context.Background(), "est-1", CloseAbandon)
		if err != nil {
			t.Fatalf("activate: %v", err)
		}
		if _, err := first.SetField("l-1", entities.FieldQuantity, entities.NumberValue(3)); err != nil {
			t.Fatalf("set: %v", err)
		}

		other := entities.Estimate{ID: "est-2", ClaimID: "claim-2", Rates: testEstimate().Rates}
		f.expectOpen(other, nil)
		second, err := f.m.Activate(context.Background(), "est-2", CloseAbandon)
		if err != nil {
			t.Fatalf("activate: %v", err)
		}

		if !first.Closed() {
			t.Fatalf("expected the previous session to be closed")
		}
		if second.EstimateID() != "est-2" || len(second.DisplayLines()) != 0 {
			t.Fatalf("expected a clean session for est-2")
		}
		entries, _ := f.backups.ListEstimate("est-1", f.sched.Now())
		if len(entries) != 0 {
			t.Fatalf("expected the abandoned edits to leave no backup, got %d", len(entries))
		}
		if f.sched.Pending() != 0 {
			t.Fatalf("expected the previous session's timers to be stopped")
		}
	})

	t.Run("switching flushes the previous session", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectOpen(testEstimate(), serverLines())
		r := newRemote(serverLines())

		first, _ := f.m.Activate(context.Background(), "est-1", CloseFlush)
		_, _ = first.SetField("l-2", entities.FieldRepairHours, entities.NumberValue(5))

		f.expectOpen(entities.Estimate{ID: "est-2"}, nil)
		f.lines.EXPECT().BulkUpdate(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(r.bulk)
		f.estimates.EXPECT().RecordTotals(gomock.Any(), "est-1", gomock.Any()).Return(nil)

		if _, err := f.m.Activate(context.Background(), "est-2", CloseFlush); err != nil {
			t.Fatalf("activate: %v", err)
		}
		if r.lines["l-2"].RepairHours != 5 {
			t.Fatalf("expected the pending edit to be written before switching")
		}
	})

	t.Run("unknown estimate", func(t *testing.T) {
		f := newManagerFixture(t)
		f.estimates.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)

		if _, err := f.m.Activate(context.Background(), "missing", CloseFlush); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
		if _, err := f.m.Activate(context.Background(), "  ", CloseFlush); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound for a blank id, got %v", err)
		}
	})

	t.Run("list failure keeps the current session", func(t *testing.T) {
		f := newManagerFixture(t)
		f.expectOpen(testEstimate(), serverLines())
		first, _ := f.m.Activate(context.Background(), "est-1", CloseFlush)

		f.estimates.EXPECT().GetByID(gomock.Any(), "est-2").Return(entities.Estimate{ID: "est-2"}, nil)
		f.lines.EXPECT().List(gomock.Any(), "est-2").Return(nil, errors.New("unavailable"))

		if _, err := f.m.Activate(context.Background(), "est-2", CloseFlush); err == nil {
			t.Fatalf("expected an error")
		}
		if first.Closed() {
			t.Fatalf("expected the current session to stay open")
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		f := newManagerFixture(t)
		if _, err := f.m.Activate(context.Background(), "est-1", CloseMode("x")); !errors.Is(err, ErrInvalidCloseMode) {
			t.Fatalf("expected ErrInvalidCloseMode, got %v", err)
		}
	})
}

func TestManager_Close(t *testing.T) {
	f := newManagerFixture(t)
	if err := f.m.Close(context.Background(), CloseFlush); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	f.expectOpen(testEstimate(), serverLines())
	s, _ := f.m.Activate(context.Background(), "est-1", CloseFlush)

	if err := f.m.Close(context.Background(), CloseFlush); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !s.Closed() {
		t.Fatalf("expected the session to be closed")
	}
	if _, err := f.m.Current(); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
