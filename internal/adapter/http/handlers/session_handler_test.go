package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/infrastructure/scheduler"
	"estimate_editor/internal/usecase/editing"
	mock_interfaces "estimate_editor/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	lines     *mock_interfaces.MockILineService
	estimates *mock_interfaces.MockIEstimateProvider
	router    *gin.Engine
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		lines:     mock_interfaces.NewMockILineService(ctrl),
		estimates: mock_interfaces.NewMockIEstimateProvider(ctrl),
	}
	cfg := editing.DefaultConfig()
	cfg.RefreshInterval = 0
	m := editing.NewManager(cfg, editing.Dependencies{
		Lines:     f.lines,
		Estimates: f.estimates,
		Scheduler: scheduler.NewManual(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
	})
	h := NewSessionHandler(m)

	r := gin.New()
	s := r.Group("/v1/session")
	s.POST("", h.Activate)
	s.GET("", h.GetSession)
	s.DELETE("", h.Close)
	s.POST("/lines", h.AddLine)
	s.DELETE("/lines/:line_id", h.RemoveLine)
	s.GET("/lines/:line_id/status", h.LineStatus)
	s.PUT("/lines/:line_id/fields/:field", h.SetField)
	s.POST("/focus", h.Focus)
	s.DELETE("/focus", h.Blur)
	s.POST("/discard", h.DiscardChanges)
	s.POST("/retry", h.Retry)
	s.POST("/flush", h.Flush)
	s.POST("/refresh", h.Refresh)
	s.GET("/notifications", h.Notifications)
	f.router = r
	return f
}

func (f *sessionFixture) activate(t *testing.T) {
	t.Helper()
	est := entities.Estimate{ID: "est-1", Rates: entities.RateConfig{LaborRate: 350, VATRatePercentage: 15, SpecialMarkupPercentage: 25}}
	part := entities.NewBlankLine("l-1", "est-1", 1)
	part.OperationCode = entities.OperationNew
	part.PartCost = decimal.NewFromInt(100)
	labor := entities.NewBlankLine("l-2", "est-1", 2)
	labor.RepairHours = 2

	f.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
	f.lines.EXPECT().List(gomock.Any(), "est-1").Return([]entities.EstimateLine{part, labor}, nil)

	w := doJSON(f.router, http.MethodPost, "/v1/session", `{"estimate_id":"est-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("activate: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

type sessionBody struct {
	SessionID  string `json:"session_id"`
	EstimateID string `json:"estimate_id"`
	Status     string `json:"status"`
	Pending    int    `json:"pending_changes"`
	Unsaved    bool   `json:"has_unsaved_changes"`
	Lines      []struct {
		Line struct {
			ID       string  `json:"id"`
			Quantity float64 `json:"quantity"`
		} `json:"line"`
		Status        string   `json:"status"`
		DirtyFields   []string `json:"dirty_fields"`
		PendingCreate bool     `json:"pending_create"`
	} `json:"lines"`
	Totals struct {
		TotalAmount string `json:"total_amount"`
	} `json:"totals"`
}

func (f *sessionFixture) view(t *testing.T) sessionBody {
	t.Helper()
	w := doJSON(f.router, http.MethodGet, "/v1/session", "")
	if w.Code != http.StatusOK {
		t.Fatalf("view: expected 200, got %d", w.Code)
	}
	var body sessionBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return body
}

func TestSessionHandler_NoActiveSession(t *testing.T) {
	f := newSessionFixture(t)

	w := doJSON(f.router, http.MethodGet, "/v1/session", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "NO_ACTIVE_SESSION" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestSessionHandler_Activate(t *testing.T) {
	t.Run("unknown estimate", func(t *testing.T) {
		f := newSessionFixture(t)
		f.estimates.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Estimate{}, nil)

		w := doJSON(f.router, http.MethodPost, "/v1/session", `{"estimate_id":"nope"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		f := newSessionFixture(t)
		w := doJSON(f.router, http.MethodPost, "/v1/session", `{"estimate_id":"est-1","mode":"later"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newSessionFixture(t)
		f.activate(t)

		body := f.view(t)
		if body.EstimateID != "est-1" || body.Status != "idle" || len(body.Lines) != 2 {
			t.Fatalf("unexpected session: %+v", body)
		}
	})
}

func TestSessionHandler_SetField(t *testing.T) {
	t.Run("edit is shown at once and flushed", func(t *testing.T) {
		f := newSessionFixture(t)
		f.activate(t)

		w := doJSON(f.router, http.MethodPut, "/v1/session/lines/l-1/fields/quantity", `{"value":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		body := f.view(t)
		if body.Status != "dirty" || body.Pending != 1 || !body.Unsaved {
			t.Fatalf("expected one pending change, got %+v", body)
		}
		if body.Lines[0].Line.Quantity != 3 || body.Lines[0].DirtyFields[0] != "quantity" {
			t.Fatalf("unexpected line view: %+v", body.Lines[0])
		}

		f.lines.EXPECT().BulkUpdate(gomock.Any(), "est-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, items []entities.LineUpdate) ([]entities.LineUpdateResult, error) {
				if len(items) != 1 || items[0].LineID != "l-1" {
					t.Fatalf("unexpected items: %+v", items)
				}
				l := entities.NewBlankLine("l-1", "est-1", 1)
				l.OperationCode = entities.OperationNew
				l.PartCost = decimal.NewFromInt(100)
				l.Quantity = 3
				return []entities.LineUpdateResult{{LineID: "l-1", Line: l}}, nil
			})
		f.estimates.EXPECT().RecordTotals(gomock.Any(), "est-1", gomock.Any()).Return(nil)

		w = doJSON(f.router, http.MethodPost, "/v1/session/flush", "")
		if w.Code != http.StatusOK {
			t.Fatalf("flush: expected 200, got %d", w.Code)
		}
		if body := f.view(t); body.Status != "idle" || body.Pending != 0 {
			t.Fatalf("expected a clean session after flush, got %+v", body)
		}
	})

	t.Run("rejected values", func(t *testing.T) {
		f := newSessionFixture(t)
		f.activate(t)

		cases := []struct {
			path      string
			body      string
			wantCode  int
			wantField string
		}{
			{path: "/v1/session/lines/l-1/fields/quantity", body: `{"value":"lots"}`, wantCode: http.StatusUnprocessableEntity, wantField: "quantity"},
			{path: "/v1/session/lines/l-1/fields/quantity", body: `{"value":-1}`, wantCode: http.StatusUnprocessableEntity, wantField: "quantity"},
			{path: "/v1/session/lines/l-1/fields/colour", body: `{"value":"red"}`, wantCode: http.StatusUnprocessableEntity, wantField: "colour"},
			{path: "/v1/session/lines/l-9/fields/quantity", body: `{"value":1}`, wantCode: http.StatusNotFound},
			{path: "/v1/session/lines/l-1/fields/quantity", body: `{}`, wantCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			w := doJSON(f.router, http.MethodPut, tc.path, tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("%s %s: expected %d, got %d", tc.path, tc.body, tc.wantCode, w.Code)
			}
			if tc.wantField != "" {
				if body := decodeError(t, w); body.Field != tc.wantField {
					t.Fatalf("%s %s: expected field %q, got %+v", tc.path, tc.body, tc.wantField, body)
				}
			}
		}
		if body := f.view(t); body.Pending != 0 {
			t.Fatalf("rejected values must not become pending, got %d", body.Pending)
		}
	})
}

func TestSessionHandler_LinesAndFocus(t *testing.T) {
	f := newSessionFixture(t)
	f.activate(t)

	w := doJSON(f.router, http.MethodPost, "/v1/session/lines", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d", w.Code)
	}
	var added struct {
		ID             string `json:"id"`
		SequenceNumber int    `json:"sequence_number"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &added)
	if !entities.IsTemporaryID(added.ID) || added.SequenceNumber != 3 {
		t.Fatalf("unexpected added line: %+v", added)
	}

	if w := doJSON(f.router, http.MethodDelete, "/v1/session/lines/"+added.ID, ""); w.Code != http.StatusAccepted {
		t.Fatalf("remove: expected 202, got %d", w.Code)
	}
	if w := doJSON(f.router, http.MethodDelete, "/v1/session/lines/"+added.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("second remove: expected 404, got %d", w.Code)
	}

	if w := doJSON(f.router, http.MethodGet, "/v1/session/lines/l-2/status", ""); w.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", w.Code)
	}

	if w := doJSON(f.router, http.MethodPost, "/v1/session/focus", `{"line_id":"l-9","field":"quantity"}`); w.Code != http.StatusNotFound {
		t.Fatalf("focus unknown line: expected 404, got %d", w.Code)
	}
	if w := doJSON(f.router, http.MethodPost, "/v1/session/focus", `{"line_id":"l-1","field":"quantity"}`); w.Code != http.StatusNoContent {
		t.Fatalf("focus: expected 204, got %d", w.Code)
	}
	if w := doJSON(f.router, http.MethodDelete, "/v1/session/focus", ""); w.Code != http.StatusNoContent {
		t.Fatalf("blur: expected 204, got %d", w.Code)
	}
}

func TestSessionHandler_Discard(t *testing.T) {
	f := newSessionFixture(t)
	f.activate(t)

	doJSON(f.router, http.MethodPut, "/v1/session/lines/l-1/fields/quantity", `{"value":5}`)
	doJSON(f.router, http.MethodPut, "/v1/session/lines/l-2/fields/description", `{"value":"Door"}`)

	w := doJSON(f.router, http.MethodPost, "/v1/session/discard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Discarded int `json:"discarded"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Discarded != 2 {
		t.Fatalf("expected 2 discarded changes, got %d", body.Discarded)
	}
	if v := f.view(t); v.Pending != 0 || v.Lines[0].Line.Quantity != 1 {
		t.Fatalf("expected confirmed values back, got %+v", v)
	}

	w = doJSON(f.router, http.MethodGet, "/v1/session/notifications", "")
	var notes struct {
		Notifications []editing.Notification `json:"notifications"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &notes)
	if len(notes.Notifications) != 1 || notes.Notifications[0].Kind != "discard" {
		t.Fatalf("expected a discard notification, got %+v", notes.Notifications)
	}
}

func TestSessionHandler_RefreshFailure(t *testing.T) {
	f := newSessionFixture(t)
	f.activate(t)

	f.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)
	f.lines.EXPECT().List(gomock.Any(), "est-1").Return(nil, context.DeadlineExceeded)

	w := doJSON(f.router, http.MethodPost, "/v1/session/refresh", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestSessionHandler_Close(t *testing.T) {
	t.Run("invalid mode", func(t *testing.T) {
		f := newSessionFixture(t)
		f.activate(t)
		if w := doJSON(f.router, http.MethodDelete, "/v1/session?mode=later", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("abandon", func(t *testing.T) {
		f := newSessionFixture(t)
		f.activate(t)
		doJSON(f.router, http.MethodPut, "/v1/session/lines/l-1/fields/quantity", `{"value":5}`)

		if w := doJSON(f.router, http.MethodDelete, "/v1/session?mode=abandon", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := doJSON(f.router, http.MethodGet, "/v1/session", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected no active session, got %d", w.Code)
		}
	})

	t.Run("flush without pending work", func(t *testing.T) {
		f := newSessionFixture(t)
		f.activate(t)
		if w := doJSON(f.router, http.MethodDelete, "/v1/session", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
