package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "estimate_editor/internal/adapter/http/dto/request"
	response "estimate_editor/internal/adapter/http/dto/response"
	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/usecase"
	"estimate_editor/internal/usecase/editing"
	"estimate_editor/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)

// SessionHandler drives the active editing session.
type SessionHandler struct {
	manager *editing.Manager
}

func NewSessionHandler(m *editing.Manager) *SessionHandler {
	return &SessionHandler{manager: m}
}

// Activate godoc
// @Summary      Make an estimate the active editing session
// @Description  The session being replaced is flushed or abandoned according to mode.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      request.ActivateSessionRequest  true  "estimate and close mode"
// @Success      200   {object}  response.SessionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /session [post]
func (h *SessionHandler) Activate(c *gin.Context) {
	var payload request.ActivateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.manager.Activate(c.Request.Context(), payload.EstimateID, payload.ResolveMode())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromView(s.View()))
}

// GetSession godoc
// @Summary      Current state of the active session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		c.JSON(http.StatusOK, response.FromView(s.View()))
	})
}

// Close godoc
// @Summary      End the active session
// @Tags         session
// @Param        mode  query  string  false  "flush (default) or abandon"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /session [delete]
func (h *SessionHandler) Close(c *gin.Context) {
	var payload request.CloseSessionRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	if err := h.manager.Close(c.Request.Context(), payload.ResolveMode()); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetField godoc
// @Summary      Edit a field of a line
// @Description  The display value changes at once; the write is debounced.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        line_id  path      string                   true  "line id"
// @Param        field    path      string                   true  "field name"
// @Param        body     body      request.SetFieldRequest  true  "new value"
// @Success      200      {object}  response.LineResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /session/lines/{line_id}/fields/{field} [put]
func (h *SessionHandler) SetField(c *gin.Context) {
	var payload request.SetFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	f, err := entities.ParseField(c.Param("field"))
	if err != nil {
		appErr := mapSessionError(err).WithField(c.Param("field"))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	v, err := entities.ParseValue(f, payload.Value)
	if err != nil {
		appErr := mapSessionError(err).WithField(string(f))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.withSession(c, func(s *editing.Session) {
		line, err := s.SetField(c.Param("line_id"), f, v)
		if err != nil {
			appErr := mapSessionError(err)
			if appErr.Code == lineerr.CodeValidation {
				appErr = appErr.WithField(string(f))
			}
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromLine(line))
	})
}

// AddLine godoc
// @Summary      Insert a blank line
// @Tags         session
// @Produce      json
// @Success      201  {object}  response.LineResponse
// @Router       /session/lines [post]
func (h *SessionHandler) AddLine(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		line, err := s.AddLine()
		if err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusCreated, response.FromLine(line))
	})
}

// RemoveLine godoc
// @Summary      Remove a line
// @Description  The line disappears at once; the delete is sent with the next batch.
// @Tags         session
// @Param        line_id  path  string  true  "line id"
// @Success      202
// @Failure      404  {object}  pkg.HTTPError
// @Router       /session/lines/{line_id} [delete]
func (h *SessionHandler) RemoveLine(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		if err := s.RemoveLine(c.Param("line_id")); err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Status(http.StatusAccepted)
	})
}

// LineStatus godoc
// @Summary      Sync status of a line
// @Tags         session
// @Produce      json
// @Param        line_id  path      string  true  "line id"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  pkg.HTTPError
// @Router       /session/lines/{line_id}/status [get]
func (h *SessionHandler) LineStatus(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		status, err := s.LineStatus(c.Param("line_id"))
		if err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, gin.H{"line_id": c.Param("line_id"), "status": status})
	})
}

// Focus godoc
// @Summary      Mark the field being edited
// @Description  Snapshots never overwrite the focused field.
// @Tags         session
// @Accept       json
// @Param        body  body  request.FocusRequest  true  "line and field"
// @Success      204
// @Router       /session/focus [post]
func (h *SessionHandler) Focus(c *gin.Context) {
	var payload request.FocusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	h.withSession(c, func(s *editing.Session) {
		if err := s.Focus(payload.LineID, entities.Field(strings.TrimSpace(payload.Field))); err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// Blur godoc
// @Summary      Release focus
// @Tags         session
// @Success      204
// @Router       /session/focus [delete]
func (h *SessionHandler) Blur(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		s.Blur()
		c.Status(http.StatusNoContent)
	})
}

// DiscardChanges godoc
// @Summary      Revert every unsaved field edit
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.DiscardResponse
// @Router       /session/discard [post]
func (h *SessionHandler) DiscardChanges(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		n, err := s.DiscardChanges()
		if err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.DiscardResponse{Discarded: n})
	})
}

// Retry godoc
// @Summary      Retry lines in error or conflict
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      request.RetryRequest  false  "lines to retry; all when empty"
// @Success      200   {object}  response.SessionResponse
// @Router       /session/retry [post]
func (h *SessionHandler) Retry(c *gin.Context) {
	var payload request.RetryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
			return
		}
	}
	h.run(c, func(ctx context.Context, s *editing.Session) error {
		return s.Retry(ctx, payload.LineIDs...)
	})
}

// Flush godoc
// @Summary      Send every pending write now
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Router       /session/flush [post]
func (h *SessionHandler) Flush(c *gin.Context) {
	h.run(c, func(ctx context.Context, s *editing.Session) error {
		return s.Flush(ctx)
	})
}

// Refresh godoc
// @Summary      Merge the current server lines into the session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /session/refresh [post]
func (h *SessionHandler) Refresh(c *gin.Context) {
	h.run(c, func(ctx context.Context, s *editing.Session) error {
		return s.Refresh(ctx)
	})
}

// Notifications godoc
// @Summary      Recent synchronization notifications
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.NotificationsResponse
// @Router       /session/notifications [get]
func (h *SessionHandler) Notifications(c *gin.Context) {
	h.withSession(c, func(s *editing.Session) {
		c.JSON(http.StatusOK, response.NotificationsResponse{Notifications: s.Notifications()})
	})
}

func (h *SessionHandler) withSession(c *gin.Context, fn func(s *editing.Session)) {
	s, err := h.manager.Current()
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	fn(s)
}

// run executes a blocking session operation and answers with the resulting view.
func (h *SessionHandler) run(c *gin.Context, op func(ctx context.Context, s *editing.Session) error) {
	h.withSession(c, func(s *editing.Session) {
		if err := op(c.Request.Context(), s); err != nil {
			appErr := mapSessionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromView(s.View()))
	})
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, editing.ErrNoActiveSession):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_SESSION", "No estimate is being edited", http.StatusNotFound)
	case errors.Is(err, editing.ErrEstimateNotFound), errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, editing.ErrLineNotFound):
		return pkg.NewDomainErrorSimple(lineerr.CodeNotFound, "Line not found", http.StatusNotFound)
	case errors.Is(err, editing.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("SESSION_CLOSED", "Editing session is closed", http.StatusConflict)
	case errors.Is(err, editing.ErrInvalidCloseMode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "mode must be flush or abandon", http.StatusBadRequest)
	case errors.Is(err, editing.ErrUnsyncedChanges):
		return pkg.NewDomainError("UNSYNCED_CHANGES", "Session closed; some changes were kept for recovery", err, http.StatusConflict)
	case errors.Is(err, entities.ErrUnknownField), errors.Is(err, entities.ErrInvalidFieldValue):
		return pkg.NewDomainError(lineerr.CodeValidation, err.Error(), err, http.StatusUnprocessableEntity)
	}
	return mapLineError(err)
}
