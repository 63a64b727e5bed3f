package handlers

import (
	"context"
	"errors"
	"net/http"

	request "estimate_editor/internal/adapter/http/dto/request"
	response "estimate_editor/internal/adapter/http/dto/response"
	"estimate_editor/internal/domain/lineerr"
	"estimate_editor/internal/usecase"
	"estimate_editor/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLinePayload = pkg.NewDomainErrorSimple("INVALID_LINE_INPUT", "Invalid line payload", http.StatusBadRequest)

// LineHandler exposes the estimate-line service. Editing sessions talk to it through
// the line service client.

type LineHandler struct {
	usecase usecase.ILineUseCase
}

func NewLineHandler(uc usecase.ILineUseCase) *LineHandler {
	return &LineHandler{usecase: uc}
}

// ListLines godoc
// @Summary      List the lines of an estimate
// @Tags         lines
// @Produce      json
// @Param        estimate_id  path      string  true  "estimate id"
// @Success      200          {object}  response.LinesResponse
// @Router       /estimates/{estimate_id}/lines [get]
func (h *LineHandler) ListLines(c *gin.Context) {
	lines, err := h.usecase.List(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LinesResponse{Lines: response.FromLines(lines)})
}

// CreateLine godoc
// @Summary      Create a line
// @Description  A missing or taken sequence number becomes the highest existing one plus one.
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string               true  "estimate id"
// @Param        body         body      request.LineRequest  true  "line"
// @Success      201          {object}  response.LineResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      422          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/lines [post]
func (h *LineHandler) CreateLine(c *gin.Context) {
	var payload request.LineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinePayload.HTTPStatus, errInvalidLinePayload.ToHTTPError())
		return
	}

	line, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(c.Param("estimate_id")))
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromLine(line))
}

// UpdateLine godoc
// @Summary      Apply a field diff to a line
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                 true  "estimate id"
// @Param        line_id      path      string                 true  "line id"
// @Param        body         body      request.FieldsRequest  true  "changed fields"
// @Success      200          {object}  response.LineResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      422          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/lines/{line_id} [patch]
func (h *LineHandler) UpdateLine(c *gin.Context) {
	var payload request.FieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinePayload.HTTPStatus, errInvalidLinePayload.ToHTTPError())
		return
	}
	fields, err := payload.ToFieldSet()
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	line, err := h.usecase.Update(c.Request.Context(), c.Param("estimate_id"), c.Param("line_id"), fields)
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLine(line))
}

// DeleteLine godoc
// @Summary      Delete a line
// @Tags         lines
// @Param        estimate_id  path  string  true  "estimate id"
// @Param        line_id      path  string  true  "line id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/lines/{line_id} [delete]
func (h *LineHandler) DeleteLine(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("estimate_id"), c.Param("line_id")); err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkUpdate godoc
// @Summary      Apply field diffs to several lines
// @Description  Items succeed or fail independently; the response carries one result per item.
// @Tags         lines
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                     true  "estimate id"
// @Param        body         body      request.BulkUpdateRequest  true  "items"
// @Success      200          {object}  response.BulkUpdateResponse
// @Failure      413          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/lines/bulk [post]
func (h *LineHandler) BulkUpdate(c *gin.Context) {
	var payload request.BulkUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinePayload.HTTPStatus, errInvalidLinePayload.ToHTTPError())
		return
	}
	items, err := payload.ToUpdates()
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	results, err := h.usecase.BulkUpdate(c.Request.Context(), c.Param("estimate_id"), items)
	if err != nil {
		appErr := mapLineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBulkResults(results, mapLineError))
}

func mapLineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrNoFields), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBulkTooLarge):
		return pkg.NewDomainErrorSimple("BULK_TOO_LARGE", err.Error(), http.StatusRequestEntityTooLarge)
	}

	switch lineerr.Classify(err) {
	case lineerr.KindValidation:
		return pkg.NewDomainError(lineerr.CodeValidation, err.Error(), err, http.StatusUnprocessableEntity).
			WithField(lineerr.FieldList(err))
	case lineerr.KindNotFound:
		return pkg.NewDomainErrorSimple(lineerr.CodeNotFound, "Line not found", http.StatusNotFound)
	case lineerr.KindPermission:
		return pkg.NewDomainErrorSimple(lineerr.CodePermission, "Permission denied", http.StatusForbidden)
	case lineerr.KindConflict:
		return pkg.NewDomainErrorSimple(lineerr.CodeConflict, "Line was changed concurrently", http.StatusConflict)
	}
	if errors.Is(err, lineerr.ErrNetwork) || errors.Is(err, context.DeadlineExceeded) {
		return pkg.NewDomainError(lineerr.CodeUnavailable, "Line service unavailable", err, http.StatusServiceUnavailable)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
