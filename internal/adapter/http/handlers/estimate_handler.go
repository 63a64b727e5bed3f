package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "estimate_editor/internal/adapter/http/dto/request"
	response "estimate_editor/internal/adapter/http/dto/response"
	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase"
	"estimate_editor/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidRatesPayload    = pkg.NewDomainErrorSimple("INVALID_RATES_INPUT", "Invalid rates payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for claim estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Open the estimate of a claim
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateRequest  true  "claim and optional rates"
// @Success      201   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ResolveClaimID(), payload.ResolveRates())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "estimate id"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// FindEstimate godoc
// @Summary      Find the estimate of a claim
// @Tags         estimates
// @Produce      json
// @Param        claim_id  query     string  true  "claim id"
// @Success      200       {object}  response.EstimateResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /estimates [get]
func (h *EstimateHandler) FindEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByClaimID(c.Request.Context(), strings.TrimSpace(c.Query("claim_id")))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateRates godoc
// @Summary      Replace the rate configuration and recompute totals
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        estimate_id  path      string                true  "estimate id"
// @Param        body         body      request.RatesRequest  true  "rates"
// @Success      200          {object}  response.EstimateResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/rates [patch]
func (h *EstimateHandler) UpdateRates(c *gin.Context) {
	var payload request.RatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatesPayload.HTTPStatus, errInvalidRatesPayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateRates(c.Request.Context(), c.Param("estimate_id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ComputeTotals godoc
// @Summary      Recompute totals from the stored lines
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "estimate id"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/totals [get]
func (h *EstimateHandler) ComputeTotals(c *gin.Context) {
	estimate, err := h.usecase.ComputeTotals(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidRates):
		return pkg.NewDomainErrorSimple("INVALID_RATES", "Rates must be non-negative and VAT at most 100%", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this claim", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
