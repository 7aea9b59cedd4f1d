package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfinanceiro/ledger_view_app/internal/apperrors"
	portssvc "github.com/appfinanceiro/ledger_view_app/internal/core/ports/services"
	"github.com/appfinanceiro/ledger_view_app/internal/dto"
	"github.com/appfinanceiro/ledger_view_app/internal/middleware"
)

// movementHandler handles HTTP requests related to ledger movements.
type movementHandler struct {
	viewService     portssvc.ViewSvcFacade
	movementService portssvc.MovementSvcFacade
}

// newMovementHandler creates a new movementHandler.
func newMovementHandler(vs portssvc.ViewSvcFacade, ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{
		viewService:     vs,
		movementService: ms,
	}
}

// registerMovementRoutes registers routes related to movements.
func registerMovementRoutes(rg *gin.RouterGroup, viewService portssvc.ViewSvcFacade, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(viewService, movementService)

	movements := rg.Group("/movements")
	{
		movements.GET("", h.listMovements)
		movements.POST("", h.createMovement)
		movements.GET("/draft", h.newDraft)
		movements.POST("/draft", h.draftStep)
		movements.GET("/:movementID", h.getMovementDraft)
		movements.PUT("/:movementID", h.updateMovement)
		movements.DELETE("/:movementID", h.deleteMovement)
	}
}

// listMovements evaluates the full view pipeline for the query parameters:
// timeline and lateral filters, free text, chips, sort, pagination. The
// response carries the page rows with supplier names resolved, plus totals
// over the filtered subset.
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListMovements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.viewService.Evaluate(c.Request.Context(), req.ToViewState())
	if err != nil {
		logger.Error("Failed to evaluate movement view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// createMovement validates the draft payload and persists a new movement.
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MovementDraftPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), req.ToDraft())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create movement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement, req.SupplierName))
}

// newDraft returns an empty draft for the create form, seeded with the
// default retention percentage.
func (h *movementHandler) newDraft(c *gin.Context) {
	draft := h.movementService.NewDraft()
	c.JSON(http.StatusOK, dto.DraftStepResponse{
		Draft:           dto.FromDraft(draft),
		GrossDisplay:    draft.GrossDisplay(),
		RetainedDisplay: draft.RetainedDisplay(),
	})
}

// getMovementDraft loads a stored movement as the edit form's draft.
func (h *movementHandler) getMovementDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	draft, err := h.movementService.GetMovementDraft(c.Request.Context(), movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			return
		}
		logger.Error("Failed to load movement draft", slog.String("movement_id", movementID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load movement"})
		return
	}

	c.JSON(http.StatusOK, dto.DraftStepResponse{
		Draft:           dto.FromDraft(draft),
		GrossDisplay:    draft.GrossDisplay(),
		RetainedDisplay: draft.RetainedDisplay(),
	})
}

// draftStep applies one masked-input edit to an in-progress draft and
// returns the recomputed draft with its display strings. No state is kept
// server-side; the client round-trips the draft on every edit.
func (h *movementHandler) draftStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DraftStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DraftStep", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.movementService.ApplyDraftEdit(req.Draft.ToDraft(), req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DraftStepResponse{
		Draft:           dto.FromDraft(draft),
		GrossDisplay:    draft.GrossDisplay(),
		RetainedDisplay: draft.RetainedDisplay(),
	})
}

// updateMovement validates the draft payload and replaces the stored
// movement. Overlapping saves are last-write-wins, same as the rest of the
// store.
func (h *movementHandler) updateMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	var req dto.MovementDraftPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.movementService.UpdateMovement(c.Request.Context(), movementID, req.ToDraft())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			return
		}
		logger.Error("Failed to update movement", slog.String("movement_id", movementID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement, req.SupplierName))
}

// deleteMovement removes a movement.
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("movementID")

	if err := h.movementService.DeleteMovement(c.Request.Context(), movementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
			return
		}
		logger.Error("Failed to delete movement", slog.String("movement_id", movementID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete movement"})
		return
	}

	c.Status(http.StatusNoContent)
}
