package handler

import (
	"net/http"

	"clash-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateMatch
// @Summary Create a match
// @Tags matches
// @Accept json
// @Produce json
// @Param match body model.CreateMatchRequest true "Match details"
// @Success 201 {object} model.Match
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /matches [post]
func (h *Handler) CreateMatch(c *gin.Context) {
	var req model.CreateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchService.Create(c.Request.Context(), req.TournamentID, req.MatchNumber, req.Player1ID, req.Player2ID, req.BestOf)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// StartMatch
// @Summary Start a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/start [post]
func (h *Handler) StartMatch(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrMatchNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.matchService.Start(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "ongoing"})
}

// RecordGameResult
// @Summary Record a game result
// @Description Records one game of a best-of-N match; the match completes when a player reaches the needed wins
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param result body model.GameResultRequest true "Game result"
// @Success 200 {object} model.Match
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/result [post]
func (h *Handler) RecordGameResult(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrMatchNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.GameResultRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchService.RecordGameResult(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// CancelMatch
// @Summary Cancel a match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param reason body model.ReasonRequest false "Cancellation reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /matches/{id}/cancel [post]
func (h *Handler) CancelMatch(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrMatchNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.ReasonRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.matchService.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "cancelled"})
}

// IngestBattleResult
// @Summary Ingest a battle result
// @Description Consumes one battle-log tuple from the game API; duplicates are dropped
// @Tags matches
// @Accept json
// @Produce json
// @Param battle body model.BattleResult true "Battle result"
// @Success 202 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /battles [post]
func (h *Handler) IngestBattleResult(c *gin.Context) {
	var result model.BattleResult
	if !bindJSON(c, &result) {
		return
	}

	if err := h.matchService.IngestBattleResult(c.Request.Context(), &result); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, model.StatusResponse{Status: "accepted"})
}
