package handler

import (
	"net/http"

	"clash-arena/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateTournament
// @Summary Create a tournament
// @Description Creates a tournament in draft state
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body model.CreateTournamentRequest true "Tournament details"
// @Success 201 {object} model.Tournament
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /tournaments [post]
func (h *Handler) CreateTournament(c *gin.Context) {
	var req model.CreateTournamentRequest
	if !bindJSON(c, &req) {
		return
	}

	tournament, err := h.tournamentService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// GetTournament
// @Summary Get a tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.Tournament
// @Failure 404 {object} model.ErrorResponse "Tournament not found"
// @Router /tournaments/{id} [get]
func (h *Handler) GetTournament(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrTournamentNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tournament, err := h.tournamentService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tournament)
}

func (h *Handler) lifecycle(c *gin.Context, fn func(int64) error, status string) {
	id, err := pathID(c, "id", model.ErrTournamentNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := fn(id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: status})
}

// PublishTournament
// @Summary Publish a tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/publish [post]
func (h *Handler) PublishTournament(c *gin.Context) {
	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.Publish(c.Request.Context(), id)
	}, "pending")
}

// OpenRegistration
// @Summary Open tournament registration
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/open-registration [post]
func (h *Handler) OpenRegistration(c *gin.Context) {
	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.OpenRegistration(c.Request.Context(), id)
	}, "registration")
}

// MarkTournamentReady
// @Summary Mark a tournament ready
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/ready [post]
func (h *Handler) MarkTournamentReady(c *gin.Context) {
	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.MarkReady(c.Request.Context(), id)
	}, "ready")
}

// StartTournament
// @Summary Start a tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/start [post]
func (h *Handler) StartTournament(c *gin.Context) {
	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.Start(c.Request.Context(), id)
	}, "ongoing")
}

// FinishTournament
// @Summary Finish a tournament
// @Description Finishes the tournament and distributes prizes
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/finish [post]
func (h *Handler) FinishTournament(c *gin.Context) {
	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.Finish(c.Request.Context(), id)
	}, "finished")
}

// CancelTournament
// @Summary Cancel a tournament
// @Description Cancels the tournament and refunds confirmed participants
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param reason body model.ReasonRequest false "Cancellation reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/cancel [post]
func (h *Handler) CancelTournament(c *gin.Context) {
	var req model.ReasonRequest
	_ = c.ShouldBindJSON(&req)

	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.Cancel(c.Request.Context(), id, req.Reason)
	}, "cancelled")
}

// Register
// @Summary Register for a tournament
// @Description Registers the user, charging the entry fee from the wallet
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param user_id query int true "User ID"
// @Param registration body model.RegisterRequest false "Registration details"
// @Success 201 {object} model.RegistrationResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Already registered or full"
// @Router /tournaments/{id}/register [post]
func (h *Handler) Register(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrTournamentNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req model.RegisterRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.tournamentService.Register(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// DistributePrizes
// @Summary Distribute tournament prizes
// @Description Pays out placements from the post-commission pool. Safe to re-run.
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/distribute-prizes [post]
func (h *Handler) DistributePrizes(c *gin.Context) {
	h.lifecycle(c, func(id int64) error {
		return h.tournamentService.DistributePrizes(c.Request.Context(), id)
	}, "distributed")
}

// Invite
// @Summary Invite a user to a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param invitation body model.InviteRequest true "Invitation details"
// @Success 201 {object} model.Invitation
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /tournaments/{id}/invitations [post]
func (h *Handler) Invite(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrTournamentNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.InviteRequest
	if !bindJSON(c, &req) {
		return
	}

	var invitedBy *int64
	if req.InvitedBy > 0 {
		invitedBy = &req.InvitedBy
	}

	invitation, err := h.tournamentService.Invite(c.Request.Context(), id, req.InvitedUserID, invitedBy, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// AcceptInvitation
// @Summary Accept a tournament invitation
// @Tags invitations
// @Produce json
// @Param code path string true "Invitation code"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /invitations/{code}/accept [post]
func (h *Handler) AcceptInvitation(c *gin.Context) {
	err := h.tournamentService.RespondInvitation(c.Request.Context(), c.Param("code"), true)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "accepted"})
}

// DeclineInvitation
// @Summary Decline a tournament invitation
// @Tags invitations
// @Produce json
// @Param code path string true "Invitation code"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /invitations/{code}/decline [post]
func (h *Handler) DeclineInvitation(c *gin.Context) {
	err := h.tournamentService.RespondInvitation(c.Request.Context(), c.Param("code"), false)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "declined"})
}

// DisqualifyParticipant
// @Summary Disqualify a participant
// @Tags participants
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Param reason body model.ReasonRequest false "Disqualification reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /participants/{id}/disqualify [post]
func (h *Handler) DisqualifyParticipant(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrParticipantNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.ReasonRequest
	_ = c.ShouldBindJSON(&req)

	err = h.tournamentService.DisqualifyParticipant(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "disqualified"})
}

// RefundParticipant
// @Summary Refund a participant
// @Description Cancels the registration and refunds the entry payment
// @Tags participants
// @Accept json
// @Produce json
// @Param id path int true "Participant ID"
// @Param reason body model.ReasonRequest false "Refund reason"
// @Success 200 {object} model.StatusResponse
// @Failure 409 {object} model.ErrorResponse "Invalid state"
// @Router /participants/{id}/refund [post]
func (h *Handler) RefundParticipant(c *gin.Context) {
	id, err := pathID(c, "id", model.ErrParticipantNotFound)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var req model.ReasonRequest
	_ = c.ShouldBindJSON(&req)

	err = h.tournamentService.RefundParticipant(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusResponse{Status: "refunded"})
}
