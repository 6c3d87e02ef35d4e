package handlers

import (
	"net/http"

	"pointage-backend/internal/database/models"
	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CongeHandler handles HTTP requests for leave request operations
type CongeHandler struct {
	congeService service.CongeServiceInterface
}

// NewCongeHandler creates a new leave request handler
func NewCongeHandler(congeService service.CongeServiceInterface) *CongeHandler {
	return &CongeHandler{
		congeService: congeService,
	}
}

// Create handles POST /conges
// @Summary Request leave
// @Description Open a leave request in EN_ATTENTE for the acting employee
// @Tags conges
// @Accept json
// @Produce json
// @Param conge body service.CreateCongeRequest true "Leave request data"
// @Success 201 {object} models.DemandeConge "Created leave request"
// @Failure 400 {object} ErrorResponse "Invalid request body or dates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges [post]
func (h *CongeHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req service.CreateCongeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	demande, err := h.congeService.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, demande)
}

// ValidateConducteur handles POST /conges/:id/validate-conducteur
// @Summary Conducteur validation
// @Description Move a pending leave request to VALIDEE_CONDUCTEUR
// @Tags conges
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} models.DemandeConge "Updated leave request"
// @Failure 400 {object} ErrorResponse "Invalid leave request ID"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Failure 409 {object} ErrorResponse "Request is not pending"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges/{id}/validate-conducteur [post]
func (h *CongeHandler) ValidateConducteur(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	demande, err := h.congeService.ValidateByConducteur(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, demande)
}

// ValidateRH handles POST /conges/:id/validate-rh
// @Summary HR validation
// @Description Move a conducteur-validated leave request to VALIDEE_RH
// @Tags conges
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 200 {object} models.DemandeConge "Updated leave request"
// @Failure 400 {object} ErrorResponse "Invalid leave request ID"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Failure 409 {object} ErrorResponse "Request is not conducteur-validated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges/{id}/validate-rh [post]
func (h *CongeHandler) ValidateRH(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	demande, err := h.congeService.ValidateByRH(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, demande)
}

type refuseBody struct {
	Reason string `json:"reason" binding:"required"`
}

// Refuse handles POST /conges/:id/refuse
// @Summary Refuse a leave request
// @Description Reject a leave request from either pre-terminal state, with a reason
// @Tags conges
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param refusal body refuseBody true "Refusal reason"
// @Success 200 {object} models.DemandeConge "Refused leave request"
// @Failure 400 {object} ErrorResponse "Invalid leave request ID or missing reason"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Failure 409 {object} ErrorResponse "Request already settled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges/{id}/refuse [post]
func (h *CongeHandler) Refuse(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	var body refuseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	demande, err := h.congeService.Refuse(actor, id, body.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, demande)
}

// MarkRead handles POST /conges/:id/read
// @Summary Mark a decision as read
// @Description Mark a leave request decision as seen by its requester
// @Tags conges
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Success 204 "Marked as read"
// @Failure 400 {object} ErrorResponse "Invalid leave request ID"
// @Failure 404 {object} ErrorResponse "Leave request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges/{id}/read [post]
func (h *CongeHandler) MarkRead(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid leave request ID"})
		return
	}

	if err := h.congeService.MarkRead(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UnreadCount handles GET /conges/unread-count
// @Summary Count unread decisions
// @Description Count the acting employee's leave decisions not yet seen
// @Tags conges
// @Produce json
// @Success 200 {object} map[string]interface{} "Unread count"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges/unread-count [get]
func (h *CongeHandler) UnreadCount(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	count, err := h.congeService.UnreadCount(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// ListMine handles GET /conges
// @Summary List own leave requests
// @Description Get the acting employee's leave requests, newest first
// @Tags conges
// @Produce json
// @Success 200 {array} models.DemandeConge "Leave requests"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges [get]
func (h *CongeHandler) ListMine(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	demandes, err := h.congeService.ListByEmployee(actor.CompanyID, actor.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, demandes)
}

// ListByStatus handles GET /conges/company
// @Summary List the company's leave requests by status
// @Description Get every leave request of the company in one status
// @Tags conges
// @Produce json
// @Param status query string true "Leave status (EN_ATTENTE, VALIDEE_CONDUCTEUR, VALIDEE_RH, REFUSEE)"
// @Success 200 {array} models.DemandeConge "Leave requests"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /conges/company [get]
func (h *CongeHandler) ListByStatus(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	status := models.CongeStatus(c.Query("status"))
	demandes, err := h.congeService.ListByStatus(actor.CompanyID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, demandes)
}
