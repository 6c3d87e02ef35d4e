package handlers

import (
	"net/http"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FicheHandler handles HTTP requests for fiche operations
type FicheHandler struct {
	ficheService service.FicheServiceInterface
}

// NewFicheHandler creates a new fiche handler
func NewFicheHandler(ficheService service.FicheServiceInterface) *FicheHandler {
	return &FicheHandler{
		ficheService: ficheService,
	}
}

// createFicheBody is the request body for fiche creation; the tenant comes
// from the token, never from the client.
type createFicheBody struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	ChantierID uuid.UUID `json:"chantier_id" binding:"required"`
	Week       string    `json:"week" binding:"required"`
}

// CreateFiche handles POST /fiches
// @Summary Create a fiche
// @Description Create a weekly fiche for an employee, seeded with five default day rows
// @Tags fiches
// @Accept json
// @Produce json
// @Param fiche body createFicheBody true "Fiche data"
// @Success 201 {object} service.FicheResponse "Successfully created fiche"
// @Failure 400 {object} ErrorResponse "Invalid request body or week"
// @Failure 404 {object} ErrorResponse "Employee or chantier not found"
// @Failure 409 {object} ErrorResponse "Employee already has a fiche for this week"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /fiches [post]
func (h *FicheHandler) CreateFiche(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var body createFicheBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fiche, err := h.ficheService.Create(&service.CreateFicheRequest{
		CompanyID:   actor.CompanyID,
		EmployeeID:  body.EmployeeID,
		ChantierID:  body.ChantierID,
		Week:        body.Week,
		CreatedByID: &actor.EmployeeID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fiche)
}

// GetFiche handles GET /fiches/:id
// @Summary Get fiche by ID
// @Description Get a fiche with its day rows
// @Tags fiches
// @Produce json
// @Param id path string true "Fiche ID (UUID)"
// @Success 200 {object} service.FicheResponse "Successfully retrieved fiche"
// @Failure 400 {object} ErrorResponse "Invalid fiche ID"
// @Failure 404 {object} ErrorResponse "Fiche not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /fiches/{id} [get]
func (h *FicheHandler) GetFiche(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche ID"})
		return
	}

	fiche, err := h.ficheService.GetByID(actor.CompanyID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fiche)
}

// ListByChantierWeek handles GET /chantiers/:id/fiches
// @Summary List fiches of a chantier week
// @Description Get every fiche of a chantier for one week
// @Tags fiches
// @Produce json
// @Param id path string true "Chantier ID (UUID)"
// @Param week query string true "Week identifier (e.g. 2025-S14)"
// @Success 200 {array} service.FicheResponse "Successfully retrieved fiches"
// @Failure 400 {object} ErrorResponse "Invalid chantier ID or week"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /chantiers/{id}/fiches [get]
func (h *FicheHandler) ListByChantierWeek(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	chantierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier ID"})
		return
	}
	week := c.Query("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week query parameter is required"})
		return
	}

	fiches, err := h.ficheService.GetByChantierAndWeek(actor.CompanyID, chantierID, week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fiches)
}

// RemoveFiche handles DELETE /fiches/:id
// @Summary Remove a fiche
// @Description Delete a fiche and its day rows. Removing an already-removed fiche succeeds; a signed fiche is refused.
// @Tags fiches
// @Produce json
// @Param id path string true "Fiche ID (UUID)"
// @Success 204 "Fiche removed"
// @Failure 400 {object} ErrorResponse "Invalid fiche ID"
// @Failure 409 {object} ErrorResponse "Fiche has signatures"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /fiches/{id} [delete]
func (h *FicheHandler) RemoveFiche(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche ID"})
		return
	}

	if err := h.ficheService.RemoveEmployee(actor.CompanyID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type transitionBody struct {
	Target models.FicheStatus `json:"target" binding:"required"`
}

// Transition handles POST /fiches/:id/transition
// @Summary Move a fiche through its lifecycle
// @Description Request a status transition, enforcing ordering, role and closed-period rules
// @Tags fiches
// @Accept json
// @Produce json
// @Param id path string true "Fiche ID (UUID)"
// @Param transition body transitionBody true "Target status"
// @Success 200 {object} service.TransitionResult "Transition applied"
// @Failure 400 {object} ErrorResponse "Invalid fiche ID or body"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 404 {object} ErrorResponse "Fiche not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed or period closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /fiches/{id}/transition [post]
func (h *FicheHandler) Transition(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche ID"})
		return
	}

	var body transitionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ficheService.Transition(actor, id, body.Target)
	if err != nil {
		if err == apperrors.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AutoValidate handles POST /chantiers/:id/auto-validate
// @Summary Auto-validate a chantier week
// @Description Escalate every chef-validated fiche of the chantier week to AUTO_VALIDE
// @Tags fiches
// @Produce json
// @Param id path string true "Chantier ID (UUID)"
// @Param week query string true "Week identifier (e.g. 2025-S14)"
// @Success 200 {object} map[string]interface{} "Escalated count"
// @Failure 400 {object} ErrorResponse "Invalid chantier ID or week"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /chantiers/{id}/auto-validate [post]
func (h *FicheHandler) AutoValidate(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	chantierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier ID"})
		return
	}
	week := c.Query("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week query parameter is required"})
		return
	}

	escalated, err := h.ficheService.AutoValidate(actor, chantierID, week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"escalated": escalated})
}

// CheckModifiable handles GET /fiches/modifiable
// @Summary Check whether a week is editable
// @Description Report whether the fiches of (employee, week) may be edited, with the blocking reason when not
// @Tags fiches
// @Produce json
// @Param employee_id query string true "Employee ID (UUID)"
// @Param week query string true "Week identifier (e.g. 2025-S14)"
// @Param chantier_id query string false "Chantier ID (UUID) to narrow the check"
// @Success 200 {object} service.ModifiableResult "Guard verdict"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /fiches/modifiable [get]
func (h *FicheHandler) CheckModifiable(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return
	}
	week := c.Query("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week query parameter is required"})
		return
	}

	var chantierID *uuid.UUID
	if raw := c.Query("chantier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier_id"})
			return
		}
		chantierID = &id
	}

	result, err := h.ficheService.CheckModifiable(actor.CompanyID, employeeID, week, chantierID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
