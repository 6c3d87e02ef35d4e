package handlers

import (
	"net/http"

	"pointage-backend/internal/database/models"
	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FicheJourHandler handles HTTP requests for fiche day operations
type FicheJourHandler struct {
	ficheService service.FicheServiceInterface
}

// NewFicheJourHandler creates a new fiche day handler
func NewFicheJourHandler(ficheService service.FicheServiceInterface) *FicheJourHandler {
	return &FicheJourHandler{
		ficheService: ficheService,
	}
}

// UpdateJour handles PATCH /jours/:id
// @Summary Update a fiche day
// @Description Edit hours, trajets, panier and free-text fields of one day. Rejected while the week is frozen.
// @Tags jours
// @Accept json
// @Produce json
// @Param id path string true "Fiche day ID (UUID)"
// @Param jour body service.UpdateJourRequest true "Fields to update"
// @Success 200 {object} service.FicheJourResponse "Updated day"
// @Failure 400 {object} ErrorResponse "Invalid ID or out-of-range values"
// @Failure 403 {object} ErrorResponse "Week is frozen"
// @Failure 404 {object} ErrorResponse "Day not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jours/{id} [patch]
func (h *FicheJourHandler) UpdateJour(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche day ID"})
		return
	}

	var req service.UpdateJourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jour, err := h.ficheService.UpdateJour(actor.CompanyID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jour)
}

// RemoveJour handles DELETE /jours/:id
// @Summary Remove a fiche day
// @Description Revoke one day of an assignment. The fiche itself is deleted when its last day goes.
// @Tags jours
// @Produce json
// @Param id path string true "Fiche day ID (UUID)"
// @Success 204 "Day removed"
// @Failure 400 {object} ErrorResponse "Invalid fiche day ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jours/{id} [delete]
func (h *FicheJourHandler) RemoveJour(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche day ID"})
		return
	}

	if err := h.ficheService.RemoveJour(actor.CompanyID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type absenceBody struct {
	TypeAbsence *models.AbsenceType `json:"type_absence"`
}

// SetAbsence handles PUT /jours/:id/absence
// @Summary Set an absence code
// @Description Set (or clear with null) the absence code on a day. Setting propagates forward through non-worked days of the week.
// @Tags jours
// @Accept json
// @Produce json
// @Param id path string true "Fiche day ID (UUID)"
// @Param absence body absenceBody true "Absence code, null to clear"
// @Success 200 {object} service.AbsenceResult "Days updated"
// @Failure 400 {object} ErrorResponse "Invalid ID or absence code"
// @Failure 403 {object} ErrorResponse "Week is frozen"
// @Failure 404 {object} ErrorResponse "Day not found"
// @Failure 500 {object} ErrorResponse "Internal server error or partial propagation"
// @Security BearerAuth
// @Router /jours/{id}/absence [put]
func (h *FicheJourHandler) SetAbsence(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche day ID"})
		return
	}

	var body absenceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.ficheService.SetAbsenceType(actor.CompanyID, id, body.TypeAbsence)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApplyTrajetCode handles POST /jours/trajet-code
// @Summary Batch-apply a trajet code
// @Description Set or clear the commute zone code on a set of days. Clearing is refused for worked days without the personal commute flag.
// @Tags jours
// @Accept json
// @Produce json
// @Param batch body service.ApplyTrajetCodeRequest true "Target day ids and code (null code clears)"
// @Success 200 {object} map[string]interface{} "Updated count"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "A target day was not found"
// @Failure 422 {object} ErrorResponse "A worked day would be left without a code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jours/trajet-code [post]
func (h *FicheJourHandler) ApplyTrajetCode(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req service.ApplyTrajetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.ficheService.ApplyTrajetCode(actor.CompanyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// ListWeekJourIDs handles GET /jours/week
// @Summary List the day ids of an employee's chantier week
// @Description Resolve the "all days this week" target set for the trajet batch apply
// @Tags jours
// @Produce json
// @Param employee_id query string true "Employee ID (UUID)"
// @Param chantier_id query string true "Chantier ID (UUID)"
// @Param week query string true "Week identifier (e.g. 2025-S14)"
// @Success 200 {object} map[string]interface{} "Day ids"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jours/week [get]
func (h *FicheJourHandler) ListWeekJourIDs(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
		return
	}
	chantierID, err := uuid.Parse(c.Query("chantier_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier_id"})
		return
	}
	week := c.Query("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week query parameter is required"})
		return
	}

	ids, err := h.ficheService.ListWeekJourIDs(actor.CompanyID, employeeID, chantierID, week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jour_ids": ids})
}
