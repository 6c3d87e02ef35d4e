package handlers

import (
	"net/http"
	"time"

	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrewHandler handles HTTP requests for crew assignment operations
type CrewHandler struct {
	crewService service.CrewServiceInterface
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(crewService service.CrewServiceInterface) *CrewHandler {
	return &CrewHandler{
		crewService: crewService,
	}
}

type assignBody struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	ChantierID uuid.UUID `json:"chantier_id" binding:"required"`
	DateDebut  string    `json:"date_debut" binding:"required"`
}

// Assign handles POST /affectations
// @Summary Assign an employee to a chantier
// @Description Open a crew assignment. Any previous active assignment is closed the day the new one starts.
// @Tags crew
// @Accept json
// @Produce json
// @Param affectation body assignBody true "Assignment data"
// @Success 201 {object} models.Affectation "Created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Employee or chantier not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /affectations [post]
func (h *CrewHandler) Assign(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var body assignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dateDebut, err := time.Parse("2006-01-02", body.DateDebut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_debut must be a YYYY-MM-DD date"})
		return
	}

	affectation, err := h.crewService.Assign(&service.AssignRequest{
		CompanyID:  actor.CompanyID,
		EmployeeID: body.EmployeeID,
		ChantierID: body.ChantierID,
		DateDebut:  dateDebut,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, affectation)
}

type dissolveBody struct {
	Week           string    `json:"week" binding:"required"`
	LeadEmployeeID uuid.UUID `json:"lead_employee_id" binding:"required"`
}

// Dissolve handles POST /chantiers/:id/dissolve
// @Summary Dissolve a chantier crew
// @Description Release every crew member except the lead: their early-status fiches of the week are deleted and their assignments closed.
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Chantier ID (UUID)"
// @Param dissolve body dissolveBody true "Week and crew lead"
// @Success 200 {object} service.DissolveResult "Released and deleted counts"
// @Failure 400 {object} ErrorResponse "Invalid chantier ID or body"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 500 {object} ErrorResponse "Internal server error or partial dissolution"
// @Security BearerAuth
// @Router /chantiers/{id}/dissolve [post]
func (h *CrewHandler) Dissolve(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	chantierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier ID"})
		return
	}

	var body dissolveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.crewService.Dissolve(actor, chantierID, body.Week, body.LeadEmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type rollForwardBody struct {
	Week string `json:"week" binding:"required"`
}

// RollForward handles POST /fiches/roll-forward
// @Summary Roll the roster forward
// @Description Reseed the target week's fiches from the previous week's (employee, chantier) pairs. Idempotent and additive.
// @Tags crew
// @Accept json
// @Produce json
// @Param rollforward body rollForwardBody true "Target week"
// @Success 200 {object} service.RollForwardResult "Created count"
// @Failure 400 {object} ErrorResponse "Invalid week"
// @Failure 403 {object} ErrorResponse "Actor role not allowed"
// @Failure 500 {object} ErrorResponse "Internal server error or partial roll-forward"
// @Security BearerAuth
// @Router /fiches/roll-forward [post]
func (h *CrewHandler) RollForward(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var body rollForwardBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.crewService.RollForward(actor, body.Week)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCrew handles GET /chantiers/:id/crew
// @Summary List a chantier's active crew
// @Description Get the currently-active assignments of a chantier
// @Tags crew
// @Produce json
// @Param id path string true "Chantier ID (UUID)"
// @Success 200 {array} models.Affectation "Active assignments"
// @Failure 400 {object} ErrorResponse "Invalid chantier ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /chantiers/{id}/crew [get]
func (h *CrewHandler) ListCrew(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	chantierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier ID"})
		return
	}

	crew, err := h.crewService.ListCrew(actor.CompanyID, chantierID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, crew)
}

// ListAssignments handles GET /employees/:id/affectations
// @Summary List an employee's assignments
// @Description Get an employee's assignment history, newest first
// @Tags crew
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {array} models.Affectation "Assignments"
// @Failure 400 {object} ErrorResponse "Invalid employee ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /employees/{id}/affectations [get]
func (h *CrewHandler) ListAssignments(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	affectations, err := h.crewService.ListAssignments(actor.CompanyID, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, affectations)
}
