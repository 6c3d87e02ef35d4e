package handlers

import (
	"net/http"

	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransportHandler handles HTTP requests for transport operations
type TransportHandler struct {
	transportService service.TransportServiceInterface
}

// NewTransportHandler creates a new transport handler
func NewTransportHandler(transportService service.TransportServiceInterface) *TransportHandler {
	return &TransportHandler{
		transportService: transportService,
	}
}

type assignJourBody struct {
	FicheJourID uuid.UUID `json:"fiche_jour_id" binding:"required"`
	VehicleID   uuid.UUID `json:"vehicle_id" binding:"required"`
	DriverID    uuid.UUID `json:"driver_id" binding:"required"`
}

// AssignJour handles POST /transport/jours
// @Summary Assign a vehicle to a fiche day
// @Description Record the vehicle and driver for one day, replacing the day's previous record. A vehicle already used elsewhere the same date is refused.
// @Tags transport
// @Accept json
// @Produce json
// @Param assignment body assignJourBody true "Assignment data"
// @Success 201 {object} models.TransportJour "Recorded transport day"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Day, vehicle or driver not found"
// @Failure 409 {object} ErrorResponse "Vehicle already assigned that date"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transport/jours [post]
func (h *TransportHandler) AssignJour(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var body assignJourBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.transportService.AssignJour(&service.AssignJourRequest{
		CompanyID:   actor.CompanyID,
		FicheJourID: body.FicheJourID,
		VehicleID:   body.VehicleID,
		DriverID:    body.DriverID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UnassignJour handles DELETE /transport/jours/:jourId
// @Summary Remove a day's transport record
// @Description Remove the vehicle assignment of a fiche day. Missing records succeed.
// @Tags transport
// @Produce json
// @Param jourId path string true "Fiche day ID (UUID)"
// @Success 204 "Record removed"
// @Failure 400 {object} ErrorResponse "Invalid fiche day ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transport/jours/{jourId} [delete]
func (h *TransportHandler) UnassignJour(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	jourID, err := uuid.Parse(c.Param("jourId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche day ID"})
		return
	}

	if err := h.transportService.UnassignJour(actor.CompanyID, jourID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByChantierAndDate handles GET /transport/jours
// @Summary List transport records of a chantier day
// @Description Get the vehicle assignments of a chantier on one date
// @Tags transport
// @Produce json
// @Param chantier_id query string true "Chantier ID (UUID)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.TransportJour "Transport records"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transport/jours [get]
func (h *TransportHandler) ListByChantierAndDate(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	chantierID, err := uuid.Parse(c.Query("chantier_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chantier_id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	records, err := h.transportService.ListByChantierAndDate(actor.CompanyID, chantierID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// PurgeWeek handles DELETE /admin/transport/weeks/:week
// @Summary Purge a week's transport records
// @Description Delete every transport record of the company's week. Admin only.
// @Tags transport
// @Produce json
// @Param week path string true "Week identifier (e.g. 2025-S14)"
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Failure 400 {object} ErrorResponse "Invalid week"
// @Failure 403 {object} ErrorResponse "Actor is not an admin"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/transport/weeks/{week} [delete]
func (h *TransportHandler) PurgeWeek(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	result, err := h.transportService.PurgeWeek(actor, c.Param("week"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"week":          result.Week,
		"deleted_count": result.DeletedCount,
	})
}

type createVehicleBody struct {
	Immatriculation string `json:"immatriculation" binding:"required"`
	Label           string `json:"label"`
}

// CreateVehicle handles POST /vehicles
// @Summary Register a vehicle
// @Description Register a company vehicle for crew transport
// @Tags transport
// @Accept json
// @Produce json
// @Param vehicle body createVehicleBody true "Vehicle data"
// @Success 201 {object} models.Vehicle "Created vehicle"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *TransportHandler) CreateVehicle(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var body createVehicleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.transportService.CreateVehicle(&service.CreateVehicleRequest{
		CompanyID:       actor.CompanyID,
		Immatriculation: body.Immatriculation,
		Label:           body.Label,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// ListVehicles handles GET /vehicles
// @Summary List vehicles
// @Description Get the company's vehicles
// @Tags transport
// @Produce json
// @Success 200 {array} models.Vehicle "Vehicles"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /vehicles [get]
func (h *TransportHandler) ListVehicles(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	vehicles, err := h.transportService.ListVehicles(actor.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
