package handlers

import (
	"net/http"

	"pointage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SignatureHandler handles HTTP requests for signature operations
type SignatureHandler struct {
	signatureService service.SignatureServiceInterface
}

// NewSignatureHandler creates a new signature handler
func NewSignatureHandler(signatureService service.SignatureServiceInterface) *SignatureHandler {
	return &SignatureHandler{
		signatureService: signatureService,
	}
}

// Sign handles POST /signatures
// @Summary Sign a fiche
// @Description Record the actor's signature on a fiche, replacing any previous one in the same role. A chef signing a fiche in signature validates it.
// @Tags signatures
// @Accept json
// @Produce json
// @Param signature body service.SignRequest true "Signature data"
// @Success 201 {object} models.Signature "Recorded signature"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Fiche not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /signatures [post]
func (h *SignatureHandler) Sign(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req service.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signature, err := h.signatureService.Sign(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, signature)
}

// SignBatch handles POST /signatures/batch
// @Summary Sign a chantier week
// @Description Sign every fiche of a (chantier, week) batch in one pass
// @Tags signatures
// @Accept json
// @Produce json
// @Param batch body service.SignBatchRequest true "Batch data"
// @Success 200 {object} service.SignBatchResult "Signed count"
// @Failure 400 {object} ErrorResponse "Invalid request body or week"
// @Failure 500 {object} ErrorResponse "Internal server error or partial signing"
// @Security BearerAuth
// @Router /signatures/batch [post]
func (h *SignatureHandler) SignBatch(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req service.SignBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.signatureService.SignBatch(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByFiche handles GET /fiches/:id/signatures
// @Summary List a fiche's signatures
// @Description Get the signatures of a fiche in signing order
// @Tags signatures
// @Produce json
// @Param id path string true "Fiche ID (UUID)"
// @Success 200 {array} models.Signature "Signatures"
// @Failure 400 {object} ErrorResponse "Invalid fiche ID"
// @Failure 404 {object} ErrorResponse "Fiche not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /fiches/{id}/signatures [get]
func (h *SignatureHandler) ListByFiche(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	ficheID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiche ID"})
		return
	}

	signatures, err := h.signatureService.ListByFiche(actor.CompanyID, ficheID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, signatures)
}
