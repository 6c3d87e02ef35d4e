package service

import (
	"errors"
	"fmt"
	"time"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/week"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignatureService handles fiche signing, one fiche at a time or a whole
// chantier week in one pass.
type SignatureService struct {
	signatureRepo *repository.SignatureRepository
	ficheRepo     *repository.FicheRepository
	ficheService  *FicheService
	validator     *validator.Validate
}

// NewSignatureService creates a new signature service
func NewSignatureService(
	signatureRepo *repository.SignatureRepository,
	ficheRepo *repository.FicheRepository,
	ficheService *FicheService,
	validator *validator.Validate,
) *SignatureService {
	return &SignatureService{
		signatureRepo: signatureRepo,
		ficheRepo:     ficheRepo,
		ficheService:  ficheService,
		validator:     validator,
	}
}

// SignRequest signs one fiche
type SignRequest struct {
	FicheID uuid.UUID            `json:"fiche_id" validate:"required"`
	Role    models.SignatureRole `json:"role" validate:"required"`
	Payload string               `json:"payload" validate:"required"`
}

// Sign records the actor's signature on a fiche. Re-signing replaces the
// previous (fiche, signer, role) signature. When the crew chef signs a
// fiche sitting in EN_SIGNATURE, signing doubles as chef validation and
// the fiche moves to VALIDE_CHEF.
func (s *SignatureService) Sign(actor Actor, req *SignRequest) (*models.Signature, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	fiche, err := s.ficheRepo.GetByID(req.FicheID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFicheNotFound
		}
		return nil, fmt.Errorf("failed to get fiche: %w", err)
	}
	if fiche.CompanyID != actor.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	signature := &models.Signature{
		CompanyID: actor.CompanyID,
		FicheID:   fiche.ID,
		SignerID:  actor.EmployeeID,
		Role:      req.Role,
		Payload:   req.Payload,
		SignedAt:  time.Now(),
	}
	if err := s.signatureRepo.Replace(signature); err != nil {
		return nil, fmt.Errorf("failed to record signature: %w", err)
	}

	if req.Role == models.SignatureRoleChef && fiche.Status == models.StatusEnSignature {
		if _, err := s.ficheService.Transition(actor, fiche.ID, models.StatusValideChef); err != nil {
			return nil, fmt.Errorf("signature recorded but validation failed: %w", err)
		}
	}
	return signature, nil
}

// SignBatchRequest signs every fiche of a chantier's week
type SignBatchRequest struct {
	ChantierID uuid.UUID            `json:"chantier_id" validate:"required"`
	Week       string               `json:"week" validate:"required"`
	Role       models.SignatureRole `json:"role" validate:"required"`
	Payload    string               `json:"payload" validate:"required"`
}

// SignBatchResult reports a batch signing.
type SignBatchResult struct {
	ChantierID uuid.UUID `json:"chantier_id"`
	Week       string    `json:"week"`
	Signed     int       `json:"signed"`
}

// SignBatch resolves the (chantier, week) batch to its member fiches and
// signs each one as Sign does. Mid-run failure is a PartialCascade; the
// per-fiche replace keeps a retry convergent.
func (s *SignatureService) SignBatch(actor Actor, req *SignBatchRequest) (*SignBatchResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	weekID, err := week.Parse(req.Week)
	if err != nil {
		return nil, apperrors.NewValidationError("week", err.Error())
	}

	fiches, err := s.ficheRepo.GetByChantierAndWeek(actor.CompanyID, req.ChantierID, weekID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve batch: %w", err)
	}

	result := &SignBatchResult{ChantierID: req.ChantierID, Week: weekID.String()}
	for _, fiche := range fiches {
		_, err := s.Sign(actor, &SignRequest{
			FicheID: fiche.ID,
			Role:    req.Role,
			Payload: req.Payload,
		})
		if err != nil {
			return result, apperrors.NewPartialCascadeError("batch signing", result.Signed, len(fiches), err)
		}
		result.Signed++
	}
	return result, nil
}

// ListByFiche returns a fiche's signatures in signing order
func (s *SignatureService) ListByFiche(companyID, ficheID uuid.UUID) ([]models.Signature, error) {
	fiche, err := s.ficheRepo.GetByID(ficheID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFicheNotFound
		}
		return nil, fmt.Errorf("failed to get fiche: %w", err)
	}
	if fiche.CompanyID != companyID {
		return nil, apperrors.ErrCompanyMismatch
	}
	return s.signatureRepo.GetByFicheID(ficheID)
}
