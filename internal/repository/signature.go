package repository

import (
	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SignatureRepository handles database operations for signatures
type SignatureRepository struct {
	db *gorm.DB
}

// NewSignatureRepository creates a new signature repository
func NewSignatureRepository(db *gorm.DB) *SignatureRepository {
	return &SignatureRepository{db: db}
}

// Replace upserts a signature: the previous (fiche, signer, role) row is
// deleted before the new one is inserted, both inside one transaction.
func (r *SignatureRepository) Replace(signature *models.Signature) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&models.Signature{},
			"fiche_id = ? AND signer_id = ? AND role = ?",
			signature.FicheID, signature.SignerID, signature.Role).Error
		if err != nil {
			return err
		}
		return tx.Create(signature).Error
	})
}

// GetByFicheID retrieves all signatures of a fiche
func (r *SignatureRepository) GetByFicheID(ficheID uuid.UUID) ([]models.Signature, error) {
	var signatures []models.Signature
	err := r.db.Where("fiche_id = ?", ficheID).Order("signed_at").Find(&signatures).Error
	if err != nil {
		return nil, err
	}
	return signatures, nil
}

// CountByFicheID counts the signatures of a fiche
func (r *SignatureRepository) CountByFicheID(ficheID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Signature{}).Where("fiche_id = ?", ficheID).Count(&count).Error
	return count, err
}

// DeleteByFicheID deletes all signatures of a fiche
func (r *SignatureRepository) DeleteByFicheID(ficheID uuid.UUID) error {
	return r.db.Delete(&models.Signature{}, "fiche_id = ?", ficheID).Error
}

// Delete deletes one signature
func (r *SignatureRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Signature{}, "id = ?", id).Error
}
