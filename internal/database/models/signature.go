package models

import (
	"time"

	"github.com/google/uuid"
)

// Signature attests that a signer approved a fiche in a given role.
// At most one per (fiche, signer, role); a new signature replaces the
// previous one.
type Signature struct {
	BaseModel
	CompanyID uuid.UUID     `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FicheID   uuid.UUID     `json:"fiche_id" gorm:"type:uuid;not null;index" validate:"required"`
	SignerID  uuid.UUID     `json:"signer_id" gorm:"type:uuid;not null;index" validate:"required"`
	Role      SignatureRole `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Payload   string        `json:"payload" gorm:"type:text"` // signature image, base64
	SignedAt  time.Time     `json:"signed_at" gorm:"not null"`

	// Relationships
	Fiche  Fiche    `json:"fiche,omitempty" gorm:"foreignKey:FicheID;constraint:OnDelete:CASCADE"`
	Signer Employee `json:"signer,omitempty" gorm:"foreignKey:SignerID"`
}

// TableName returns the table name for Signature
func (Signature) TableName() string {
	return "signatures"
}
