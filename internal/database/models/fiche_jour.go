package models

import (
	"time"

	"github.com/google/uuid"
)

// Numeric bounds for a fiche day, checked client-side before any write.
const (
	MaxDailyHours  = 24.0
	MaxTrajetCount = 10
)

// FicheJour is one calendar day's entry within a Fiche. Five rows
// (Monday through Friday) are seeded when the fiche is created.
type FicheJour struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FicheID   uuid.UUID `json:"fiche_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_fiches_jours_fiche_date" validate:"required"`
	Date      time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_fiches_jours_fiche_date" validate:"required"`

	HeuresNormales    float64 `json:"heures_normales" gorm:"not null;default:0" validate:"min=0,max=24"`
	HeuresIntemperies float64 `json:"heures_intemperies" gorm:"not null;default:0" validate:"min=0,max=24"`
	NbTrajets         int     `json:"nb_trajets" gorm:"not null;default:0" validate:"min=0,max=10"`
	Panier            bool    `json:"panier" gorm:"default:false"` // meal allowance
	TrajetCode        *TrajetCode  `json:"trajet_code" gorm:"type:varchar(15)"`
	TrajetPersonnel   bool         `json:"trajet_personnel" gorm:"default:false"`
	TypeAbsence       *AbsenceType `json:"type_absence" gorm:"type:varchar(10)"`

	// Chantier snapshot denormalized at creation time; the fiche's chantier
	// may be renamed or the fiche reassigned later.
	ChantierCode string `json:"chantier_code" gorm:"size:20"`
	ChantierCity string `json:"chantier_city" gorm:"size:100"`

	Regularisation  string `json:"regularisation" gorm:"type:text"`
	ElementsDivers  string `json:"elements_divers" gorm:"type:text"`

	// Relationships
	Fiche Fiche `json:"fiche,omitempty" gorm:"foreignKey:FicheID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FicheJour
func (FicheJour) TableName() string {
	return "fiches_jours"
}

// IsAbsent reports whether the day is an absence. Absence is derived, never
// stored: a day is absent when it carries no normal and no inclement hours.
func (j *FicheJour) IsAbsent() bool {
	return j.HeuresNormales == 0 && j.HeuresIntemperies == 0
}

// IsWorked reports whether the day carries normal hours. Absence
// propagation never crosses a worked day.
func (j *FicheJour) IsWorked() bool {
	return j.HeuresNormales > 0
}
