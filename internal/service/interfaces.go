package service

import (
	"pointage-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FicheServiceInterface defines the interface for fiche service
type FicheServiceInterface interface {
	Create(req *CreateFicheRequest) (*FicheResponse, error)
	GetByID(companyID, id uuid.UUID) (*FicheResponse, error)
	GetByChantierAndWeek(companyID, chantierID uuid.UUID, week string) ([]FicheResponse, error)
	RemoveEmployee(companyID, ficheID uuid.UUID) error
	RemoveJour(companyID, jourID uuid.UUID) error
	UpdateJour(companyID, jourID uuid.UUID, req *UpdateJourRequest) (*FicheJourResponse, error)
	CheckModifiable(companyID, employeeID uuid.UUID, week string, chantierID *uuid.UUID) (*ModifiableResult, error)
	Transition(actor Actor, ficheID uuid.UUID, target models.FicheStatus) (*TransitionResult, error)
	AutoValidate(actor Actor, chantierID uuid.UUID, week string) (int, error)
	SetAbsenceType(companyID, jourID uuid.UUID, code *models.AbsenceType) (*AbsenceResult, error)
	ApplyTrajetCode(companyID uuid.UUID, req *ApplyTrajetCodeRequest) (int, error)
	ListWeekJourIDs(companyID, employeeID, chantierID uuid.UUID, week string) ([]uuid.UUID, error)
}

// CrewServiceInterface defines the interface for crew service
type CrewServiceInterface interface {
	Assign(req *AssignRequest) (*models.Affectation, error)
	Dissolve(actor Actor, chantierID uuid.UUID, week string, leadEmployeeID uuid.UUID) (*DissolveResult, error)
	RollForward(actor Actor, week string) (*RollForwardResult, error)
	ListCrew(companyID, chantierID uuid.UUID) ([]models.Affectation, error)
	ListAssignments(companyID, employeeID uuid.UUID) ([]models.Affectation, error)
}

// TransportServiceInterface defines the interface for transport service
type TransportServiceInterface interface {
	AssignJour(req *AssignJourRequest) (*models.TransportJour, error)
	UnassignJour(companyID, ficheJourID uuid.UUID) error
	ListByChantierAndDate(companyID, chantierID uuid.UUID, date string) ([]models.TransportJour, error)
	PurgeWeek(actor Actor, week string) (*PurgeWeekResult, error)
	CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error)
	ListVehicles(companyID uuid.UUID) ([]models.Vehicle, error)
}

// SignatureServiceInterface defines the interface for signature service
type SignatureServiceInterface interface {
	Sign(actor Actor, req *SignRequest) (*models.Signature, error)
	SignBatch(actor Actor, req *SignBatchRequest) (*SignBatchResult, error)
	ListByFiche(companyID, ficheID uuid.UUID) ([]models.Signature, error)
}

// CongeServiceInterface defines the interface for leave request service
type CongeServiceInterface interface {
	Create(actor Actor, req *CreateCongeRequest) (*models.DemandeConge, error)
	ValidateByConducteur(actor Actor, id uuid.UUID) (*models.DemandeConge, error)
	ValidateByRH(actor Actor, id uuid.UUID) (*models.DemandeConge, error)
	Refuse(actor Actor, id uuid.UUID, reason string) (*models.DemandeConge, error)
	MarkRead(actor Actor, id uuid.UUID) error
	UnreadCount(actor Actor) (int64, error)
	ListByEmployee(companyID, employeeID uuid.UUID) ([]models.DemandeConge, error)
	ListByStatus(companyID uuid.UUID, status models.CongeStatus) ([]models.DemandeConge, error)
}
