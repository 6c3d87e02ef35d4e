//go:build integration
// +build integration

package service

import (
	"testing"
	"time"

	"pointage-backend/internal/database/models"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CrewServiceIntegrationTestSuite tests crew dissolution and roll-forward
// against a real database
type CrewServiceIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	crewService     *CrewService
	ficheService    *FicheService
	ficheRepo       *repository.FicheRepository
	affectationRepo *repository.AffectationRepository

	company    *models.Company
	chantier   *models.Chantier
	conducteur *models.Employee
	actor      Actor
}

// SetupSuite runs before all tests in the suite
func (suite *CrewServiceIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	v := validator.New()
	suite.ficheRepo = repository.NewFicheRepository(db)
	suite.affectationRepo = repository.NewAffectationRepository(db)
	jourRepo := repository.NewFicheJourRepository(db)
	signatureRepo := repository.NewSignatureRepository(db)
	closedPeriodRepo := repository.NewClosedPeriodRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	chantierRepo := repository.NewChantierRepository(db)

	suite.ficheService = NewFicheService(
		suite.ficheRepo, jourRepo, signatureRepo, closedPeriodRepo,
		employeeRepo, chantierRepo, v, standardWeekHours)
	suite.crewService = NewCrewService(
		suite.affectationRepo, suite.ficheRepo, jourRepo, signatureRepo,
		employeeRepo, chantierRepo, suite.ficheService, v)
}

// TearDownSuite runs after all tests in the suite
func (suite *CrewServiceIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CrewServiceIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.company).Error)

	suite.chantier = suite.factories.Chantier.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.chantier).Error)

	suite.conducteur = suite.factories.Employee.WithRole(suite.company.ID, models.RoleConducteur)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.conducteur).Error)

	suite.actor = Actor{
		EmployeeID: suite.conducteur.ID,
		CompanyID:  suite.company.ID,
		Role:       models.RoleConducteur,
	}
}

// TearDownTest runs after each test
func (suite *CrewServiceIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CrewServiceIntegrationTestSuite) newWorker() *models.Employee {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(employee).Error)
	return employee
}

func (suite *CrewServiceIntegrationTestSuite) assignToChantier(employeeID uuid.UUID) *models.Affectation {
	affectation := &models.Affectation{
		CompanyID:  suite.company.ID,
		EmployeeID: employeeID,
		ChantierID: suite.chantier.ID,
		DateDebut:  time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	suite.NoError(suite.affectationRepo.Create(affectation))
	return affectation
}

func (suite *CrewServiceIntegrationTestSuite) createFiche(employeeID uuid.UUID, weekStr string, status models.FicheStatus) *FicheResponse {
	fiche, err := suite.ficheService.Create(&CreateFicheRequest{
		CompanyID:  suite.company.ID,
		EmployeeID: employeeID,
		ChantierID: suite.chantier.ID,
		Week:       weekStr,
	})
	suite.NoError(err)
	if status != models.StatusBrouillon {
		suite.NoError(suite.ficheRepo.UpdateStatus(fiche.ID, status))
	}
	return fiche
}

// TestDissolveSelectivity tests that dissolution removes only early-status
// fiches and leaves the lead's assignment open
func (suite *CrewServiceIntegrationTestSuite) TestDissolveSelectivity() {
	lead := suite.newWorker()
	memberA := suite.newWorker()
	memberB := suite.newWorker()
	leadAffectation := suite.assignToChantier(lead.ID)
	suite.assignToChantier(memberA.ID)
	suite.assignToChantier(memberB.ID)

	draft := suite.createFiche(memberA.ID, "2025-S14", models.StatusBrouillon)
	validated := suite.createFiche(memberB.ID, "2025-S14", models.StatusValideConducteur)

	result, err := suite.crewService.Dissolve(suite.actor, suite.chantier.ID, "2025-S14", lead.ID)

	suite.NoError(err)
	suite.Equal(2, result.MembersReleased)
	suite.Equal(1, result.FichesDeleted)

	// the draft is gone, days and all
	_, err = suite.ficheRepo.GetByID(draft.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	jourRepo := repository.NewFicheJourRepository(suite.baseTestSuite.DB)
	count, err := jourRepo.CountByFicheID(draft.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	// the conducteur-validated fiche survives untouched
	survivor, err := suite.ficheRepo.GetByID(validated.ID)
	suite.NoError(err)
	suite.Equal(models.StatusValideConducteur, survivor.Status)

	// lead stays on the chantier, the others are released
	kept, err := suite.affectationRepo.GetByID(leadAffectation.ID)
	suite.NoError(err)
	suite.Nil(kept.DateFin)
	crew, err := suite.affectationRepo.GetActiveByChantier(suite.company.ID, suite.chantier.ID, nil)
	suite.NoError(err)
	suite.Len(crew, 1)
	suite.Equal(lead.ID, crew[0].EmployeeID)
}

// TestDissolveRemovesChefValidatedFiches tests that VALIDE_CHEF is still
// dissolvable
func (suite *CrewServiceIntegrationTestSuite) TestDissolveRemovesChefValidatedFiches() {
	lead := suite.newWorker()
	member := suite.newWorker()
	suite.assignToChantier(lead.ID)
	suite.assignToChantier(member.ID)
	fiche := suite.createFiche(member.ID, "2025-S14", models.StatusValideChef)

	result, err := suite.crewService.Dissolve(suite.actor, suite.chantier.ID, "2025-S14", lead.ID)

	suite.NoError(err)
	suite.Equal(1, result.FichesDeleted)
	_, err = suite.ficheRepo.GetByID(fiche.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestRollForwardIdempotent tests that re-running a roll-forward creates
// nothing new
func (suite *CrewServiceIntegrationTestSuite) TestRollForwardIdempotent() {
	memberA := suite.newWorker()
	memberB := suite.newWorker()
	suite.createFiche(memberA.ID, "2025-S14", models.StatusBrouillon)
	suite.createFiche(memberB.ID, "2025-S14", models.StatusBrouillon)

	first, err := suite.crewService.RollForward(suite.actor, "2025-S15")
	suite.NoError(err)
	suite.Equal(2, first.FichesCreated)

	second, err := suite.crewService.RollForward(suite.actor, "2025-S15")
	suite.NoError(err)
	suite.Equal(0, second.FichesCreated)

	fiches, err := suite.ficheRepo.GetByWeek(suite.company.ID, "2025-S15")
	suite.NoError(err)
	suite.Len(fiches, 2)
}

// TestRollForwardSkipsExistingFiche tests that an employee already planned
// on the target week is left alone
func (suite *CrewServiceIntegrationTestSuite) TestRollForwardSkipsExistingFiche() {
	member := suite.newWorker()
	suite.createFiche(member.ID, "2025-S14", models.StatusBrouillon)
	existing := suite.createFiche(member.ID, "2025-S15", models.StatusBrouillon)

	result, err := suite.crewService.RollForward(suite.actor, "2025-S15")

	suite.NoError(err)
	suite.Equal(0, result.FichesCreated)
	fiches, err := suite.ficheRepo.GetByWeek(suite.company.ID, "2025-S15")
	suite.NoError(err)
	suite.Len(fiches, 1)
	suite.Equal(existing.ID, fiches[0].ID)
}

// TestRollForwardEmptyPreviousWeek tests the no-op on an empty source week
func (suite *CrewServiceIntegrationTestSuite) TestRollForwardEmptyPreviousWeek() {
	result, err := suite.crewService.RollForward(suite.actor, "2025-S40")

	suite.NoError(err)
	suite.Equal(0, result.FichesCreated)
}

// TestAutoValidateEscalatesOnlyChefValidated tests that the batch
// escalation touches nothing but VALIDE_CHEF fiches and reports only them
func (suite *CrewServiceIntegrationTestSuite) TestAutoValidateEscalatesOnlyChefValidated() {
	memberA := suite.newWorker()
	memberB := suite.newWorker()
	memberC := suite.newWorker()
	ready := suite.createFiche(memberA.ID, "2025-S14", models.StatusValideChef)
	draft := suite.createFiche(memberB.ID, "2025-S14", models.StatusBrouillon)
	suite.createFiche(memberC.ID, "2025-S14", models.StatusValideChef)

	escalated, err := suite.ficheService.AutoValidate(suite.actor, suite.chantier.ID, "2025-S14")

	suite.NoError(err)
	suite.Equal(2, escalated)

	got, err := suite.ficheRepo.GetByID(ready.ID)
	suite.NoError(err)
	suite.Equal(models.StatusAutoValide, got.Status)
	got, err = suite.ficheRepo.GetByID(draft.ID)
	suite.NoError(err)
	suite.Equal(models.StatusBrouillon, got.Status)
}

// TestCrewServiceIntegrationTestSuite runs the test suite
func TestCrewServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CrewServiceIntegrationTestSuite))
}
