//go:build integration
// +build integration

package service

import (
	"testing"

	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/repository"
	"pointage-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TrajetIntegrationTestSuite tests the trajet-code batch apply against a
// real database
type TrajetIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	ficheService *FicheService
	jourRepo     *repository.FicheJourRepository

	company  *models.Company
	chantier *models.Chantier
	employee *models.Employee
}

// SetupSuite runs before all tests in the suite
func (suite *TrajetIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.jourRepo = repository.NewFicheJourRepository(db)
	suite.ficheService = NewFicheService(
		repository.NewFicheRepository(db), suite.jourRepo,
		repository.NewSignatureRepository(db), repository.NewClosedPeriodRepository(db),
		repository.NewEmployeeRepository(db), repository.NewChantierRepository(db),
		validator.New(), standardWeekHours)
}

// TearDownSuite runs after all tests in the suite
func (suite *TrajetIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrajetIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.company).Error)

	suite.chantier = suite.factories.Chantier.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.chantier).Error)

	suite.employee = suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.employee).Error)
}

// TearDownTest runs after each test
func (suite *TrajetIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedWeek creates a default fiche and returns its day rows in date order
func (suite *TrajetIntegrationTestSuite) seedWeek(weekStr string) []models.FicheJour {
	fiche, err := suite.ficheService.Create(&CreateFicheRequest{
		CompanyID:  suite.company.ID,
		EmployeeID: suite.employee.ID,
		ChantierID: suite.chantier.ID,
		Week:       weekStr,
	})
	suite.NoError(err)
	jours, err := suite.jourRepo.GetByFicheID(fiche.ID)
	suite.NoError(err)
	suite.Require().Len(jours, 5)
	return jours
}

func jourIDs(jours []models.FicheJour) []uuid.UUID {
	ids := make([]uuid.UUID, len(jours))
	for i := range jours {
		ids[i] = jours[i].ID
	}
	return ids
}

// TestApplyCodeToWholeWeek tests the bulk zone update
func (suite *TrajetIntegrationTestSuite) TestApplyCodeToWholeWeek() {
	jours := suite.seedWeek("2025-S14")

	code := models.TrajetZone3
	updated, err := suite.ficheService.ApplyTrajetCode(suite.company.ID, &ApplyTrajetCodeRequest{
		JourIDs: jourIDs(jours),
		Code:    &code,
	})

	suite.NoError(err)
	suite.Equal(5, updated)
	for _, jour := range jours {
		got, err := suite.jourRepo.GetByID(jour.ID)
		suite.NoError(err)
		suite.Require().NotNil(got.TrajetCode)
		suite.Equal(models.TrajetZone3, *got.TrajetCode)
	}
}

// TestClearCodeOnWorkedDayRefused tests that a worked day keeps its code
func (suite *TrajetIntegrationTestSuite) TestClearCodeOnWorkedDayRefused() {
	jours := suite.seedWeek("2025-S14")

	_, err := suite.ficheService.ApplyTrajetCode(suite.company.ID, &ApplyTrajetCodeRequest{
		JourIDs: []uuid.UUID{jours[0].ID},
	})

	suite.ErrorIs(err, apperrors.ErrTrajetCodeRequired)

	// nothing was written
	got, err := suite.jourRepo.GetByID(jours[0].ID)
	suite.NoError(err)
	suite.Require().NotNil(got.TrajetCode)
	suite.Equal(models.TrajetACompleter, *got.TrajetCode)
}

// TestClearCodeOnIdleDayAllowed tests that a day without worked hours can
// lose its code
func (suite *TrajetIntegrationTestSuite) TestClearCodeOnIdleDayAllowed() {
	jours := suite.seedWeek("2025-S14")
	idle := jours[4]
	idle.HeuresNormales = 0
	idle.HeuresIntemperies = 0
	suite.NoError(suite.jourRepo.Update(&idle))

	updated, err := suite.ficheService.ApplyTrajetCode(suite.company.ID, &ApplyTrajetCodeRequest{
		JourIDs: []uuid.UUID{idle.ID},
	})

	suite.NoError(err)
	suite.Equal(1, updated)
	got, err := suite.jourRepo.GetByID(idle.ID)
	suite.NoError(err)
	suite.Nil(got.TrajetCode)
}

// TestTrajetIntegrationTestSuite runs the test suite
func TestTrajetIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrajetIntegrationTestSuite))
}
