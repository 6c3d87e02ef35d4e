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
	"github.com/stretchr/testify/suite"
)

// TransportServiceIntegrationTestSuite tests vehicle assignment against a
// real database
type TransportServiceIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	transportService *TransportService
	transportRepo    *repository.TransportRepository
	jourRepo         *repository.FicheJourRepository
	ficheService     *FicheService

	company  *models.Company
	chantier *models.Chantier
	driver   *models.Employee
	vehicle  *models.Vehicle
}

// SetupSuite runs before all tests in the suite
func (suite *TransportServiceIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	v := validator.New()
	suite.transportRepo = repository.NewTransportRepository(db)
	suite.jourRepo = repository.NewFicheJourRepository(db)
	ficheRepo := repository.NewFicheRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	suite.ficheService = NewFicheService(
		ficheRepo, suite.jourRepo,
		repository.NewSignatureRepository(db), repository.NewClosedPeriodRepository(db),
		employeeRepo, repository.NewChantierRepository(db), v, standardWeekHours)
	suite.transportService = NewTransportService(
		suite.transportRepo, suite.jourRepo, ficheRepo, employeeRepo, v)
}

// TearDownSuite runs after all tests in the suite
func (suite *TransportServiceIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TransportServiceIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.company).Error)

	suite.chantier = suite.factories.Chantier.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.chantier).Error)

	suite.driver = suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.driver).Error)

	suite.vehicle = suite.factories.Vehicle.Create(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.vehicle).Error)
}

// TearDownTest runs after each test
func (suite *TransportServiceIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedWorkerWeek creates an employee with a default fiche and returns the
// week's day rows in date order
func (suite *TransportServiceIntegrationTestSuite) seedWorkerWeek(weekStr string) []models.FicheJour {
	employee := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(employee).Error)

	fiche, err := suite.ficheService.Create(&CreateFicheRequest{
		CompanyID:  suite.company.ID,
		EmployeeID: employee.ID,
		ChantierID: suite.chantier.ID,
		Week:       weekStr,
	})
	suite.NoError(err)
	jours, err := suite.jourRepo.GetByFicheID(fiche.ID)
	suite.NoError(err)
	suite.Require().Len(jours, 5)
	return jours
}

func (suite *TransportServiceIntegrationTestSuite) assign(jour models.FicheJour) (*models.TransportJour, error) {
	return suite.transportService.AssignJour(&AssignJourRequest{
		CompanyID:   suite.company.ID,
		FicheJourID: jour.ID,
		VehicleID:   suite.vehicle.ID,
		DriverID:    suite.driver.ID,
	})
}

// TestAssignJourDuplicateVehicleSameDate tests that a vehicle cannot serve
// two crews on the same day
func (suite *TransportServiceIntegrationTestSuite) TestAssignJourDuplicateVehicleSameDate() {
	first := suite.seedWorkerWeek("2025-S14")
	second := suite.seedWorkerWeek("2025-S14")

	record, err := suite.assign(first[0])
	suite.NoError(err)
	suite.Equal(suite.vehicle.ID, record.VehicleID)

	// same vehicle, same Monday, another crew's day
	_, err = suite.assign(second[0])
	suite.ErrorIs(err, apperrors.ErrDuplicateVehicleAssignment)

	// another date of the same week is fine
	_, err = suite.assign(second[1])
	suite.NoError(err)
}

// TestAssignJourReplacesOwnRecord tests that re-assigning the same day is a
// replace, not a conflict
func (suite *TransportServiceIntegrationTestSuite) TestAssignJourReplacesOwnRecord() {
	jours := suite.seedWorkerWeek("2025-S14")

	_, err := suite.assign(jours[0])
	suite.NoError(err)

	otherDriver := suite.factories.Employee.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherDriver).Error)

	record, err := suite.transportService.AssignJour(&AssignJourRequest{
		CompanyID:   suite.company.ID,
		FicheJourID: jours[0].ID,
		VehicleID:   suite.vehicle.ID,
		DriverID:    otherDriver.ID,
	})

	suite.NoError(err)
	suite.Equal(otherDriver.ID, record.DriverID)

	existing, err := suite.transportRepo.GetJoursByVehicleAndDate(suite.company.ID, suite.vehicle.ID, jours[0].Date)
	suite.NoError(err)
	suite.Len(existing, 1)
	suite.Equal(otherDriver.ID, existing[0].DriverID)
}

// TestUnassignJourIdempotent tests that unassigning twice is not an error
func (suite *TransportServiceIntegrationTestSuite) TestUnassignJourIdempotent() {
	jours := suite.seedWorkerWeek("2025-S14")
	_, err := suite.assign(jours[0])
	suite.NoError(err)

	suite.NoError(suite.transportService.UnassignJour(suite.company.ID, jours[0].ID))
	suite.NoError(suite.transportService.UnassignJour(suite.company.ID, jours[0].ID))

	existing, err := suite.transportRepo.GetJoursByVehicleAndDate(suite.company.ID, suite.vehicle.ID, jours[0].Date)
	suite.NoError(err)
	suite.Empty(existing)
}

// TestTransportServiceIntegrationTestSuite runs the test suite
func TestTransportServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TransportServiceIntegrationTestSuite))
}
