package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"pointage-backend/internal/api/handlers"
	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/mocks"
	"pointage-backend/internal/service"
	"pointage-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CongeHandlerTestSuite defines the test suite for CongeHandler
type CongeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCongeServiceInterface
	handler     *handlers.CongeHandler
	httpSuite   *testutils.HTTPTestSuite

	actorID   uuid.UUID
	companyID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CongeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCongeServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewCongeHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.actorID = uuid.New()
	suite.companyID = uuid.New()

	// Register routes behind a fake authenticated actor
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(asActor(suite.actorID, suite.companyID, models.RoleOuvrier))
	{
		v1.POST("/conges", suite.handler.Create)
		v1.GET("/conges", suite.handler.ListMine)
		v1.GET("/conges/unread-count", suite.handler.UnreadCount)
		v1.GET("/conges/company", suite.handler.ListByStatus)
		v1.POST("/conges/:id/validate-conducteur", suite.handler.ValidateConducteur)
		v1.POST("/conges/:id/validate-rh", suite.handler.ValidateRH)
		v1.POST("/conges/:id/refuse", suite.handler.Refuse)
		v1.POST("/conges/:id/read", suite.handler.MarkRead)
	}
}

// TearDownTest cleans up after each test
func (suite *CongeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests the Create handler
func (suite *CongeHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"type":       "CP",
			"date_debut": "2025-08-04",
			"date_fin":   "2025-08-08",
			"comment":    "congés d'été",
		}

		expected := &models.DemandeConge{
			EmployeeID: suite.actorID,
			CompanyID:  suite.companyID,
			Type:       models.CongeTypeCP,
			Status:     models.CongeEnAttente,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(actor service.Actor, req *service.CreateCongeRequest) (*models.DemandeConge, error) {
				assert.Equal(t, suite.actorID, actor.EmployeeID)
				assert.Equal(t, "2025-08-04", req.DateDebut)
				return expected, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/conges", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response models.DemandeConge
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.CongeEnAttente, response.Status)
	})

	suite.T().Run("Inverted Range", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"type":       "CP",
			"date_debut": "2025-08-08",
			"date_fin":   "2025-08-04",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("date_fin", "end date precedes start date")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/conges", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestValidateConducteur tests the ValidateConducteur handler
func (suite *CongeHandlerTestSuite) TestValidateConducteur() {
	suite.T().Run("Success", func(t *testing.T) {
		congeID := uuid.New()

		expected := &models.DemandeConge{
			Status:          models.CongeValideeConducteur,
			ReadByRequester: false,
		}

		suite.mockService.EXPECT().
			ValidateByConducteur(gomock.Any(), congeID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/validate-conducteur", congeID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.DemandeConge
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.CongeValideeConducteur, response.Status)
		assert.False(t, response.ReadByRequester)
	})

	suite.T().Run("Not Pending", func(t *testing.T) {
		congeID := uuid.New()

		suite.mockService.EXPECT().
			ValidateByConducteur(gomock.Any(), congeID).
			Return(nil, apperrors.NewInvalidTransitionError(string(models.CongeRefusee), string(models.CongeValideeConducteur))).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/validate-conducteur", congeID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Role Not Allowed", func(t *testing.T) {
		congeID := uuid.New()

		suite.mockService.EXPECT().
			ValidateByConducteur(gomock.Any(), congeID).
			Return(nil, apperrors.ErrActorRoleNotAllowed).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/validate-conducteur", congeID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST",
			"/api/v1/conges/not-a-uuid/validate-conducteur", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestRefuse tests the Refuse handler
func (suite *CongeHandlerTestSuite) TestRefuse() {
	suite.T().Run("Success", func(t *testing.T) {
		congeID := uuid.New()

		requestBody := map[string]interface{}{
			"reason": "effectif insuffisant cette semaine",
		}

		expected := &models.DemandeConge{
			Status:        models.CongeRefusee,
			RefusalReason: "effectif insuffisant cette semaine",
		}

		suite.mockService.EXPECT().
			Refuse(gomock.Any(), congeID, "effectif insuffisant cette semaine").
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/refuse", congeID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.DemandeConge
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.CongeRefusee, response.Status)
	})

	suite.T().Run("Missing Reason", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/refuse", uuid.New()), map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Already Settled", func(t *testing.T) {
		congeID := uuid.New()

		requestBody := map[string]interface{}{
			"reason": "doublon",
		}

		suite.mockService.EXPECT().
			Refuse(gomock.Any(), congeID, "doublon").
			Return(nil, apperrors.NewInvalidTransitionError(string(models.CongeValideeRH), string(models.CongeRefusee))).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/refuse", congeID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestMarkRead tests the MarkRead handler
func (suite *CongeHandlerTestSuite) TestMarkRead() {
	suite.T().Run("Success", func(t *testing.T) {
		congeID := uuid.New()

		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), congeID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/read", congeID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not The Requester", func(t *testing.T) {
		congeID := uuid.New()

		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), congeID).
			Return(apperrors.ErrCompanyMismatch).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/conges/%s/read", congeID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestUnreadCount tests the UnreadCount handler
func (suite *CongeHandlerTestSuite) TestUnreadCount() {
	suite.mockService.EXPECT().
		UnreadCount(gomock.Any()).
		Return(int64(2), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/conges/unread-count", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(2), response["unread"])
}

// TestListByStatus tests the ListByStatus handler
func (suite *CongeHandlerTestSuite) TestListByStatus() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := []models.DemandeConge{
			{Status: models.CongeEnAttente},
		}

		suite.mockService.EXPECT().
			ListByStatus(suite.companyID, models.CongeEnAttente).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/conges/company?status=EN_ATTENTE", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []models.DemandeConge
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Invalid Status", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListByStatus(suite.companyID, models.CongeStatus("NOPE")).
			Return(nil, apperrors.NewValidationError("status", "unknown leave status")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/conges/company?status=NOPE", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestCongeHandlerTestSuite runs the test suite
func TestCongeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CongeHandlerTestSuite))
}
