package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pointage-backend/internal/api/handlers"
	"pointage-backend/internal/auth"
	"pointage-backend/internal/database/models"
	apperrors "pointage-backend/internal/errors"
	"pointage-backend/internal/mocks"
	"pointage-backend/internal/service"
	"pointage-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// asActor injects auth claims the way the auth middleware would, so
// handlers resolve an acting identity without a real token.
func asActor(employeeID, companyID uuid.UUID, role models.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &auth.AuthClaims{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Role:       role,
		}
		c.Set("employee_id", claims.EmployeeID)
		c.Set("company_id", claims.CompanyID)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)
		c.Next()
	}
}

// FicheHandlerTestSuite defines the test suite for FicheHandler
type FicheHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockFicheServiceInterface
	handler     *handlers.FicheHandler
	httpSuite   *testutils.HTTPTestSuite

	actorID   uuid.UUID
	companyID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *FicheHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFicheServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewFicheHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.actorID = uuid.New()
	suite.companyID = uuid.New()

	// Register routes behind a fake authenticated actor
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(asActor(suite.actorID, suite.companyID, models.RoleConducteur))
	{
		v1.POST("/fiches", suite.handler.CreateFiche)
		v1.GET("/fiches/modifiable", suite.handler.CheckModifiable)
		v1.GET("/fiches/:id", suite.handler.GetFiche)
		v1.DELETE("/fiches/:id", suite.handler.RemoveFiche)
		v1.POST("/fiches/:id/transition", suite.handler.Transition)
		v1.GET("/chantiers/:id/fiches", suite.handler.ListByChantierWeek)
		v1.POST("/chantiers/:id/auto-validate", suite.handler.AutoValidate)
	}
}

// TearDownTest cleans up after each test
func (suite *FicheHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *FicheHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreateFiche tests the CreateFiche handler
func (suite *FicheHandlerTestSuite) TestCreateFiche() {
	suite.T().Run("Success", func(t *testing.T) {
		employeeID := uuid.New()
		chantierID := uuid.New()
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"employee_id": employeeID.String(),
			"chantier_id": chantierID.String(),
			"week":        "2025-S14",
		}

		expectedResponse := &service.FicheResponse{
			ID:         ficheID,
			CompanyID:  suite.companyID,
			EmployeeID: employeeID,
			ChantierID: &chantierID,
			Week:       "2025-S14",
			Status:     models.StatusBrouillon,
			TotalHours: 39,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateFicheRequest) (*service.FicheResponse, error) {
				// tenant and creator come from the token, not the body
				assert.Equal(t, suite.companyID, req.CompanyID)
				if assert.NotNil(t, req.CreatedByID) {
					assert.Equal(t, suite.actorID, *req.CreatedByID)
				}
				return expectedResponse, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/fiches", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.FicheResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, models.StatusBrouillon, response.Status)
	})

	suite.T().Run("Duplicate Week", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"employee_id": uuid.New().String(),
			"chantier_id": uuid.New().String(),
			"week":        "2025-S14",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrDuplicateAssignment).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/fiches", requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Employee Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"employee_id": uuid.New().String(),
			"chantier_id": uuid.New().String(),
			"week":        "2025-S14",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrEmployeeNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/fiches", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "employee not found")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/fiches")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetFiche tests the GetFiche handler
func (suite *FicheHandlerTestSuite) TestGetFiche() {
	suite.T().Run("Success", func(t *testing.T) {
		ficheID := uuid.New()

		expectedResponse := &service.FicheResponse{
			ID:        ficheID,
			CompanyID: suite.companyID,
			Week:      "2025-S14",
			Status:    models.StatusEnSignature,
		}

		suite.mockService.EXPECT().
			GetByID(suite.companyID, ficheID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/fiches/%s", ficheID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.FicheResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, ficheID, response.ID)
		assert.Equal(t, models.StatusEnSignature, response.Status)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/fiches/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid fiche ID")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		ficheID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.companyID, ficheID).
			Return(nil, apperrors.ErrFicheNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/fiches/%s", ficheID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestListByChantierWeek tests the ListByChantierWeek handler
func (suite *FicheHandlerTestSuite) TestListByChantierWeek() {
	suite.T().Run("Success", func(t *testing.T) {
		chantierID := uuid.New()

		expected := []service.FicheResponse{
			{ID: uuid.New(), Week: "2025-S14", Status: models.StatusBrouillon},
			{ID: uuid.New(), Week: "2025-S14", Status: models.StatusValideChef},
		}

		suite.mockService.EXPECT().
			GetByChantierAndWeek(suite.companyID, chantierID, "2025-S14").
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/chantiers/%s/fiches?week=2025-S14", chantierID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.FicheResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Missing Week", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/chantiers/%s/fiches", uuid.New()), nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "week query parameter is required")
	})
}

// TestRemoveFiche tests the RemoveFiche handler
func (suite *FicheHandlerTestSuite) TestRemoveFiche() {
	suite.T().Run("Success", func(t *testing.T) {
		ficheID := uuid.New()

		suite.mockService.EXPECT().
			RemoveEmployee(suite.companyID, ficheID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/fiches/%s", ficheID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Signed Fiche Refused", func(t *testing.T) {
		ficheID := uuid.New()

		suite.mockService.EXPECT().
			RemoveEmployee(suite.companyID, ficheID).
			Return(apperrors.ErrFicheHasSignatures).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/fiches/%s", ficheID), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestTransition tests the Transition handler
func (suite *FicheHandlerTestSuite) TestTransition() {
	suite.T().Run("Success", func(t *testing.T) {
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"target": "VALIDE_CONDUCTEUR",
		}

		expected := &service.TransitionResult{
			FicheID:    ficheID,
			FromStatus: models.StatusValideChef,
			ToStatus:   models.StatusValideConducteur,
		}

		suite.mockService.EXPECT().
			Transition(gomock.Any(), ficheID, models.StatusValideConducteur).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/fiches/%s/transition", ficheID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TransitionResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.StatusValideConducteur, response.ToStatus)
	})

	suite.T().Run("Backward Transition Refused", func(t *testing.T) {
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"target": "BROUILLON",
		}

		suite.mockService.EXPECT().
			Transition(gomock.Any(), ficheID, models.StatusBrouillon).
			Return(nil, apperrors.NewInvalidTransitionError(string(models.StatusValideChef), string(models.StatusBrouillon))).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/fiches/%s/transition", ficheID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Period Closed", func(t *testing.T) {
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"target": "ENVOYE_RH",
		}

		suite.mockService.EXPECT().
			Transition(gomock.Any(), ficheID, models.StatusEnvoyeRH).
			Return(nil, apperrors.ErrPeriodClosed).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/fiches/%s/transition", ficheID), requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Role Not Allowed", func(t *testing.T) {
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"target": "ENVOYE_RH",
		}

		suite.mockService.EXPECT().
			Transition(gomock.Any(), ficheID, models.StatusEnvoyeRH).
			Return(nil, apperrors.ErrActorRoleNotAllowed).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/fiches/%s/transition", ficheID), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Unknown Status", func(t *testing.T) {
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"target": "NOT_A_STATUS",
		}

		suite.mockService.EXPECT().
			Transition(gomock.Any(), ficheID, models.FicheStatus("NOT_A_STATUS")).
			Return(nil, apperrors.ErrInvalidStatus).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/fiches/%s/transition", ficheID), requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestAutoValidate tests the AutoValidate handler
func (suite *FicheHandlerTestSuite) TestAutoValidate() {
	suite.T().Run("Success", func(t *testing.T) {
		chantierID := uuid.New()

		suite.mockService.EXPECT().
			AutoValidate(gomock.Any(), chantierID, "2025-S14").
			Return(3, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/chantiers/%s/auto-validate?week=2025-S14", chantierID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, float64(3), response["escalated"])
	})

	suite.T().Run("Missing Week", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST",
			fmt.Sprintf("/api/v1/chantiers/%s/auto-validate", uuid.New()), nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestCheckModifiable tests the CheckModifiable handler
func (suite *FicheHandlerTestSuite) TestCheckModifiable() {
	suite.T().Run("Modifiable", func(t *testing.T) {
		employeeID := uuid.New()

		suite.mockService.EXPECT().
			CheckModifiable(suite.companyID, employeeID, "2025-S14", nil).
			Return(&service.ModifiableResult{IsModifiable: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/fiches/modifiable?employee_id=%s&week=2025-S14", employeeID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ModifiableResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.IsModifiable)
	})

	suite.T().Run("Frozen", func(t *testing.T) {
		employeeID := uuid.New()
		blocking := models.StatusEnvoyeRH

		suite.mockService.EXPECT().
			CheckModifiable(suite.companyID, employeeID, "2025-S14", nil).
			Return(&service.ModifiableResult{
				IsModifiable:   false,
				Reason:         "fiche already sent to payroll",
				BlockingStatus: &blocking,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/fiches/modifiable?employee_id=%s&week=2025-S14", employeeID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ModifiableResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.IsModifiable)
		assert.NotEmpty(t, response.Reason)
	})

	suite.T().Run("Invalid Employee ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET",
			"/api/v1/fiches/modifiable?employee_id=nope&week=2025-S14", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestMissingActor verifies that handlers refuse requests without auth context
func (suite *FicheHandlerTestSuite) TestMissingActor() {
	router := testutils.SetupHTTPTest()
	router.Router.GET("/fiches/:id", suite.handler.GetFiche)

	recorder := router.MakeRequest("GET", fmt.Sprintf("/fiches/%s", uuid.New()), nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestFicheHandlerTestSuite runs the test suite
func TestFicheHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FicheHandlerTestSuite))
}
