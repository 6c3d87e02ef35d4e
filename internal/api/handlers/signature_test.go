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

// SignatureHandlerTestSuite defines the test suite for SignatureHandler
type SignatureHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSignatureServiceInterface
	handler     *handlers.SignatureHandler
	httpSuite   *testutils.HTTPTestSuite

	actorID   uuid.UUID
	companyID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *SignatureHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSignatureServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewSignatureHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.actorID = uuid.New()
	suite.companyID = uuid.New()

	// Register routes behind a fake authenticated actor
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(asActor(suite.actorID, suite.companyID, models.RoleChef))
	{
		v1.POST("/signatures", suite.handler.Sign)
		v1.POST("/signatures/batch", suite.handler.SignBatch)
		v1.GET("/fiches/:id/signatures", suite.handler.ListByFiche)
	}
}

// TearDownTest cleans up after each test
func (suite *SignatureHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSign tests the Sign handler
func (suite *SignatureHandlerTestSuite) TestSign() {
	suite.T().Run("Success", func(t *testing.T) {
		ficheID := uuid.New()

		requestBody := map[string]interface{}{
			"fiche_id": ficheID.String(),
			"role":     "CHEF",
			"payload":  "data:image/png;base64,iVBORw0KGgo=",
		}

		expected := &models.Signature{
			FicheID:  ficheID,
			SignerID: suite.actorID,
			Role:     models.SignatureRoleChef,
		}

		suite.mockService.EXPECT().
			Sign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(actor service.Actor, req *service.SignRequest) (*models.Signature, error) {
				assert.Equal(t, suite.actorID, actor.EmployeeID)
				assert.Equal(t, ficheID, req.FicheID)
				return expected, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/signatures", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response models.Signature
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.SignatureRoleChef, response.Role)
	})

	suite.T().Run("Fiche Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"fiche_id": uuid.New().String(),
			"role":     "CHEF",
			"payload":  "x",
		}

		suite.mockService.EXPECT().
			Sign(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrFicheNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/signatures", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestSignBatch tests the SignBatch handler
func (suite *SignatureHandlerTestSuite) TestSignBatch() {
	suite.T().Run("Success", func(t *testing.T) {
		chantierID := uuid.New()

		requestBody := map[string]interface{}{
			"chantier_id": chantierID.String(),
			"week":        "2025-S14",
			"role":        "CHEF",
			"payload":     "x",
		}

		expected := &service.SignBatchResult{
			ChantierID: chantierID,
			Week:       "2025-S14",
			Signed:     4,
		}

		suite.mockService.EXPECT().
			SignBatch(gomock.Any(), gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/signatures/batch", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.SignBatchResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 4, response.Signed)
	})

	suite.T().Run("Partial Failure Reports Progress", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"chantier_id": uuid.New().String(),
			"week":        "2025-S14",
			"role":        "CHEF",
			"payload":     "x",
		}

		suite.mockService.EXPECT().
			SignBatch(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewPartialCascadeError("batch signing", 2, 5, fmt.Errorf("connection reset"))).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/signatures/batch", requestBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, float64(2), response["completed"])
		assert.Equal(t, float64(5), response["attempted"])
		assert.Equal(t, true, response["retriable"])
	})
}

// TestListByFiche tests the ListByFiche handler
func (suite *SignatureHandlerTestSuite) TestListByFiche() {
	suite.T().Run("Success", func(t *testing.T) {
		ficheID := uuid.New()

		expected := []models.Signature{
			{FicheID: ficheID, Role: models.SignatureRoleSalarie},
			{FicheID: ficheID, Role: models.SignatureRoleChef},
		}

		suite.mockService.EXPECT().
			ListByFiche(suite.companyID, ficheID).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/api/v1/fiches/%s/signatures", ficheID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []models.Signature
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/fiches/nope/signatures", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestSignatureHandlerTestSuite runs the test suite
func TestSignatureHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SignatureHandlerTestSuite))
}
