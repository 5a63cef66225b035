package handlers_test

import (
	"net/http"
	"testing"

	"admin-dashboard-backend/internal/api/handlers"
	"admin-dashboard-backend/internal/store"
	"admin-dashboard-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// HealthHandlerTestSuite defines the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
	store     *store.DirectoryStore
}

// SetupTest sets up the test suite
func (suite *HealthHandlerTestSuite) SetupTest() {
	suite.store = store.NewDirectoryStore()
	handler := handlers.NewHealthHandler(suite.store)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

// TestHealth tests GET /health
func (suite *HealthHandlerTestSuite) TestHealth() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "healthy", response.Status)
	assert.Equal(suite.T(), "healthy", response.Services["directory"])
	assert.NotZero(suite.T(), response.Timestamp)
}

// TestReadyEmptyStore tests that an unseeded store still reports ready
func (suite *HealthHandlerTestSuite) TestReadyEmptyStore() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), true, response["ready"])
	assert.Equal(suite.T(), float64(0), response["accounts"])
	assert.Equal(suite.T(), float64(0), response["users"])
}

// TestReadySeededStore tests that the readiness payload reports counts
func (suite *HealthHandlerTestSuite) TestReadySeededStore() {
	require.NoError(suite.T(), suite.store.LoadSampleData())

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), true, response["ready"])
	assert.Equal(suite.T(), float64(5), response["accounts"])
	assert.Equal(suite.T(), float64(10), response["users"])
}

// TestLive tests GET /health/live
func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), true, response["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
