package handlers_test

import (
	"net/http"
	"testing"

	"admin-dashboard-backend/internal/api/handlers"
	"admin-dashboard-backend/internal/models"
	"admin-dashboard-backend/internal/service"
	"admin-dashboard-backend/internal/store"
	"admin-dashboard-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// SelectionHandlerTestSuite defines the test suite for SelectionHandler
type SelectionHandlerTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
	store     *store.DirectoryStore
}

// SetupTest sets up the test suite
func (suite *SelectionHandlerTestSuite) SetupTest() {
	accounts := testutils.NewAccountFactory()
	users := testutils.NewUserFactory()

	acme := accounts.WithName("acc_1", "Acme")

	suite.store = store.NewDirectoryStore()
	suite.store.Load(
		[]models.Account{acme},
		[]models.User{users.Create("user_1", acme)},
	)

	directoryService := service.NewDirectoryService(suite.store, validator.New())
	handler := handlers.NewSelectionHandler(directoryService)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/selection", handler.GetSelection)
	v1.PUT("/selection", handler.Select)
	v1.DELETE("/selection", handler.ClearSelection)
}

// TestGetSelectionInitiallyNone tests GET /api/v1/selection on a fresh store
func (suite *SelectionHandlerTestSuite) TestGetSelectionInitiallyNone() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/selection", nil)

	var response store.Selection
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), store.SelectionNone, response.Kind)
}

// TestSelectUser tests PUT /api/v1/selection with kind user
func (suite *SelectionHandlerTestSuite) TestSelectUser() {
	body := handlers.SelectRequest{Kind: store.SelectionUser, ID: "user_1"}

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", body)

	var response store.Selection
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), store.SelectionUser, response.Kind)
	assert.Equal(suite.T(), "user_1", response.UserID)
	assert.Empty(suite.T(), response.AccountID)
}

// TestSelectAccountReplacesUser tests that selecting an account clears a user focus
func (suite *SelectionHandlerTestSuite) TestSelectAccountReplacesUser() {
	suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", handlers.SelectRequest{Kind: store.SelectionUser, ID: "user_1"})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", handlers.SelectRequest{Kind: store.SelectionAccount, ID: "acc_1"})

	var response store.Selection
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), store.SelectionAccount, response.Kind)
	assert.Equal(suite.T(), "acc_1", response.AccountID)
	assert.Empty(suite.T(), response.UserID)
}

// TestSelectNotFound tests PUT /api/v1/selection with unknown ids
func (suite *SelectionHandlerTestSuite) TestSelectNotFound() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", handlers.SelectRequest{Kind: store.SelectionUser, ID: "user_99"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", handlers.SelectRequest{Kind: store.SelectionAccount, ID: "acc_99"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")

	// a failed select leaves the selection untouched
	assert.Equal(suite.T(), store.SelectionNone, suite.store.Selection().Kind)
}

// TestSelectInvalidKind tests PUT /api/v1/selection with an unknown kind
func (suite *SelectionHandlerTestSuite) TestSelectInvalidKind() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", map[string]string{"kind": "widget", "id": "user_1"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "kind must be")
}

// TestSelectMissingFields tests PUT /api/v1/selection with an incomplete body
func (suite *SelectionHandlerTestSuite) TestSelectMissingFields() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", map[string]string{"kind": "user"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestClearSelection tests DELETE /api/v1/selection
func (suite *SelectionHandlerTestSuite) TestClearSelection() {
	suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/selection", handlers.SelectRequest{Kind: store.SelectionUser, ID: "user_1"})

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/selection", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), store.SelectionNone, suite.store.Selection().Kind)
}

func TestSelectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionHandlerTestSuite))
}
