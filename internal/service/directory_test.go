package service_test

import (
	"testing"

	apperrors "admin-dashboard-backend/internal/errors"
	"admin-dashboard-backend/internal/models"
	"admin-dashboard-backend/internal/service"
	"admin-dashboard-backend/internal/store"
	"admin-dashboard-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DirectoryServiceTestSuite defines the test suite for DirectoryService
type DirectoryServiceTestSuite struct {
	suite.Suite
	store   *store.DirectoryStore
	service *service.DirectoryService
}

// SetupTest sets up the test suite
func (suite *DirectoryServiceTestSuite) SetupTest() {
	accounts := testutils.NewAccountFactory()
	users := testutils.NewUserFactory()

	acme := accounts.WithName("acc_1", "Acme")
	acme.Usage = models.AccountUsage{Storage: 50, APICalls: 50000}
	acme.Limits = models.AccountLimits{Users: 10, Storage: 100, APICallsPerMonth: 100000}
	globex := accounts.WithName("acc_2", "Globex")

	suite.store = store.NewDirectoryStore()
	suite.store.Load(
		[]models.Account{acme, globex},
		[]models.User{
			users.WithName("user_1", acme, "Lisa", "Wong"),
			users.WithName("user_2", acme, "Bob", "Stone"),
			users.WithName("user_3", globex, "Carol", "Reyes"),
		},
	)

	suite.service = service.NewDirectoryService(suite.store, validator.New())
}

// TestListUsers tests the flat user list with and without a search term
func (suite *DirectoryServiceTestSuite) TestListUsers() {
	resp := suite.service.ListUsers("")
	assert.Equal(suite.T(), 3, resp.Total)
	assert.Len(suite.T(), resp.Users, 3)

	resp = suite.service.ListUsers("lisa")
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), "user_1", resp.Users[0].ID)
}

// TestListUsersGrouped tests that filtering happens before grouping
func (suite *DirectoryServiceTestSuite) TestListUsersGrouped() {
	resp := suite.service.ListUsersGrouped("")
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Equal(suite.T(), "acc_1", resp.Groups[0].AccountID)
	assert.Len(suite.T(), resp.Groups[0].Users, 2)

	// Only Globex users match, so the Acme group disappears entirely
	resp = suite.service.ListUsersGrouped("carol")
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), "acc_2", resp.Groups[0].AccountID)
}

// TestListAccounts tests the account list view
func (suite *DirectoryServiceTestSuite) TestListAccounts() {
	resp := suite.service.ListAccounts()
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Equal(suite.T(), "Acme", resp.Accounts[0].Name)
}

// TestGetUser tests user retrieval and the not-found error
func (suite *DirectoryServiceTestSuite) TestGetUser() {
	user, err := suite.service.GetUser("user_1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lisa", user.FirstName)

	_, err = suite.service.GetUser("user_99")
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetAccount tests the account profile view with derived usage ratios
func (suite *DirectoryServiceTestSuite) TestGetAccount() {
	resp, err := suite.service.GetAccount("acc_1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme", resp.Account.Name)
	assert.Len(suite.T(), resp.Users, 2)
	assert.InDelta(suite.T(), 0.2, resp.UsageRatios.Users, 1e-9)
	assert.InDelta(suite.T(), 0.5, resp.UsageRatios.Storage, 1e-9)
	assert.InDelta(suite.T(), 0.5, resp.UsageRatios.APICalls, 1e-9)

	_, err = suite.service.GetAccount("acc_99")
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestCreateAccountWithAdmin tests that the synthesized pair lands in the store
func (suite *DirectoryServiceTestSuite) TestCreateAccountWithAdmin() {
	resp, err := suite.service.CreateAccountWithAdmin(&service.CreateAccountWithAdminRequest{
		Account: service.CreateAccountRequest{Name: "Initech", Industry: "Software"},
		Admin:   service.CreateAdminRequest{Email: "bill@initech.example", FirstName: "Bill", LastName: "Lumbergh"},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acc_3", resp.Account.ID)
	assert.Equal(suite.T(), "user_4", resp.Admin.ID)

	stored, err := suite.service.GetAccount(resp.Account.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Initech", stored.Account.Name)
	require.Len(suite.T(), stored.Users, 1)
	assert.Equal(suite.T(), models.UserRoleAdmin, stored.Users[0].Role)
}

// TestCreateAccountWithAdminValidation tests that invalid input changes nothing
func (suite *DirectoryServiceTestSuite) TestCreateAccountWithAdminValidation() {
	_, err := suite.service.CreateAccountWithAdmin(&service.CreateAccountWithAdminRequest{
		Account: service.CreateAccountRequest{Name: "Initech"},
		Admin:   service.CreateAdminRequest{Email: "bill@initech.example", FirstName: "Bill", LastName: "Lumbergh"},
	})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), 2, suite.service.ListAccounts().Total)
	assert.Equal(suite.T(), 3, suite.service.ListUsers("").Total)
}

// TestDeleteAccountCascades tests the cascade through the service layer
func (suite *DirectoryServiceTestSuite) TestDeleteAccountCascades() {
	suite.service.DeleteAccount("acc_1")

	assert.Equal(suite.T(), 1, suite.service.ListAccounts().Total)
	assert.Equal(suite.T(), 1, suite.service.ListUsers("").Total)

	// deleting again is a silent no-op
	suite.service.DeleteAccount("acc_1")
	assert.Equal(suite.T(), 1, suite.service.ListAccounts().Total)
}

// TestSelection tests the selection operations end to end
func (suite *DirectoryServiceTestSuite) TestSelection() {
	require.NoError(suite.T(), suite.service.SelectUser("user_1"))
	sel := suite.service.CurrentSelection()
	assert.Equal(suite.T(), store.SelectionUser, sel.Kind)
	assert.Equal(suite.T(), "user_1", sel.UserID)

	require.NoError(suite.T(), suite.service.SelectAccount("acc_2"))
	sel = suite.service.CurrentSelection()
	assert.Equal(suite.T(), store.SelectionAccount, sel.Kind)
	assert.Empty(suite.T(), sel.UserID)

	suite.service.ClearSelection()
	assert.Equal(suite.T(), store.SelectionNone, suite.service.CurrentSelection().Kind)
}

// TestSelectionNotFound tests focusing ids that do not exist
func (suite *DirectoryServiceTestSuite) TestSelectionNotFound() {
	err := suite.service.SelectUser("user_99")
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))

	err = suite.service.SelectAccount("acc_99")
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
