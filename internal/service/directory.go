package service

import (
	"time"

	apperrors "admin-dashboard-backend/internal/errors"
	"admin-dashboard-backend/internal/logger"
	"admin-dashboard-backend/internal/models"
	"admin-dashboard-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// DirectoryService handles business logic for the account/user directory
type DirectoryService struct {
	store       *store.DirectoryStore
	synthesizer *Synthesizer
	validator   *validator.Validate
	log         *logger.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(directory *store.DirectoryStore, validator *validator.Validate) *DirectoryService {
	return &DirectoryService{
		store:       directory,
		synthesizer: NewSynthesizer(validator),
		validator:   validator,
		log:         logger.New().WithField("service", "directory"),
	}
}

// CreateAccountWithAdminRequest is the new-account form payload: partial
// account input plus its initial admin user
type CreateAccountWithAdminRequest struct {
	Account CreateAccountRequest `json:"account"`
	Admin   CreateAdminRequest   `json:"admin"`
}

// CreateAccountWithAdminResponse returns the created pair
type CreateAccountWithAdminResponse struct {
	Account models.Account `json:"account"`
	Admin   models.User    `json:"admin"`
}

// UserListResponse is the flat user list view
type UserListResponse struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

// GroupedUserListResponse is the account-grouped user list view. Total
// counts groups, not users; each group carries its own user slice.
type GroupedUserListResponse struct {
	Groups []UserGroup `json:"groups"`
	Total  int         `json:"total"`
}

// AccountListResponse is the account list view
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// UsageRatios carries the progress-bar fractions for an account's limits
type UsageRatios struct {
	Users    float64 `json:"users"`
	Storage  float64 `json:"storage"`
	APICalls float64 `json:"api_calls"`
}

// AccountDetailResponse is the account profile view: the account itself,
// its member users and the derived usage ratios
type AccountDetailResponse struct {
	Account     models.Account `json:"account"`
	Users       []models.User  `json:"users"`
	UsageRatios UsageRatios    `json:"usage_ratios"`
}

// ListUsers returns the flat user list, filtered by the search term
func (s *DirectoryService) ListUsers(search string) *UserListResponse {
	users := FilterUsers(s.store.ListUsers(), search)
	return &UserListResponse{Users: users, Total: len(users)}
}

// ListUsersGrouped returns the account-grouped user list, filtered by the
// search term before grouping
func (s *DirectoryService) ListUsersGrouped(search string) *GroupedUserListResponse {
	groups := GroupUsersByAccount(FilterUsers(s.store.ListUsers(), search))
	return &GroupedUserListResponse{Groups: groups, Total: len(groups)}
}

// ListAccounts returns all accounts in insertion order
func (s *DirectoryService) ListAccounts() *AccountListResponse {
	accounts := s.store.ListAccounts()
	return &AccountListResponse{Accounts: accounts, Total: len(accounts)}
}

// GetUser retrieves a user by id
func (s *DirectoryService) GetUser(id string) (*models.User, error) {
	user, ok := s.store.GetUser(id)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// GetAccount retrieves the account profile view by id
func (s *DirectoryService) GetAccount(id string) (*AccountDetailResponse, error) {
	account, ok := s.store.GetAccount(id)
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}

	users := s.store.UsersByAccount(id)
	return &AccountDetailResponse{
		Account: account,
		Users:   users,
		UsageRatios: UsageRatios{
			Users:    UsageRatio(int64(len(users)), account.Limits.Users),
			Storage:  UsageRatio(account.Usage.Storage, account.Limits.Storage),
			APICalls: UsageRatio(account.Usage.APICalls, account.Limits.APICallsPerMonth),
		},
	}, nil
}

// CreateAccountWithAdmin synthesizes and inserts a new account together with
// its initial admin user
func (s *DirectoryService) CreateAccountWithAdmin(req *CreateAccountWithAdminRequest) (*CreateAccountWithAdminResponse, error) {
	account, admin, err := s.synthesizer.Synthesize(&req.Account, &req.Admin, time.Now().UTC(), s.store)
	if err != nil {
		return nil, err
	}

	s.store.InsertAccount(account)
	s.store.InsertUser(admin)

	s.log.WithFields(map[string]interface{}{
		"account_id": account.ID,
		"admin_id":   admin.ID,
	}).Info("account created")

	return &CreateAccountWithAdminResponse{Account: account, Admin: admin}, nil
}

// DeleteUser removes a user. Absent ids are a no-op, never an error.
func (s *DirectoryService) DeleteUser(id string) {
	if s.store.DeleteUser(id) {
		s.log.WithField("user_id", id).Info("user deleted")
	}
}

// DeleteAccount removes an account and cascades to its users. Absent ids
// are a no-op, never an error.
func (s *DirectoryService) DeleteAccount(id string) {
	if s.store.DeleteAccount(id) {
		s.log.WithField("account_id", id).Info("account deleted")
	}
}

// SelectUser focuses a user, clearing any account selection
func (s *DirectoryService) SelectUser(id string) error {
	if !s.store.SelectUser(id) {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SelectAccount focuses an account, clearing any user selection
func (s *DirectoryService) SelectAccount(id string) error {
	if !s.store.SelectAccount(id) {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// ClearSelection clears any focus, the "home" action
func (s *DirectoryService) ClearSelection() {
	s.store.ClearSelection()
}

// CurrentSelection returns the current selection state
func (s *DirectoryService) CurrentSelection() store.Selection {
	return s.store.Selection()
}
