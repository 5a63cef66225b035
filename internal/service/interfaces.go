package service

import (
	"admin-dashboard-backend/internal/models"
	"admin-dashboard-backend/internal/store"
)

// DirectoryServiceInterface defines the contract the handlers depend on
type DirectoryServiceInterface interface {
	ListUsers(search string) *UserListResponse
	ListUsersGrouped(search string) *GroupedUserListResponse
	ListAccounts() *AccountListResponse
	GetUser(id string) (*models.User, error)
	GetAccount(id string) (*AccountDetailResponse, error)
	CreateAccountWithAdmin(req *CreateAccountWithAdminRequest) (*CreateAccountWithAdminResponse, error)
	DeleteUser(id string)
	DeleteAccount(id string)
	SelectUser(id string) error
	SelectAccount(id string) error
	ClearSelection()
	CurrentSelection() store.Selection
}

var _ DirectoryServiceInterface = (*DirectoryService)(nil)
