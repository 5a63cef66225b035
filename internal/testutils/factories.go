package testutils

import (
	"fmt"
	"time"

	"admin-dashboard-backend/internal/models"
)

// AccountFactory provides methods to create test Account data
type AccountFactory struct{}

// NewAccountFactory creates a new AccountFactory
func NewAccountFactory() *AccountFactory {
	return &AccountFactory{}
}

// Create creates a test Account with default values
func (f *AccountFactory) Create(id string) models.Account {
	return models.Account{
		ID:           id,
		Name:         "Test Account",
		Status:       models.AccountStatusActive,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Industry:     "Technology",
		Size:         models.AccountSizeSmall,
		PlanTier:     models.PlanTierPro,
		BillingCycle: models.BillingCycleMonthly,
		Settings: models.AccountSettings{
			MFARequired: false,
			SSOEnabled:  false,
			APIAccess:   true,
		},
		Billing: models.AccountBilling{
			Status:          models.BillingStatusActive,
			NextBillingDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			PaymentMethod: models.PaymentMethod{
				Type:  models.PaymentMethodCard,
				Last4: "4242",
			},
		},
		Usage: models.AccountUsage{
			Storage:   10,
			Bandwidth: 50,
			APICalls:  1000,
		},
		Limits: models.AccountLimits{
			Users:            10,
			Storage:          100,
			APICallsPerMonth: 100000,
		},
	}
}

// WithName sets a custom name for the account
func (f *AccountFactory) WithName(id, name string) models.Account {
	account := f.Create(id)
	account.Name = name
	return account
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User belonging to the given account
func (f *UserFactory) Create(id string, account models.Account) models.User {
	return models.User{
		ID:               id,
		Email:            fmt.Sprintf("%s@example.com", id),
		FirstName:        "Test",
		LastName:         "User",
		Role:             models.UserRoleUser,
		Status:           models.UserStatusActive,
		CreatedAt:        time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Company:          account.Name,
		SubscriptionTier: account.PlanTier,
		AccountID:        account.ID,
		AccountName:      account.Name,
		AccountStatus:    account.Status,
		TwoFactorEnabled: false,
		LoginCount:       5,
		Preferences: models.UserPreferences{
			EmailNotifications: true,
			MarketingEmails:    false,
			Theme:              models.ThemeSystem,
		},
	}
}

// WithName sets a custom first/last name for the user
func (f *UserFactory) WithName(id string, account models.Account, first, last string) models.User {
	user := f.Create(id, account)
	user.FirstName = first
	user.LastName = last
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(id string, account models.Account, email string) models.User {
	user := f.Create(id, account)
	user.Email = email
	return user
}
