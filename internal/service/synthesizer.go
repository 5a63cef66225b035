package service

import (
	"fmt"
	"strings"
	"time"

	apperrors "admin-dashboard-backend/internal/errors"
	"admin-dashboard-backend/internal/models"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// CreateAccountRequest is the partial account input of the new-account form.
// Optional scalar fields carry their defaults as struct tags; optional
// sub-records are pointers so "not supplied" stays distinguishable.
type CreateAccountRequest struct {
	Name         string                  `json:"name" validate:"required"`
	Industry     string                  `json:"industry" validate:"required"`
	Status       models.AccountStatus    `json:"status" default:"active"`
	Size         models.AccountSize      `json:"size" default:"small"`
	PlanTier     models.PlanTier         `json:"plan_tier" default:"pro"`
	BillingCycle models.BillingCycle     `json:"billing_cycle" default:"monthly"`
	CustomDomain *string                 `json:"custom_domain,omitempty"`
	CreatedAt    *time.Time              `json:"created_at,omitempty"`
	Settings     *models.AccountSettings `json:"settings,omitempty"`
	Usage        *models.AccountUsage    `json:"usage,omitempty"`
	Limits       *models.AccountLimits   `json:"limits,omitempty"`
}

// CreateAdminRequest is the partial input for the account's initial admin
type CreateAdminRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// IDSource hands out fresh, non-colliding id tokens
type IDSource interface {
	NextAccountID() string
	NextUserID() string
}

// Synthesizer completes partial new-account input into a full Account and
// its initial admin User
type Synthesizer struct {
	validator *validator.Validate
}

// NewSynthesizer creates a new synthesizer
func NewSynthesizer(validator *validator.Validate) *Synthesizer {
	return &Synthesizer{validator: validator}
}

// Synthesize validates the inputs, fills in every omitted field and returns
// the completed record pair. Validation happens before any id is drawn, so a
// failed request leaves no trace. The admin's account name/status/tier are
// denormalized snapshots of the account being created.
func (sy *Synthesizer) Synthesize(req *CreateAccountRequest, admin *CreateAdminRequest, now time.Time, ids IDSource) (models.Account, models.User, error) {
	if err := sy.validator.Struct(req); err != nil {
		return models.Account{}, models.User{}, asValidationError(err)
	}
	if err := sy.validator.Struct(admin); err != nil {
		return models.Account{}, models.User{}, asValidationError(err)
	}
	// defaults.Set recurses into non-nil pointers and would stamp tag
	// defaults over zero fields inside a supplied Settings record, turning an
	// explicit api_access=false back into true. Detach supplied sub-records
	// so tags only fill the top-level scalars; the nil case is handled by
	// defaultSettings below.
	suppliedSettings := req.Settings
	req.Settings = nil
	err := defaults.Set(req)
	req.Settings = suppliedSettings
	if err != nil {
		return models.Account{}, models.User{}, fmt.Errorf("failed to apply defaults: %w", err)
	}

	account := models.Account{
		ID:           ids.NextAccountID(),
		Name:         req.Name,
		Status:       req.Status,
		CreatedAt:    now,
		Industry:     req.Industry,
		Size:         req.Size,
		PlanTier:     req.PlanTier,
		BillingCycle: req.BillingCycle,
		CustomDomain: req.CustomDomain,
		Settings:     defaultSettings(req.Settings),
		Billing: models.AccountBilling{
			Status:          models.BillingStatusActive,
			NextBillingDate: now.Add(30 * 24 * time.Hour),
			PaymentMethod: models.PaymentMethod{
				Type:  models.PaymentMethodCard,
				Last4: "0000",
			},
		},
		Usage:  defaultUsage(req.Usage),
		Limits: defaultLimits(req.Limits, req.PlanTier),
	}
	if req.CreatedAt != nil {
		account.CreatedAt = *req.CreatedAt
	}

	user := models.User{
		ID:               ids.NextUserID(),
		Email:            admin.Email,
		FirstName:        admin.FirstName,
		LastName:         admin.LastName,
		Role:             models.UserRoleAdmin,
		Status:           models.UserStatusActive,
		LastLoginAt:      nil,
		CreatedAt:        now,
		Company:          account.Name,
		SubscriptionTier: account.PlanTier,
		AccountID:        account.ID,
		AccountName:      account.Name,
		AccountStatus:    account.Status,
		TwoFactorEnabled: false,
		LoginCount:       0,
		Preferences:      defaultPreferences(),
	}

	return account, user, nil
}

func defaultSettings(s *models.AccountSettings) models.AccountSettings {
	if s != nil {
		return *s
	}
	var out models.AccountSettings
	_ = defaults.Set(&out)
	return out
}

func defaultUsage(u *models.AccountUsage) models.AccountUsage {
	if u != nil {
		return *u
	}
	return models.AccountUsage{}
}

// defaultLimits derives the plan ceilings from the tier when the form did
// not supply explicit limits
func defaultLimits(l *models.AccountLimits, tier models.PlanTier) models.AccountLimits {
	if l != nil {
		return *l
	}
	if tier == models.PlanTierEnterprise {
		return models.AccountLimits{
			Users:            100,
			Storage:          5000,
			APICallsPerMonth: 5000000,
		}
	}
	return models.AccountLimits{
		Users:            10,
		Storage:          100,
		APICallsPerMonth: 100000,
	}
}

func defaultPreferences() models.UserPreferences {
	var out models.UserPreferences
	_ = defaults.Set(&out)
	return out
}

// asValidationError converts validator output into the service error type
// surfaced to the submitting form
func asValidationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		f := verrs[0]
		return apperrors.NewValidationError(strings.ToLower(f.Field()), fmt.Sprintf("failed on the '%s' rule", f.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
