package models

import "time"

// AccountStatus represents the lifecycle status of an account
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusTrial     AccountStatus = "trial"
)

// Valid reports whether the status is one of the known values
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusActive, AccountStatusSuspended, AccountStatusTrial:
		return true
	}
	return false
}

// AccountSize represents the size class of the tenant organization
type AccountSize string

const (
	AccountSizeSmall      AccountSize = "small"
	AccountSizeMedium     AccountSize = "medium"
	AccountSizeEnterprise AccountSize = "enterprise"
)

// Valid reports whether the size is one of the known values
func (s AccountSize) Valid() bool {
	switch s {
	case AccountSizeSmall, AccountSizeMedium, AccountSizeEnterprise:
		return true
	}
	return false
}

// PlanTier represents a named service level controlling default limits
type PlanTier string

const (
	PlanTierFree       PlanTier = "free"
	PlanTierPro        PlanTier = "pro"
	PlanTierEnterprise PlanTier = "enterprise"
)

// Valid reports whether the tier is one of the known values
func (t PlanTier) Valid() bool {
	switch t {
	case PlanTierFree, PlanTierPro, PlanTierEnterprise:
		return true
	}
	return false
}

// BillingCycle represents how often an account is billed
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// BillingStatus represents the state of an account's billing relationship
type BillingStatus string

const (
	BillingStatusActive   BillingStatus = "active"
	BillingStatusPastDue  BillingStatus = "past_due"
	BillingStatusCanceled BillingStatus = "canceled"
)

// PaymentMethodType represents the kind of payment method on file
type PaymentMethodType string

const (
	PaymentMethodCard         PaymentMethodType = "card"
	PaymentMethodBankTransfer PaymentMethodType = "bank_transfer"
)

// AccountSettings holds per-account feature toggles
type AccountSettings struct {
	MFARequired bool `json:"mfa_required" yaml:"mfa_required" default:"false"`
	SSOEnabled  bool `json:"sso_enabled" yaml:"sso_enabled" default:"false"`
	APIAccess   bool `json:"api_access" yaml:"api_access" default:"true"`
}

// PaymentMethod holds the payment method on file for an account
type PaymentMethod struct {
	Type  PaymentMethodType `json:"type" yaml:"type"`
	Last4 string            `json:"last4" yaml:"last4"`
}

// AccountBilling holds the billing state of an account
type AccountBilling struct {
	Status          BillingStatus `json:"status" yaml:"status"`
	NextBillingDate time.Time     `json:"next_billing_date" yaml:"next_billing_date"`
	PaymentMethod   PaymentMethod `json:"payment_method" yaml:"payment_method"`
}

// AccountUsage holds the running usage counters for an account
type AccountUsage struct {
	Storage   int64 `json:"storage" yaml:"storage"`
	Bandwidth int64 `json:"bandwidth" yaml:"bandwidth"`
	APICalls  int64 `json:"api_calls" yaml:"api_calls"`
}

// AccountLimits holds the plan-derived ceilings for an account. The limits
// are intended as upper bounds for usage and member count but are not
// enforced by the store.
type AccountLimits struct {
	Users            int64 `json:"users" yaml:"users"`
	Storage          int64 `json:"storage" yaml:"storage"`
	APICallsPerMonth int64 `json:"api_calls_per_month" yaml:"api_calls_per_month"`
}

// Account represents a tenant organization owning zero or more users
type Account struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name" validate:"required"`
	Status       AccountStatus   `json:"status" yaml:"status"`
	CreatedAt    time.Time       `json:"created_at" yaml:"created_at"`
	Industry     string          `json:"industry" yaml:"industry" validate:"required"`
	Size         AccountSize     `json:"size" yaml:"size"`
	PlanTier     PlanTier        `json:"plan_tier" yaml:"plan_tier"`
	BillingCycle BillingCycle    `json:"billing_cycle" yaml:"billing_cycle"`
	CustomDomain *string         `json:"custom_domain,omitempty" yaml:"custom_domain,omitempty"`
	Settings     AccountSettings `json:"settings" yaml:"settings"`
	Billing      AccountBilling  `json:"billing" yaml:"billing"`
	Usage        AccountUsage    `json:"usage" yaml:"usage"`
	Limits       AccountLimits   `json:"limits" yaml:"limits"`
}
