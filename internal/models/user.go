package models

import "time"

// UserRole represents the role of a user within their account
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	UserRoleOwner UserRole = "owner"
)

// Valid reports whether the role is one of the known values
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleOwner:
		return true
	}
	return false
}

// UserStatus represents the lifecycle status of a user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

// Valid reports whether the status is one of the known values
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusPending:
		return true
	}
	return false
}

// Theme represents the UI theme preference of a user
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// UserPreferences holds per-user notification and display settings
type UserPreferences struct {
	EmailNotifications bool  `json:"email_notifications" yaml:"email_notifications" default:"true"`
	MarketingEmails    bool  `json:"marketing_emails" yaml:"marketing_emails" default:"false"`
	Theme              Theme `json:"theme" yaml:"theme" default:"system"`
}

// UserBilling holds the optional per-user billing sub-record
type UserBilling struct {
	Plan            string        `json:"plan" yaml:"plan"`
	Interval        BillingCycle  `json:"interval" yaml:"interval"`
	Status          BillingStatus `json:"status" yaml:"status"`
	NextBillingDate time.Time     `json:"next_billing_date" yaml:"next_billing_date"`
}

// User represents a person-record belonging to exactly one account.
// AccountName and AccountStatus are denormalized snapshots taken when the
// user is created; they are not reconciled against later account edits and
// only go away when the owning account is cascade-deleted.
type User struct {
	ID                 string          `json:"id" yaml:"id"`
	Email              string          `json:"email" yaml:"email" validate:"required,email"`
	FirstName          string          `json:"first_name" yaml:"first_name" validate:"required"`
	LastName           string          `json:"last_name" yaml:"last_name" validate:"required"`
	Role               UserRole        `json:"role" yaml:"role"`
	Status             UserStatus      `json:"status" yaml:"status"`
	LastLoginAt        *time.Time      `json:"last_login_at" yaml:"last_login_at"`
	CreatedAt          time.Time       `json:"created_at" yaml:"created_at"`
	Company            string          `json:"company" yaml:"company"`
	SubscriptionTier   PlanTier        `json:"subscription_tier" yaml:"subscription_tier"`
	AccountID          string          `json:"account_id" yaml:"account_id"`
	AccountName        string          `json:"account_name" yaml:"account_name"`
	AccountStatus      AccountStatus   `json:"account_status" yaml:"account_status"`
	Avatar             *string         `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	PhoneNumber        *string         `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	JobTitle           *string         `json:"job_title,omitempty" yaml:"job_title,omitempty"`
	Department         *string         `json:"department,omitempty" yaml:"department,omitempty"`
	Timezone           *string         `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Language           *string         `json:"language,omitempty" yaml:"language,omitempty"`
	TwoFactorEnabled   bool            `json:"two_factor_enabled" yaml:"two_factor_enabled"`
	LastPasswordChange *time.Time      `json:"last_password_change,omitempty" yaml:"last_password_change,omitempty"`
	LoginCount         int             `json:"login_count" yaml:"login_count"`
	Preferences        UserPreferences `json:"preferences" yaml:"preferences"`
	Billing            *UserBilling    `json:"billing,omitempty" yaml:"billing,omitempty"`
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
