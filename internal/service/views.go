package service

import (
	"strings"

	"admin-dashboard-backend/internal/models"
)

// UserGroup is one bucket of the account-grouped user view. Name and Status
// come from the denormalized snapshot on the first user encountered for the
// account, not from the account record itself, so they can lag behind the
// account. That mirrors the dashboard's observed behavior and keeps the
// denormalization in one place.
type UserGroup struct {
	AccountID string               `json:"account_id"`
	Name      string               `json:"name"`
	Status    models.AccountStatus `json:"status"`
	Users     []models.User        `json:"users"`
}

// FilterUsers returns the users whose email, first name, last name or
// account name contains the search term, case-insensitively. An empty term
// matches everything. Input order is preserved.
func FilterUsers(users []models.User, term string) []models.User {
	needle := strings.ToLower(term)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), needle) ||
			strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) ||
			strings.Contains(strings.ToLower(u.AccountName), needle) {
			out = append(out, u)
		}
	}
	return out
}

// GroupUsersByAccount buckets the (already filtered) users by account id,
// one group per distinct id in first-occurrence order, each group holding
// its users in their relative input order.
func GroupUsersByAccount(users []models.User) []UserGroup {
	index := make(map[string]int)
	groups := make([]UserGroup, 0)
	for _, u := range users {
		i, ok := index[u.AccountID]
		if !ok {
			i = len(groups)
			index[u.AccountID] = i
			groups = append(groups, UserGroup{
				AccountID: u.AccountID,
				Name:      u.AccountName,
				Status:    u.AccountStatus,
			})
		}
		groups[i].Users = append(groups[i].Users, u)
	}
	return groups
}

// UsageRatio returns used/limit clamped to [0, 1] for progress display.
// A zero or negative limit yields 1 when anything has been used and 0
// otherwise, instead of dividing by zero.
func UsageRatio(used, limit int64) float64 {
	if limit <= 0 {
		if used > 0 {
			return 1
		}
		return 0
	}
	ratio := float64(used) / float64(limit)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
