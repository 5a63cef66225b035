package store_test

import (
	"testing"

	"admin-dashboard-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDataParses(t *testing.T) {
	accounts, users, err := store.SampleData()

	require.NoError(t, err)
	assert.Len(t, accounts, 5)
	assert.Len(t, users, 10)
}

func TestSampleDataReferentialIntegrity(t *testing.T) {
	accounts, users, err := store.SampleData()
	require.NoError(t, err)

	byID := make(map[string]int, len(accounts))
	for i, a := range accounts {
		byID[a.ID] = i
	}

	for _, u := range users {
		idx, ok := byID[u.AccountID]
		require.True(t, ok, "user %s references unknown account %s", u.ID, u.AccountID)

		// The denormalized snapshot fields must agree with the owning account
		assert.Equal(t, accounts[idx].Name, u.AccountName, "user %s", u.ID)
		assert.Equal(t, accounts[idx].Status, u.AccountStatus, "user %s", u.ID)
	}
}

func TestSampleDataFieldValidity(t *testing.T) {
	accounts, users, err := store.SampleData()
	require.NoError(t, err)

	for _, a := range accounts {
		assert.True(t, a.Status.Valid(), "account %s status %q", a.ID, a.Status)
		assert.True(t, a.Size.Valid(), "account %s size %q", a.ID, a.Size)
		assert.True(t, a.PlanTier.Valid(), "account %s plan tier %q", a.ID, a.PlanTier)
		assert.NotEmpty(t, a.Name, "account %s", a.ID)
	}
	for _, u := range users {
		assert.True(t, u.Role.Valid(), "user %s role %q", u.ID, u.Role)
		assert.True(t, u.Status.Valid(), "user %s status %q", u.ID, u.Status)
		assert.NotEmpty(t, u.Email, "user %s", u.ID)
	}
}

func TestLoadSampleDataAdvancesIDCounters(t *testing.T) {
	s := store.NewDirectoryStore()
	require.NoError(t, s.LoadSampleData())

	assert.Equal(t, "acc_6", s.NextAccountID())
	assert.Equal(t, "user_11", s.NextUserID())
}
