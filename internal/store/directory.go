package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"admin-dashboard-backend/internal/models"
)

// SelectionKind identifies which kind of entity is currently focused
type SelectionKind string

const (
	SelectionNone    SelectionKind = "none"
	SelectionUser    SelectionKind = "user"
	SelectionAccount SelectionKind = "account"
)

// Selection is a non-owning pointer into the directory: it holds an id,
// never the record itself, so a deleted entity can't dangle. At most one of
// UserID/AccountID is set.
type Selection struct {
	Kind      SelectionKind `json:"kind"`
	UserID    string        `json:"user_id,omitempty"`
	AccountID string        `json:"account_id,omitempty"`
}

// DirectoryStore owns the in-memory account and user collections for the
// lifetime of the process. Insertion order is preserved. The logical model
// is one session with one writer; the mutex only makes concurrent HTTP
// handlers safe.
type DirectoryStore struct {
	mu        sync.RWMutex
	accounts  []models.Account
	users     []models.User
	selection Selection

	// Monotonic id counters. They only ever increase, so a deleted record's
	// id is never handed out again while a later id is live.
	accountSeq int
	userSeq    int
}

// NewDirectoryStore creates an empty directory store
func NewDirectoryStore() *DirectoryStore {
	return &DirectoryStore{
		selection: Selection{Kind: SelectionNone},
	}
}

// Load replaces the collections with the given records, usually the embedded
// sample dataset, and advances the id counters past the highest seeded id.
func (s *DirectoryStore) Load(accounts []models.Account, users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = append([]models.Account(nil), accounts...)
	s.users = append([]models.User(nil), users...)
	s.selection = Selection{Kind: SelectionNone}

	for _, a := range s.accounts {
		if n, ok := idSequence(a.ID, "acc_"); ok && n > s.accountSeq {
			s.accountSeq = n
		}
	}
	for _, u := range s.users {
		if n, ok := idSequence(u.ID, "user_"); ok && n > s.userSeq {
			s.userSeq = n
		}
	}
}

// ListAccounts returns a copy of the account collection in insertion order
func (s *DirectoryStore) ListAccounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Account(nil), s.accounts...)
}

// ListUsers returns a copy of the user collection in insertion order
func (s *DirectoryStore) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// GetAccount returns the account with the given id
func (s *DirectoryStore) GetAccount(id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Account{}, false
}

// GetUser returns the user with the given id
func (s *DirectoryStore) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UsersByAccount returns the users referencing the given account id, in
// insertion order
func (s *DirectoryStore) UsersByAccount(accountID string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.User
	for _, u := range s.users {
		if u.AccountID == accountID {
			out = append(out, u)
		}
	}
	return out
}

// InsertAccount appends an account to the collection
func (s *DirectoryStore) InsertAccount(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, account)
}

// InsertUser appends a user to the collection
func (s *DirectoryStore) InsertUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

// DeleteUser removes the user with the given id. Deleting an absent id is a
// no-op, not an error. If the deleted user was the current selection the
// selection is cleared.
func (s *DirectoryStore) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			if s.selection.Kind == SelectionUser && s.selection.UserID == id {
				s.selection = Selection{Kind: SelectionNone}
			}
			return true
		}
	}
	return false
}

// DeleteAccount removes the account with the given id together with every
// user referencing it (cascade delete). Deleting an absent id is a no-op.
// The selection is cleared when it pointed at the account or at a user the
// cascade removed.
func (s *DirectoryStore) DeleteAccount(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, a := range s.accounts {
		if a.ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	kept := s.users[:0]
	for _, u := range s.users {
		if u.AccountID == id {
			if s.selection.Kind == SelectionUser && s.selection.UserID == u.ID {
				s.selection = Selection{Kind: SelectionNone}
			}
			continue
		}
		kept = append(kept, u)
	}
	s.users = kept

	if s.selection.Kind == SelectionAccount && s.selection.AccountID == id {
		s.selection = Selection{Kind: SelectionNone}
	}
	return true
}

// NextAccountID returns a fresh account id token. Sequential, but never
// reuses a live id even if seed data carries ids outside the scheme.
func (s *DirectoryStore) NextAccountID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		s.accountSeq++
		id := fmt.Sprintf("acc_%d", s.accountSeq)
		if !s.accountIDExists(id) {
			return id
		}
	}
}

// NextUserID returns a fresh user id token
func (s *DirectoryStore) NextUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		s.userSeq++
		id := fmt.Sprintf("user_%d", s.userSeq)
		if !s.userIDExists(id) {
			return id
		}
	}
}

// SelectUser focuses the given user, clearing any account selection
func (s *DirectoryStore) SelectUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.userIDExists(id) {
		return false
	}
	s.selection = Selection{Kind: SelectionUser, UserID: id}
	return true
}

// SelectAccount focuses the given account, clearing any user selection
func (s *DirectoryStore) SelectAccount(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accountIDExists(id) {
		return false
	}
	s.selection = Selection{Kind: SelectionAccount, AccountID: id}
	return true
}

// ClearSelection clears any focus, the "home" action
func (s *DirectoryStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Kind: SelectionNone}
}

// Selection returns the current selection state
func (s *DirectoryStore) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

func (s *DirectoryStore) accountIDExists(id string) bool {
	for _, a := range s.accounts {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (s *DirectoryStore) userIDExists(id string) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// idSequence extracts the numeric suffix from ids of the form <prefix>N
func idSequence(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
