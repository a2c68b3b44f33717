// Package memory holds the in-memory store implementations backing the
// API. Each store guards its state with a sync.RWMutex so concurrent
// requests keep the last-write-wins, no-lost-updates behavior.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ozzie1403/finwise/internal/core"
	"github.com/ozzie1403/finwise/internal/store"
)

type ExpenseStore struct {
	mu    sync.RWMutex
	items []core.Expense
}

func NewExpenseStore() *ExpenseStore {
	return &ExpenseStore{}
}

// Seed appends showcase expenses, assigning each a fresh ID. Invalid
// records are skipped rather than aborting startup.
func (s *ExpenseStore) Seed(expenses ...core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range expenses {
		if err := e.Validate(); err != nil {
			continue
		}
		e.ID = uuid.NewString()
		s.items = append(s.items, e)
	}
}

// List returns a copy of all expenses in insertion order.
func (s *ExpenseStore) List(_ context.Context) ([]core.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Add validates the expense, assigns a fresh UUID and appends it.
// Nothing is stored when validation fails.
func (s *ExpenseStore) Add(_ context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	e.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return e, nil
}

type BudgetStore struct {
	mu     sync.RWMutex
	limits map[core.Category]float64
}

// NewBudgetStore starts every known category at a zero limit.
func NewBudgetStore() *BudgetStore {
	limits := make(map[core.Category]float64, len(core.Categories()))
	for _, cat := range core.Categories() {
		limits[cat] = 0
	}
	return &BudgetStore{limits: limits}
}

func (s *BudgetStore) List(_ context.Context) (map[core.Category]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[core.Category]float64, len(s.limits))
	for cat, limit := range s.limits {
		out[cat] = limit
	}
	return out, nil
}

// Set overwrites the limit for the category. The previous value is
// replaced, never added to.
func (s *BudgetStore) Set(_ context.Context, category core.Category, amount float64) (core.Budget, error) {
	b := core.Budget{Category: category, Amount: amount}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limits[category] = amount
	return b, nil
}

type UserStore struct {
	mu    sync.RWMutex
	users map[string]core.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]core.User)}
}

// Register stores a new user. Emails are keyed case-insensitively.
func (s *UserStore) Register(_ context.Context, email, passwordHash string) error {
	key := normalizeEmail(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[key]; exists {
		return core.Conflict("email already registered")
	}
	s.users[key] = core.User{Email: email, PasswordHash: passwordHash}
	return nil
}

func (s *UserStore) Lookup(_ context.Context, email string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return core.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
