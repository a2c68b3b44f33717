package store

import (
	"context"
	"errors"

	"github.com/ozzie1403/finwise/internal/core"
)

// ErrUserNotFound is returned by UserStore.Lookup for unknown emails.
// The auth gate translates it into its own error taxonomy so lookup
// misses and password mismatches are indistinguishable to clients.
var ErrUserNotFound = errors.New("user not found")

// Ports for the in-process state owned by the API. All state is
// volatile: a process restart resets every store.
type (
	ExpenseStore interface {
		// List returns all expenses in insertion order.
		List(ctx context.Context) ([]core.Expense, error)
		// Add validates e, assigns a fresh unique ID, appends it and
		// returns the stored record.
		Add(ctx context.Context, e core.Expense) (core.Expense, error)
	}

	BudgetStore interface {
		// List returns the limit for every known category; unset
		// categories default to 0.
		List(ctx context.Context) (map[core.Category]float64, error)
		// Set overwrites the stored limit for the category.
		Set(ctx context.Context, category core.Category, amount float64) (core.Budget, error)
	}

	UserStore interface {
		// Register stores a new user keyed by email.
		Register(ctx context.Context, email, passwordHash string) error
		// Lookup returns the user for the given email.
		Lookup(ctx context.Context, email string) (core.User, error)
	}
)
