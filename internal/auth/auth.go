// Package auth implements the credential gate. No sessions or tokens
// are issued: a successful login only confirms the credentials and the
// client keeps its own logged-in state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ozzie1403/finwise/internal/core"
	"github.com/ozzie1403/finwise/internal/store"
)

// Fixed demo credentials that authenticate without registration. The
// reference client advertises them on its login screen. KNOWN ANOMALY:
// this is a credential bypass, kept only for parity with the observed
// behavior.
const (
	BypassEmail    = "admin@gmail.com"
	BypassPassword = "admin"
)

const minPasswordLength = 4

type Gate struct {
	users store.UserStore
	cost  int
}

// NewGate builds a credential gate over the given user store. cost is
// the bcrypt work factor; values outside bcrypt's range fall back to
// the library default.
func NewGate(users store.UserStore, cost int) *Gate {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Gate{users: users, cost: cost}
}

// Register validates the credentials, hashes the password and stores
// the new user. Duplicate emails surface as a ConflictError.
func (g *Gate) Register(ctx context.Context, email, password string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return core.Validation("invalid email address")
	}
	if len(password) < minPasswordLength {
		return core.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := g.users.Register(ctx, addr.Address, string(hash)); err != nil {
		return err
	}
	slog.InfoContext(ctx, "User registered", "email", addr.Address)
	return nil
}

// Login checks the submitted credentials. The bypass pair always
// succeeds; otherwise the email is looked up and the bcrypt hash
// compared. Unknown email and wrong password both return the same
// AuthError so clients cannot probe for registered addresses.
func (g *Gate) Login(ctx context.Context, email, password string) error {
	if email == BypassEmail && password == BypassPassword {
		slog.WarnContext(ctx, "Bypass credentials used", "email", email)
		return nil
	}

	u, err := g.users.Lookup(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return core.Unauthorized("invalid email or password")
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return core.Unauthorized("invalid email or password")
	}
	return nil
}
