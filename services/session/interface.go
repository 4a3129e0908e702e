package session

import (
	"time"

	gkRepo "goleironow/database/repository/goalkeeper"
	userRepo "goleironow/database/repository/user"
	"goleironow/models"
)

// Session is a restored, live session: the stored record plus the ID it is
// persisted under.
type Session struct {
	ID     string
	Record models.SessionRecord
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token      string             `json:"token"`
	Role       models.Role        `json:"role"`
	User       *models.User       `json:"user,omitempty"`
	Goalkeeper *models.Goalkeeper `json:"goalkeeper,omitempty"`
}

// SessionService is the single source of truth for "who is acting".
type SessionService interface {
	// Login looks up the identity for the given role, persists a session
	// record and returns a bearer token. An unknown id yields
	// ErrIdentityNotFound and persists nothing.
	Login(id int, role models.Role) (*AuthResponse, error)

	// Restore resolves a bearer token to its session. Any failure (bad
	// token, missing record, malformed record) resolves to nil; malformed
	// records are cleared from the store. Never returns an error: recovery
	// is silent by design, logs only.
	Restore(token string) *Session

	// Logout clears the session behind the token. Idempotent; no error
	// possible.
	Logout(token string)

	// ToggleFavorite flips the goalkeeper's membership in the session
	// identity's favorites. No-op for non-client sessions. On success the
	// in-session identity is replaced wholesale with the data layer's
	// authoritative copy and re-persisted.
	ToggleFavorite(sess *Session, goalkeeperID int) error

	// IsFavorite reports favorite membership. Always false for non-client
	// sessions, regardless of stored data.
	IsFavorite(sess *Session, goalkeeperID int) bool
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Users       userRepo.UserRepository
	Goalkeepers gkRepo.GoalkeeperRepository
	Store       SessionStore
	TTL         time.Duration
}
