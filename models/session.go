package models

import "errors"

// Role identifies which side of the marketplace a session is acting for.
type Role string

const (
	RoleClient     Role = "client"
	RoleGoalkeeper Role = "goalkeeper"
)

// IsValid reports whether r is a recognized role tag.
func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleGoalkeeper
}

var ErrMalformedSession = errors.New("malformed session record")

// SessionRecord is the persisted authentication state: the role tag and the
// matching identity stored atomically as one record. Exactly one of User and
// Goalkeeper is set, and it must agree with Role.
type SessionRecord struct {
	Role       Role        `json:"role"`
	User       *User       `json:"user,omitempty"`
	Goalkeeper *Goalkeeper `json:"goalkeeper,omitempty"`
}

// Validate checks the role tag and the role/identity agreement.
func (s *SessionRecord) Validate() error {
	switch s.Role {
	case RoleClient:
		if s.User == nil || s.Goalkeeper != nil {
			return ErrMalformedSession
		}
	case RoleGoalkeeper:
		if s.Goalkeeper == nil || s.User != nil {
			return ErrMalformedSession
		}
	default:
		return ErrMalformedSession
	}
	return nil
}

// IdentityID returns the ID of whichever identity the record holds.
func (s *SessionRecord) IdentityID() int {
	if s.User != nil {
		return s.User.ID
	}
	if s.Goalkeeper != nil {
		return s.Goalkeeper.ID
	}
	return 0
}

// IdentityName returns the display name of whichever identity the record holds.
func (s *SessionRecord) IdentityName() string {
	if s.User != nil {
		return s.User.Name
	}
	if s.Goalkeeper != nil {
		return s.Goalkeeper.Name
	}
	return ""
}
