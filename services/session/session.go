package session

import (
	"encoding/json"
	"fmt"

	"goleironow/models"
	"goleironow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Login looks up the identity from the data layer by id and role. On a hit
// the (role, identity) pair is persisted atomically as one session record and
// a signed bearer token is returned. On a miss nothing is persisted and any
// previously issued sessions stay valid.
func (s *DefaultSessionService) Login(id int, role models.Role) (*AuthResponse, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	record := models.SessionRecord{Role: role}
	switch role {
	case models.RoleClient:
		user, err := s.Users.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("login lookup failed: %w", err)
		}
		if user == nil {
			return nil, ErrIdentityNotFound
		}
		record.User = user
	case models.RoleGoalkeeper:
		gk, err := s.Goalkeepers.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("login lookup failed: %w", err)
		}
		if gk == nil {
			return nil, ErrIdentityNotFound
		}
		record.Goalkeeper = gk
	}

	sessionID := uuid.New().String()
	if err := s.saveRecord(sessionID, record); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := utils.GenerateSessionToken(sessionID, string(role), s.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &AuthResponse{
		Token:      token,
		Role:       role,
		User:       record.User,
		Goalkeeper: record.Goalkeeper,
	}, nil
}

// Restore resolves a bearer token back to its session. Every failure mode
// resolves to an unauthenticated nil session; malformed records are cleared
// from the store so they cannot keep poisoning restores.
func (s *DefaultSessionService) Restore(token string) *Session {
	if token == "" {
		return nil
	}
	logger := utils.GetLogger()

	sessionID, err := utils.ExtractSessionIDFromToken(token)
	if err != nil {
		logger.Debug("session restore: rejected token", zap.Error(err))
		return nil
	}

	data, err := s.Store.Get(sessionID)
	if err != nil {
		if err != ErrSessionNotFound {
			logger.Warn("session restore: store read failed", zap.Error(err))
		}
		return nil
	}

	var record models.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Warn("session restore: clearing malformed record",
			zap.String("sessionID", sessionID), zap.Error(err))
		s.clear(sessionID)
		return nil
	}
	if err := record.Validate(); err != nil {
		logger.Warn("session restore: clearing inconsistent record",
			zap.String("sessionID", sessionID),
			zap.String("role", string(record.Role)))
		s.clear(sessionID)
		return nil
	}

	return &Session{ID: sessionID, Record: record}
}

// Logout clears the session behind the token unconditionally. A token that
// resolves to nothing is not an error.
func (s *DefaultSessionService) Logout(token string) {
	if token == "" {
		return
	}
	sessionID, err := utils.ExtractSessionIDFromToken(token)
	if err != nil {
		return
	}
	s.clear(sessionID)
}

// ToggleFavorite flips membership of the goalkeeper in the session user's
// favorites. Valid only for client sessions; anything else is silently
// ignored so call sites stay simple. After a successful round trip the
// in-session identity is replaced wholesale with the data layer's copy and
// re-persisted, keeping the local favorites set from diverging.
func (s *DefaultSessionService) ToggleFavorite(sess *Session, goalkeeperID int) error {
	if sess == nil || sess.Record.Role != models.RoleClient || sess.Record.User == nil {
		return nil
	}

	updated, err := s.Users.ToggleFavorite(sess.Record.User.ID, goalkeeperID)
	if err != nil {
		// Round trip failed: local state stays stale. Favorites are
		// non-critical, so no retry and no rollback.
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}
	if updated == nil {
		return nil
	}

	sess.Record.User = updated
	if err := s.saveRecord(sess.ID, sess.Record); err != nil {
		utils.GetLogger().Warn("failed to re-persist session after favorite toggle",
			zap.String("sessionID", sess.ID), zap.Error(err))
	}
	return nil
}

// IsFavorite reports whether the goalkeeper is in the session's favorites.
// Favorite-ness is meaningless outside the client role, so any non-client
// session answers false no matter what the identity carries.
func (s *DefaultSessionService) IsFavorite(sess *Session, goalkeeperID int) bool {
	if sess == nil || sess.Record.Role != models.RoleClient || sess.Record.User == nil {
		return false
	}
	return sess.Record.User.HasFavorite(goalkeeperID)
}

func (s *DefaultSessionService) saveRecord(sessionID string, record models.SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	return s.Store.Save(sessionID, data, s.TTL)
}

func (s *DefaultSessionService) clear(sessionID string) {
	if err := s.Store.Delete(sessionID); err != nil {
		utils.GetLogger().Warn("failed to delete session record",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
