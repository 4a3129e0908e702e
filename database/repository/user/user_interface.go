package userRepo

import "goleironow/models"

// UserRepository defines methods for client account data access.
// Lookup misses resolve to (nil, nil), never to an error.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id int) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Update modifies an existing user record.
	Update(user *models.User) error
	// ToggleFavorite flips membership of the goalkeeper in the user's
	// favorites set and returns the authoritative updated record.
	ToggleFavorite(userID, goalkeeperID int) (*models.User, error)
}
