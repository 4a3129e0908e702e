package gkRepo

import "goleironow/models"

// GoalkeeperRepository defines methods for goalkeeper profile data access.
// Lookup misses resolve to (nil, nil), never to an error.
type GoalkeeperRepository interface {
	// GetByID retrieves a goalkeeper by its unique ID.
	GetByID(id int) (*models.Goalkeeper, error)
	// GetAll retrieves all goalkeeper profiles.
	GetAll() ([]models.Goalkeeper, error)
	// Create inserts a new goalkeeper profile, assigning its ID.
	Create(gk *models.Goalkeeper) error
	// Update modifies an existing goalkeeper profile.
	Update(gk *models.Goalkeeper) error
}
