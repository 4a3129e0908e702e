package goalkeeper

import (
	gkRepo "goleironow/database/repository/goalkeeper"
	"goleironow/models"
)

// Filter narrows a goalkeeper listing. Zero values mean "no constraint".
type Filter struct {
	Region    string
	MaxPrice  float64
	MinRating float64
}

// GoalkeeperService owns goalkeeper browsing and profile management.
type GoalkeeperService interface {
	// List returns goalkeeper profiles matching the filter.
	List(filter Filter) ([]models.Goalkeeper, error)
	// GetByID returns a profile, or nil when unknown.
	GetByID(id int) (*models.Goalkeeper, error)
	// Register creates a new goalkeeper profile, assigning its ID.
	Register(gk *models.Goalkeeper) error
	// UpdateProfile overwrites the mutable fields of an existing profile
	// and returns the stored result.
	UpdateProfile(id int, changes models.Goalkeeper) (*models.Goalkeeper, error)
}

// DefaultGoalkeeperService is the production implementation.
type DefaultGoalkeeperService struct {
	Repo gkRepo.GoalkeeperRepository
}
