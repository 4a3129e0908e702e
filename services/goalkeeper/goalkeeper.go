package goalkeeper

import (
	"errors"
	"fmt"

	"goleironow/models"
)

var ErrInvalidProfile = errors.New("invalid goalkeeper profile")

// List returns goalkeeper profiles matching the filter. Filtering happens
// over the full collection; the catalog is small.
func (s *DefaultGoalkeeperService) List(filter Filter) ([]models.Goalkeeper, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list goalkeepers: %w", err)
	}

	out := make([]models.Goalkeeper, 0, len(all))
	for _, gk := range all {
		if filter.Region != "" && gk.Region != filter.Region {
			continue
		}
		if filter.MaxPrice > 0 && gk.PricePerHour > filter.MaxPrice {
			continue
		}
		if gk.Rating < filter.MinRating {
			continue
		}
		out = append(out, gk)
	}
	return out, nil
}

// GetByID returns a profile, or nil when unknown.
func (s *DefaultGoalkeeperService) GetByID(id int) (*models.Goalkeeper, error) {
	return s.Repo.GetByID(id)
}

// Register creates a new goalkeeper profile. Presence checks only.
func (s *DefaultGoalkeeperService) Register(gk *models.Goalkeeper) error {
	if gk.Name == "" || gk.City == "" || gk.PricePerHour <= 0 {
		return ErrInvalidProfile
	}
	if err := s.Repo.Create(gk); err != nil {
		return fmt.Errorf("failed to register goalkeeper: %w", err)
	}
	return nil
}

// UpdateProfile overwrites the mutable fields of an existing profile. The
// rating is owned by the platform and cannot be self-assigned.
func (s *DefaultGoalkeeperService) UpdateProfile(id int, changes models.Goalkeeper) (*models.Goalkeeper, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("goalkeeper lookup failed: %w", err)
	}
	if current == nil {
		return nil, nil
	}

	if changes.Name != "" {
		current.Name = changes.Name
	}
	if changes.Age > 0 {
		current.Age = changes.Age
	}
	if changes.City != "" {
		current.City = changes.City
	}
	if changes.Region != "" {
		current.Region = changes.Region
	}
	if changes.PricePerHour > 0 {
		current.PricePerHour = changes.PricePerHour
	}
	if changes.Availability != nil {
		current.Availability = changes.Availability
	}
	if changes.PhotoURL != "" {
		current.PhotoURL = changes.PhotoURL
	}
	if changes.Description != "" {
		current.Description = changes.Description
	}

	if err := s.Repo.Update(current); err != nil {
		return nil, fmt.Errorf("failed to update goalkeeper: %w", err)
	}
	return current, nil
}
