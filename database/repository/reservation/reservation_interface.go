package reservationRepo

import "goleironow/models"

// ReservationRepository defines methods for reservation data access.
// Lookup misses resolve to (nil, nil), never to an error.
type ReservationRepository interface {
	// Create inserts a new reservation, assigning its ID and forcing the
	// initial Pending status.
	Create(res *models.Reservation) error
	// GetByID retrieves a reservation by its unique ID.
	GetByID(id int) (*models.Reservation, error)
	// ListByUser retrieves a client's reservations, newest date first.
	ListByUser(userID int) ([]models.Reservation, error)
	// ListByGoalkeeper retrieves a goalkeeper's received reservations,
	// newest date first.
	ListByGoalkeeper(goalkeeperID int) ([]models.Reservation, error)
	// UpdateStatus sets the status of a reservation and returns the updated
	// record. Transition legality is the service layer's concern.
	UpdateStatus(id int, status models.ReservationStatus) (*models.Reservation, error)
}
