package reservation

import (
	gkRepo "goleironow/database/repository/goalkeeper"
	reservationRepo "goleironow/database/repository/reservation"
	"goleironow/models"
)

// CreateInput is the client-supplied part of a new reservation. Price and
// status are never taken from the caller.
type CreateInput struct {
	GoalkeeperID int    `json:"goalkeeperId"`
	Date         string `json:"date"`
	Period       string `json:"period"`
	Duration     int    `json:"duration"`
}

// ReservationService owns reservation creation and the status machine.
type ReservationService interface {
	// Create books a goalkeeper for a client. The total price is
	// snapshotted from the goalkeeper's current hourly rate and the status
	// always starts Pending.
	Create(userID int, input CreateInput) (*models.Reservation, error)

	// ListForUser returns a client's reservations, newest date first.
	ListForUser(userID int) ([]models.Reservation, error)

	// ListForGoalkeeper returns a goalkeeper's received reservations,
	// newest date first.
	ListForGoalkeeper(goalkeeperID int) ([]models.Reservation, error)

	// UpdateStatus transitions a reservation on behalf of an actor. The
	// actor must own its side of the reservation and the transition must be
	// legal for its role; transitions out of a terminal status always fail.
	UpdateStatus(actorRole models.Role, actorID, reservationID int, target models.ReservationStatus) (*models.Reservation, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Reservations reservationRepo.ReservationRepository
	Goalkeepers  gkRepo.GoalkeeperRepository
}
