package reservation

import (
	"fmt"

	"goleironow/models"
)

// Create books a goalkeeper for a client. TotalPrice is computed from the
// goalkeeper's hourly rate at creation time and never recomputed; a later
// rate change does not touch existing reservations.
func (s *DefaultReservationService) Create(userID int, input CreateInput) (*models.Reservation, error) {
	if input.Date == "" || input.Duration < 1 {
		return nil, ErrInvalidInput
	}
	switch input.Period {
	case models.PeriodMorning, models.PeriodAfternoon, models.PeriodEvening:
	default:
		return nil, ErrInvalidInput
	}

	gk, err := s.Goalkeepers.GetByID(input.GoalkeeperID)
	if err != nil {
		return nil, fmt.Errorf("goalkeeper lookup failed: %w", err)
	}
	if gk == nil {
		return nil, ErrGoalkeeperNotFound
	}

	res := &models.Reservation{
		UserID:       userID,
		GoalkeeperID: gk.ID,
		Date:         input.Date,
		Period:       input.Period,
		Duration:     input.Duration,
		TotalPrice:   gk.PricePerHour * float64(input.Duration),
	}
	if err := s.Reservations.Create(res); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return res, nil
}

// ListForUser returns a client's reservations, newest date first.
func (s *DefaultReservationService) ListForUser(userID int) ([]models.Reservation, error) {
	return s.Reservations.ListByUser(userID)
}

// ListForGoalkeeper returns a goalkeeper's received reservations, newest
// date first.
func (s *DefaultReservationService) ListForGoalkeeper(goalkeeperID int) ([]models.Reservation, error) {
	return s.Reservations.ListByGoalkeeper(goalkeeperID)
}

// UpdateStatus transitions a reservation on behalf of an actor. Ownership
// and the per-role transition table are both enforced here; the data layer
// only stores whatever status it is handed.
func (s *DefaultReservationService) UpdateStatus(actorRole models.Role, actorID, reservationID int, target models.ReservationStatus) (*models.Reservation, error) {
	if !target.IsValid() {
		return nil, ErrInvalidTransition
	}

	res, err := s.Reservations.GetByID(reservationID)
	if err != nil {
		return nil, fmt.Errorf("reservation lookup failed: %w", err)
	}
	if res == nil {
		return nil, ErrReservationNotFound
	}

	switch actorRole {
	case models.RoleClient:
		if res.UserID != actorID {
			return nil, ErrNotAllowed
		}
	case models.RoleGoalkeeper:
		if res.GoalkeeperID != actorID {
			return nil, ErrNotAllowed
		}
	default:
		return nil, ErrNotAllowed
	}

	if !res.Status.CanTransition(actorRole, target) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.Reservations.UpdateStatus(reservationID, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}
	if updated == nil {
		return nil, ErrReservationNotFound
	}
	return updated, nil
}
