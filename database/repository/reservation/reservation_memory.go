package reservationRepo

import (
	"sort"
	"sync"
	"time"

	"goleironow/models"
)

// MemoryReservationRepo implements ReservationRepository over an in-memory
// collection with simulated round-trip latency and failure injection.
type MemoryReservationRepo struct {
	mu           sync.Mutex
	reservations []models.Reservation
	latency      time.Duration
	failure      error
}

// NewMemoryReservationRepo creates a memory repository seeded with the given
// reservations.
func NewMemoryReservationRepo(seed []models.Reservation, latency time.Duration) *MemoryReservationRepo {
	res := append([]models.Reservation(nil), seed...)
	return &MemoryReservationRepo{reservations: res, latency: latency}
}

// SetFailure makes every subsequent call return err. Pass nil to clear.
func (r *MemoryReservationRepo) SetFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure = err
}

func (r *MemoryReservationRepo) roundTrip() error {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

func (r *MemoryReservationRepo) Create(res *models.Reservation) error {
	if err := r.roundTrip(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for i := range r.reservations {
		if r.reservations[i].ID > maxID {
			maxID = r.reservations[i].ID
		}
	}
	res.ID = maxID + 1
	res.Status = models.StatusPending
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *MemoryReservationRepo) GetByID(id int) (*models.Reservation, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, nil
}

func (r *MemoryReservationRepo) ListByUser(userID int) ([]models.Reservation, error) {
	return r.list(func(res *models.Reservation) bool { return res.UserID == userID })
}

func (r *MemoryReservationRepo) ListByGoalkeeper(goalkeeperID int) ([]models.Reservation, error) {
	return r.list(func(res *models.Reservation) bool { return res.GoalkeeperID == goalkeeperID })
}

func (r *MemoryReservationRepo) list(match func(*models.Reservation) bool) ([]models.Reservation, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Reservation
	for i := range r.reservations {
		if match(&r.reservations[i]) {
			out = append(out, r.reservations[i])
		}
	}
	// Dates are ISO formatted, so lexicographic order is date order.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *MemoryReservationRepo) UpdateStatus(id int, status models.ReservationStatus) (*models.Reservation, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			r.reservations[i].Status = status
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, nil
}
