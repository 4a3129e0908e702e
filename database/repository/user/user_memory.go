package userRepo

import (
	"sync"
	"time"

	"goleironow/models"
)

// MemoryUserRepo implements UserRepository over an in-memory collection.
// It mimics a remote service boundary: every call sleeps a simulated
// round-trip latency, returns deep copies, and can be forced to fail.
type MemoryUserRepo struct {
	mu      sync.Mutex
	users   []models.User
	latency time.Duration
	failure error
}

// NewMemoryUserRepo creates a memory repository seeded with the given users.
func NewMemoryUserRepo(seed []models.User, latency time.Duration) *MemoryUserRepo {
	users := make([]models.User, len(seed))
	for i := range seed {
		users[i] = cloneUser(seed[i])
	}
	return &MemoryUserRepo{users: users, latency: latency}
}

// SetFailure makes every subsequent call return err. Pass nil to clear.
func (r *MemoryUserRepo) SetFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure = err
}

// roundTrip simulates the network hop. Runs outside the data lock.
func (r *MemoryUserRepo) roundTrip() error {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

func cloneUser(u models.User) models.User {
	out := u
	out.Favorites = append([]int(nil), u.Favorites...)
	return out
}

func (r *MemoryUserRepo) GetByID(id int) (*models.User, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := cloneUser(r.users[i])
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) GetAll() ([]models.User, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.users))
	for i := range r.users {
		out[i] = cloneUser(r.users[i])
	}
	return out, nil
}

func (r *MemoryUserRepo) Update(user *models.User) error {
	if err := r.roundTrip(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = cloneUser(*user)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *MemoryUserRepo) ToggleFavorite(userID, goalkeeperID int) (*models.User, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID != userID {
			continue
		}
		favs := r.users[i].Favorites
		removed := false
		for j, id := range favs {
			if id == goalkeeperID {
				r.users[i].Favorites = append(favs[:j], favs[j+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			r.users[i].Favorites = append(favs, goalkeeperID)
		}
		u := cloneUser(r.users[i])
		return &u, nil
	}
	return nil, nil
}
