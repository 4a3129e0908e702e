package gkRepo

import (
	"sync"
	"time"

	"goleironow/models"
)

// MemoryGoalkeeperRepo implements GoalkeeperRepository over an in-memory
// collection with simulated round-trip latency and failure injection.
type MemoryGoalkeeperRepo struct {
	mu          sync.Mutex
	goalkeepers []models.Goalkeeper
	latency     time.Duration
	failure     error
}

// NewMemoryGoalkeeperRepo creates a memory repository seeded with the given
// goalkeeper profiles.
func NewMemoryGoalkeeperRepo(seed []models.Goalkeeper, latency time.Duration) *MemoryGoalkeeperRepo {
	gks := make([]models.Goalkeeper, len(seed))
	for i := range seed {
		gks[i] = cloneGoalkeeper(seed[i])
	}
	return &MemoryGoalkeeperRepo{goalkeepers: gks, latency: latency}
}

// SetFailure makes every subsequent call return err. Pass nil to clear.
func (r *MemoryGoalkeeperRepo) SetFailure(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure = err
}

func (r *MemoryGoalkeeperRepo) roundTrip() error {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

func cloneGoalkeeper(g models.Goalkeeper) models.Goalkeeper {
	out := g
	if g.Availability != nil {
		out.Availability = make(map[string][]string, len(g.Availability))
		for day, periods := range g.Availability {
			out.Availability[day] = append([]string(nil), periods...)
		}
	}
	return out
}

func (r *MemoryGoalkeeperRepo) GetByID(id int) (*models.Goalkeeper, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.goalkeepers {
		if r.goalkeepers[i].ID == id {
			g := cloneGoalkeeper(r.goalkeepers[i])
			return &g, nil
		}
	}
	return nil, nil
}

func (r *MemoryGoalkeeperRepo) GetAll() ([]models.Goalkeeper, error) {
	if err := r.roundTrip(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Goalkeeper, len(r.goalkeepers))
	for i := range r.goalkeepers {
		out[i] = cloneGoalkeeper(r.goalkeepers[i])
	}
	return out, nil
}

func (r *MemoryGoalkeeperRepo) Create(gk *models.Goalkeeper) error {
	if err := r.roundTrip(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	maxID := 0
	for i := range r.goalkeepers {
		if r.goalkeepers[i].ID > maxID {
			maxID = r.goalkeepers[i].ID
		}
	}
	gk.ID = maxID + 1
	r.goalkeepers = append(r.goalkeepers, cloneGoalkeeper(*gk))
	return nil
}

func (r *MemoryGoalkeeperRepo) Update(gk *models.Goalkeeper) error {
	if err := r.roundTrip(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.goalkeepers {
		if r.goalkeepers[i].ID == gk.ID {
			r.goalkeepers[i] = cloneGoalkeeper(*gk)
			return nil
		}
	}
	return ErrGoalkeeperNotFound
}
