package memory

import (
	"sync"
	"time"

	"github.com/sleeperview/sleeperview/internal/models"
)

// Repository holds the most recent player-directory snapshot. It stays
// empty unless a refresh job is running; lineup requests fall back to a
// fresh download while no snapshot exists.
type Repository struct {
	players   map[string]models.Player
	fetchedAt time.Time
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SavePlayers(players map[string]models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
	r.fetchedAt = time.Now()
}

func (r *Repository) GetPlayers() (map[string]models.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players, r.players != nil
}

func (r *Repository) FetchedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fetchedAt
}
