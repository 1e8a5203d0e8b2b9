package users

import (
	"sync"
	"time"

	"github.com/installkit/userprep/pkg/logging"
)

// Repository provides cached access to the normalized user list of a profile.
// Interactive frontends re-read the list on every screen; the cache keeps
// that from hitting the filesystem each time.
type Repository struct {
	source        Source
	cacheDuration time.Duration

	mu          sync.RWMutex
	cache       []User
	lastRefresh time.Time
}

// NewRepository creates a new Repository backed by source
func NewRepository(source Source, cacheDuration time.Duration) *Repository {
	return &Repository{
		source:        source,
		cacheDuration: cacheDuration,
	}
}

// Users returns the normalized user list, using cache if still fresh
func (r *Repository) Users() ([]User, error) {
	r.mu.RLock()
	cached := r.cache
	lastRefresh := r.lastRefresh
	r.mu.RUnlock()

	if !lastRefresh.IsZero() && time.Since(lastRefresh) < r.cacheDuration {
		logging.App.Debug("Using cached user list", "cache_age", time.Since(lastRefresh))
		return cached, nil
	}

	return r.refresh()
}

// Refresh forces a reload of the user list from the source
func (r *Repository) Refresh() ([]User, error) {
	logging.App.Debug("Forcing user list refresh")
	return r.refresh()
}

func (r *Repository) refresh() ([]User, error) {
	usersRaw, superusersRaw, err := r.source.Load()
	if err != nil {
		logging.App.Debug("Failed to load users from source", "error", err)
		return nil, err
	}

	parsed, err := ParseUsers(usersRaw, superusersRaw)
	if err != nil {
		logging.App.Debug("Failed to parse user sections", "error", err)
		return nil, err
	}

	r.mu.Lock()
	r.cache = parsed
	r.lastRefresh = time.Now()
	r.mu.Unlock()

	logging.App.Debug("Updated user list cache", "count", len(parsed))
	return parsed, nil
}
