package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"legalzen-backend/models"
)

// SessionRepository is the process-wide store of analyzed documents.
// Entries never expire on their own; Sweep applies the retention policy.
type SessionRepository struct {
	cache *cache.Cache
	// serializes writers so a sweep never removes a session replaced mid-scan
	mu sync.Mutex
}

// NewSessionRepository creates an empty session store
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Put stores a session under its key, replacing any previous entry
func (r *SessionRepository) Put(session *models.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(session.Key, session, cache.NoExpiration)
}

// Get returns the session stored under key
func (r *SessionRepository) Get(key string) (*models.Session, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(*models.Session), true
	}
	return nil, false
}

// Delete removes the session stored under key, if any
func (r *SessionRepository) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(key)
}

// Count returns the number of stored sessions
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// List returns all sessions ordered by key
func (r *SessionRepository) List() []*models.Session {
	items := r.cache.Items()
	sessions := make([]*models.Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.Object.(*models.Session))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Key < sessions[j].Key
	})
	return sessions
}

// Latest returns the session with the greatest key. Upload keys are
// timestamps, so this is the most recent upload unless a reserved key
// sorts after it.
func (r *SessionRepository) Latest() (*models.Session, bool) {
	sessions := r.List()
	if len(sessions) == 0 {
		return nil, false
	}
	return sessions[len(sessions)-1], true
}

// Sweep removes sessions created more than retention before now, skipping
// protected keys, and returns the removed keys in order.
func (r *SessionRepository) Sweep(now time.Time, retention time.Duration, protected ...string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keep := make(map[string]struct{}, len(protected))
	for _, key := range protected {
		keep[key] = struct{}{}
	}

	var removed []string
	for key, item := range r.cache.Items() {
		if _, ok := keep[key]; ok {
			continue
		}
		session, ok := item.Object.(*models.Session)
		if ok && now.Sub(session.UploadTime) <= retention {
			continue
		}
		r.cache.Delete(key)
		removed = append(removed, key)
	}
	sort.Strings(removed)
	return removed
}
