package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

const janitorInterval = 10 * time.Minute

// Store keeps live checkout sessions in memory. Sessions are transient by
// design: selection state is rebuilt on checkout entry, so nothing here is
// persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   *zap.Logger
}

func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "checkout session", ID: id.String()}
	}
	return s, nil
}

func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// PruneExpired drops sessions idle longer than the TTL and returns how many
func (st *Store) PruneExpired() int {
	now := time.Now()
	st.mu.Lock()
	defer st.mu.Unlock()
	pruned := 0
	for id, s := range st.sessions {
		if s.IdleSince(now) > st.ttl {
			delete(st.sessions, id)
			pruned++
		}
	}
	return pruned
}

// RunJanitor prunes expired sessions on an interval until ctx is done.
// Intended to run in its own goroutine from main.
func (st *Store) RunJanitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.PruneExpired(); n > 0 {
				st.logger.Info("Pruned expired checkout sessions", zap.Int("count", n))
			}
		}
	}
}
