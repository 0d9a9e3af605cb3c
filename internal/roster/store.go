package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ecofuture-uz/content-service/internal/domain"
)

// SnapshotKey is the single storage slot holding the persisted roster.
const SnapshotKey = "teamMembers"

// KV is the narrow persistence port the store needs. Redis provides it in
// production; tests use an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the in-memory roster and its persisted snapshot. It is
// constructed once at process start; there is no package-level roster.
type Store struct {
	mu       sync.RWMutex
	kv       KV
	logger   *zap.Logger
	defaults func() []domain.TeamMember
	members  []domain.TeamMember
}

// NewStore builds a store over the given key-value port. defaults computes
// the roster used when no usable snapshot exists.
func NewStore(kv KV, logger *zap.Logger, defaults func() []domain.TeamMember) *Store {
	return &Store{kv: kv, logger: logger, defaults: defaults}
}

// Load initializes the roster. A previously persisted snapshot wins
// wholesale over the computed default; with no snapshot the default is
// computed and persisted. A snapshot that fails to decode or validate is
// discarded and the default is used without re-storing it.
func (s *Store) Load(ctx context.Context) ([]domain.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.kv.Get(ctx, SnapshotKey)
	if err != nil {
		s.logger.Warn("roster snapshot read failed; using computed defaults", zap.Error(err))
		s.members = s.defaults()
		return s.copyLocked(), nil
	}

	if found {
		snapshot, err := decodeSnapshot(raw)
		if err == nil {
			s.members = snapshot
			return s.copyLocked(), nil
		}
		s.logger.Warn("discarding corrupt roster snapshot", zap.Error(err))
	}

	s.members = s.defaults()
	if !found {
		if err := s.persistLocked(ctx); err != nil {
			s.logger.Warn("unable to persist default roster", zap.Error(err))
		}
	}
	return s.copyLocked(), nil
}

// Members returns a copy of the current roster in canonical order.
func (s *Store) Members() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// UpdatePhoto replaces one member's image reference and rewrites the whole
// snapshot. The previous slice is never mutated; callers holding it keep the
// old view. An unknown id leaves the roster untouched.
func (s *Store) UpdatePhoto(ctx context.Context, id int, image string) []domain.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := make([]domain.TeamMember, len(s.members))
	for i, member := range s.members {
		if member.ID == id {
			member.Image = image
			found = true
		}
		next[i] = member
	}

	if !found {
		return s.copyLocked()
	}

	s.members = next
	if err := s.persistLocked(ctx); err != nil {
		s.logger.Warn("unable to persist roster snapshot", zap.Error(err))
	}
	return s.copyLocked()
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.members)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, SnapshotKey, string(data))
}

func (s *Store) copyLocked() []domain.TeamMember {
	out := make([]domain.TeamMember, len(s.members))
	copy(out, s.members)
	return out
}

// decodeSnapshot parses and validates a persisted roster. Any shape
// mismatch, a missing field, a non-positive or duplicate id, makes the whole
// snapshot corrupt; there are no partial recoveries.
func decodeSnapshot(raw string) ([]domain.TeamMember, error) {
	var snapshot []domain.TeamMember
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, errors.New("empty roster snapshot")
	}

	seen := make(map[int]struct{}, len(snapshot))
	for i, member := range snapshot {
		if member.ID <= 0 {
			return nil, fmt.Errorf("member %d: missing or invalid id", i)
		}
		if _, dup := seen[member.ID]; dup {
			return nil, fmt.Errorf("member %d: duplicate id %d", i, member.ID)
		}
		seen[member.ID] = struct{}{}
		if member.Name == "" || member.Role == "" || member.Category == "" || member.Image == "" {
			return nil, fmt.Errorf("member %d: incomplete record", i)
		}
	}
	return snapshot, nil
}
