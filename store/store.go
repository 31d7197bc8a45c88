package store

import (
	"encoding/json"
	"sync"

	"github.com/lokafit/lokafit/model"
)

// Namespace is the key under which the serialized snapshot is persisted.
// It must stay stable across releases, otherwise users lose their cached
// wardrobe on upgrade.
const Namespace = "lokafit-user-store"

// Snapshot is the whole client state at a point in time. Consumers receive
// copies, so a snapshot never changes after it was read.
type Snapshot struct {
	User           *model.Profile  `json:"user"`
	Garments       []model.Garment `json:"garments"`
	SkinToneResult *model.SkinTone `json:"skinToneResult"`
	IsLoggedIn     bool            `json:"isLoggedIn"`
	IsLoading      bool            `json:"isLoading"`
}

// Reducer produces the next state from the previous one. Reducers must not
// mutate the input snapshot. The store applies reducers under its own lock:
// concurrent callers are serialized, but the last write still wins.
type Reducer func(state Snapshot) Snapshot

func SetUser(user *model.Profile) Reducer {
	return func(state Snapshot) Snapshot {
		state.User = user
		return state
	}
}

func SetGarments(garments []model.Garment) Reducer {
	return func(state Snapshot) Snapshot {
		state.Garments = garments
		return state
	}
}

// AddGarment prepends: the wardrobe is kept most-recent-first.
func AddGarment(garment model.Garment) Reducer {
	return func(state Snapshot) Snapshot {
		garments := make([]model.Garment, 0, len(state.Garments)+1)
		garments = append(garments, garment)
		garments = append(garments, state.Garments...)
		state.Garments = garments

		return state
	}
}

func SetSkinTone(result *model.SkinTone) Reducer {
	return func(state Snapshot) Snapshot {
		state.SkinToneResult = result
		return state
	}
}

func SetIsLoggedIn(isLoggedIn bool) Reducer {
	return func(state Snapshot) Snapshot {
		state.IsLoggedIn = isLoggedIn
		return state
	}
}

func SetIsLoading(isLoading bool) Reducer {
	return func(state Snapshot) Snapshot {
		state.IsLoading = isLoading
		return state
	}
}

// Clear wipes everything except the loading flag: an operation that is still
// in flight keeps its indicator until it finishes.
func Clear() Reducer {
	return func(state Snapshot) Snapshot {
		return Snapshot{IsLoading: state.IsLoading}
	}
}

// SnapshotsRepository persists the serialized snapshot under the store
// namespace.
type SnapshotsRepository interface {
	Load() ([]byte, error)
	Save(blob []byte) error
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

// Store holds the current snapshot and writes every new state through to the
// snapshots repository. It performs no validation: keeping isLoggedIn in sync
// with user is the caller's duty.
type Store struct {
	Emitter

	lock  sync.RWMutex
	state Snapshot
	repo  SnapshotsRepository
}

// New restores the last persisted snapshot from the repository. A missing,
// empty or undecodable blob yields a fresh state; fields unknown to the
// current snapshot shape are silently dropped.
func New(repo SnapshotsRepository, emitter Emitter) (*Store, error) {
	store := &Store{
		Emitter: emitter,
		repo:    repo,
	}

	blob, err := repo.Load()
	if err != nil {
		return nil, err
	}

	if len(blob) != 0 {
		// A stale blob persisted by an older release is not an error
		_ = json.Unmarshal(blob, &store.state)
	}

	return store, nil
}

func (s *Store) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()

	state := s.state
	state.Garments = append([]model.Garment(nil), s.state.Garments...)

	return state
}

func (s *Store) SetUser(user *model.Profile) {
	s.Apply(SetUser(user))
}

func (s *Store) SetGarments(garments []model.Garment) {
	s.Apply(SetGarments(garments))
}

func (s *Store) AddGarment(garment model.Garment) {
	s.Apply(AddGarment(garment))
}

func (s *Store) SetSkinTone(result *model.SkinTone) {
	s.Apply(SetSkinTone(result))
}

func (s *Store) SetIsLoggedIn(isLoggedIn bool) {
	s.Apply(SetIsLoggedIn(isLoggedIn))
}

func (s *Store) SetIsLoading(isLoading bool) {
	s.Apply(SetIsLoading(isLoading))
}

func (s *Store) Clear() {
	s.Apply(Clear())
}

// Apply runs the reducers in order against the current state and persists the
// result. Persistence failures don't roll the state back, they are only
// reported on the bus.
func (s *Store) Apply(reducers ...Reducer) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, reducer := range reducers {
		s.state = reducer(s.state)
	}

	blob, err := json.Marshal(s.state)
	if err == nil {
		err = s.repo.Save(blob)
	}

	if err != nil {
		s.emit("store:persist:error", err)
	}
}

func (s *Store) emit(topic string, args ...interface{}) {
	if s.Emitter == nil {
		return
	}

	s.Emit(topic, args...)
}
