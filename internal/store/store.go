// Package store owns the single in-memory state document. All mutation goes
// through its action API: actions assign missing ids, run the reducer, kick
// off a fire-and-forget persistence write, and return the resolved entity
// synchronously. Snapshots handed out by State are read-only by contract.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// StateKey is the fixed storage key the whole state document lives under.
const StateKey = "workoutlogger_APP_STATE_V1"

var (
	// ErrRoutineNotFound reports an update or session start against a
	// routine id that is not in the current state.
	ErrRoutineNotFound = errors.New("store: routine not found")

	// ErrExerciseNotFound reports an update against an unknown library id.
	ErrExerciseNotFound = errors.New("store: exercise not found")
)

// Store holds the state document and its persistence wiring. Construct one
// per process at the composition root and inject it; it has no package-level
// instance.
type Store struct {
	mu    sync.RWMutex
	state models.AppState

	kv  storage.KV
	log *slog.Logger

	newID func() string
	now   func() time.Time

	writes sync.WaitGroup
}

// New returns a store holding the default empty document, without touching
// storage. Most callers want Open.
func New(kv storage.KV, log *slog.Logger) *Store {
	return &Store{
		state: models.DefaultState(),
		kv:    kv,
		log:   log,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Open returns a store hydrated from storage. A missing document means a
// fresh install and seeds the built-in exercise library; an unreadable or
// unparsable document is logged and the default empty state is kept, so
// startup never fails on bad persisted data.
func Open(ctx context.Context, kv storage.KV, log *slog.Logger) *Store {
	s := New(kv, log)

	data, err := kv.Read(ctx, StateKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.state.ExerciseLibrary = models.BuiltinExercises()
		log.Info("no persisted state, seeding exercise library",
			"exercises", len(s.state.ExerciseLibrary))
	case err != nil:
		log.Warn("failed to read app state, keeping defaults", "error", err)
	default:
		var doc models.AppState
		if err := json.Unmarshal(data, &doc); err != nil {
			log.Warn("failed to parse app state, keeping defaults", "error", err)
			break
		}
		if doc.SchemaVersion > models.CurrentSchemaVersion {
			log.Warn("persisted state has newer schema, keeping defaults",
				"version", doc.SchemaVersion)
			break
		}
		if doc.SchemaVersion == 0 {
			doc.SchemaVersion = models.CurrentSchemaVersion
		}
		s.state = Reduce(s.state, Hydrate{State: doc})
	}
	return s
}

// State returns the current document. Callers must treat it as a read-only
// snapshot: the top-level value is a copy, nested slices are shared.
func (s *Store) State() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// dispatch runs the reducer and schedules a persistence write of the new
// document. The write is never awaited here: in-memory state is the source
// of truth for the running process and write failures are only logged.
func (s *Store) dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state
	s.mu.Unlock()

	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.write(context.Background(), snapshot); err != nil {
			s.log.Warn("failed to persist app state", "error", err)
		}
	}()
}

func (s *Store) write(ctx context.Context, snapshot models.AppState) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding app state: %w", err)
	}
	if err := s.kv.Write(ctx, StateKey, data); err != nil {
		return fmt.Errorf("writing app state: %w", err)
	}
	return nil
}

// Save synchronously flushes the current document, waiting out any in-flight
// background writes first. Shutdown paths and CLIs use this; the action API
// never does.
func (s *Store) Save(ctx context.Context) error {
	s.writes.Wait()
	return s.write(ctx, s.State())
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// --- Profile ---

// SaveProfile replaces the singleton profile, assigning an id and creation
// timestamp on first save.
func (s *Store) SaveProfile(p models.UserProfile) models.UserProfile {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt == "" {
		p.CreatedAt = s.timestamp()
	}
	if p.UnitSystem == "" {
		p.UnitSystem = models.UnitMetric
	}
	s.dispatch(SetProfile{Profile: p})
	return p
}

// --- Routines ---

// normalizeRoutine fills missing nested ids and repairs order indices before
// a routine enters the state tree. Entities perform no validation themselves;
// this boundary is where the order invariant is enforced.
func (s *Store) normalizeRoutine(r *models.Routine) {
	if r.ScheduledWeekdays == nil {
		r.ScheduledWeekdays = []int{}
	}
	if r.Exercises == nil {
		r.Exercises = []models.RoutineExercise{}
	}
	for i := range r.Exercises {
		ex := &r.Exercises[i]
		if ex.ID == "" {
			ex.ID = s.newID()
		}
		if ex.SetTemplates == nil {
			ex.SetTemplates = []models.RoutineSetTemplate{}
		}
		for j := range ex.SetTemplates {
			if ex.SetTemplates[j].ID == "" {
				ex.SetTemplates[j].ID = s.newID()
			}
		}
	}
	r.NormalizeOrder()
}

// CreateRoutine stores a new routine under a fresh id.
func (s *Store) CreateRoutine(r models.Routine) models.Routine {
	r.ID = s.newID()
	s.normalizeRoutine(&r)
	s.dispatch(UpsertRoutine{Routine: r})
	return r
}

// UpdateRoutine replaces an existing routine; ErrRoutineNotFound if the id
// is unknown.
func (s *Store) UpdateRoutine(r models.Routine) (models.Routine, error) {
	s.mu.RLock()
	_, ok := s.state.RoutineByID(r.ID)
	s.mu.RUnlock()
	if !ok {
		return models.Routine{}, ErrRoutineNotFound
	}
	s.normalizeRoutine(&r)
	s.dispatch(UpsertRoutine{Routine: r})
	return r, nil
}

// SaveRoutine is the optional-id convenience over Create/Update: a supplied
// id means update-or-insert-with-that-id, an empty id means create.
func (s *Store) SaveRoutine(r models.Routine) models.Routine {
	if r.ID == "" {
		return s.CreateRoutine(r)
	}
	s.normalizeRoutine(&r)
	s.dispatch(UpsertRoutine{Routine: r})
	return r
}

// DeleteRoutine removes a routine. Deleting an unknown id is a no-op.
func (s *Store) DeleteRoutine(id string) {
	s.dispatch(DeleteRoutine{ID: id})
}

// --- Exercise library ---

// CreateExercise stores a new library entry under a fresh id.
func (s *Store) CreateExercise(def models.ExerciseDefinition) models.ExerciseDefinition {
	def.ID = s.newID()
	s.dispatch(UpsertExerciseDefinition{Definition: def})
	return def
}

// UpdateExercise replaces an existing library entry; ErrExerciseNotFound if
// the id is unknown.
func (s *Store) UpdateExercise(def models.ExerciseDefinition) (models.ExerciseDefinition, error) {
	s.mu.RLock()
	_, ok := s.state.ExerciseByID(def.ID)
	s.mu.RUnlock()
	if !ok {
		return models.ExerciseDefinition{}, ErrExerciseNotFound
	}
	s.dispatch(UpsertExerciseDefinition{Definition: def})
	return def, nil
}

// SaveExercise is the optional-id convenience over Create/Update.
func (s *Store) SaveExercise(def models.ExerciseDefinition) models.ExerciseDefinition {
	if def.ID == "" {
		return s.CreateExercise(def)
	}
	s.dispatch(UpsertExerciseDefinition{Definition: def})
	return def
}

// DeleteExercise removes a library entry. Routines and sessions that
// reference it are left untouched; readers resolve the dangling id to the
// unknown-exercise placeholder.
func (s *Store) DeleteExercise(id string) {
	s.dispatch(DeleteExerciseDefinition{ID: id})
}

// --- Sessions ---

// LogSession appends a session to history under a fresh id. History is
// append-only; there is no update path for logged sessions.
func (s *Store) LogSession(sess models.WorkoutSession) models.WorkoutSession {
	sess.ID = s.newID()
	if sess.StartedAt == "" {
		sess.StartedAt = s.timestamp()
	}
	if sess.PerformedExercises == nil {
		sess.PerformedExercises = []models.PerformedExercise{}
	}
	s.dispatch(AddWorkoutSession{Session: sess})
	return sess
}

// --- Settings ---

// SetNotificationSettings replaces the reminder settings.
func (s *Store) SetNotificationSettings(settings models.NotificationSettings) {
	s.dispatch(SetNotificationSettings{Settings: settings})
}

// ResetAll wipes everything back to the default empty document.
func (s *Store) ResetAll() {
	s.dispatch(ResetAll{})
}
