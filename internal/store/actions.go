package store

import "github.com/claude/liftlog/internal/models"

// Action is one state transition request. The concrete types below are the
// full set the reducer understands; anything else leaves state untouched.
type Action interface {
	isAction()
}

// Hydrate replaces the entire state with a loaded document, verbatim.
type Hydrate struct {
	State models.AppState
}

// SetProfile replaces the user profile wholesale.
type SetProfile struct {
	Profile models.UserProfile
}

// UpsertRoutine replaces the routine with the same id in place, or appends.
type UpsertRoutine struct {
	Routine models.Routine
}

// DeleteRoutine removes the routine with the given id; no-op if absent.
type DeleteRoutine struct {
	ID string
}

// AddWorkoutSession appends to history. Sessions are never updated after
// logging, only appended.
type AddWorkoutSession struct {
	Session models.WorkoutSession
}

// UpsertExerciseDefinition replaces the library entry with the same id in
// place, or appends.
type UpsertExerciseDefinition struct {
	Definition models.ExerciseDefinition
}

// DeleteExerciseDefinition removes the library entry with the given id.
// Routines and sessions referencing it keep their dangling reference.
type DeleteExerciseDefinition struct {
	ID string
}

// SetNotificationSettings replaces the notification settings wholesale.
type SetNotificationSettings struct {
	Settings models.NotificationSettings
}

// ResetAll replaces the entire state with the default empty document.
type ResetAll struct{}

func (Hydrate) isAction()                  {}
func (SetProfile) isAction()               {}
func (UpsertRoutine) isAction()            {}
func (DeleteRoutine) isAction()            {}
func (AddWorkoutSession) isAction()        {}
func (UpsertExerciseDefinition) isAction() {}
func (DeleteExerciseDefinition) isAction() {}
func (SetNotificationSettings) isAction()  {}
func (ResetAll) isAction()                 {}

// Reduce is the pure transition function over the state document. It never
// mutates its input: collection changes are built on fresh slices, so older
// snapshots stay valid.
func Reduce(state models.AppState, action Action) models.AppState {
	switch a := action.(type) {
	case Hydrate:
		return a.State

	case SetProfile:
		profile := a.Profile
		state.UserProfile = &profile
		return state

	case UpsertRoutine:
		state.Routines = upsertRoutine(state.Routines, a.Routine)
		return state

	case DeleteRoutine:
		routines := make([]models.Routine, 0, len(state.Routines))
		for _, r := range state.Routines {
			if r.ID != a.ID {
				routines = append(routines, r)
			}
		}
		state.Routines = routines
		return state

	case AddWorkoutSession:
		history := make([]models.WorkoutSession, 0, len(state.WorkoutHistory)+1)
		history = append(history, state.WorkoutHistory...)
		state.WorkoutHistory = append(history, a.Session)
		return state

	case UpsertExerciseDefinition:
		state.ExerciseLibrary = upsertExercise(state.ExerciseLibrary, a.Definition)
		return state

	case DeleteExerciseDefinition:
		library := make([]models.ExerciseDefinition, 0, len(state.ExerciseLibrary))
		for _, e := range state.ExerciseLibrary {
			if e.ID != a.ID {
				library = append(library, e)
			}
		}
		state.ExerciseLibrary = library
		return state

	case SetNotificationSettings:
		state.NotificationSettings = a.Settings
		return state

	case ResetAll:
		return models.DefaultState()

	default:
		return state
	}
}

// upsertRoutine replaces the first routine with a matching id, preserving
// its position, or appends when no routine matches.
func upsertRoutine(list []models.Routine, r models.Routine) []models.Routine {
	out := make([]models.Routine, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == r.ID {
			out[i] = r
			return out
		}
	}
	return append(out, r)
}

func upsertExercise(list []models.ExerciseDefinition, def models.ExerciseDefinition) []models.ExerciseDefinition {
	out := make([]models.ExerciseDefinition, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == def.ID {
			out[i] = def
			return out
		}
	}
	return append(out, def)
}
