package models

// CurrentSchemaVersion is the version written into every persisted or
// exported document. Documents without a version field are treated as
// version 1 on import.
const CurrentSchemaVersion = 1

// AppState is the root persisted document: the unit of persistence and of
// export/import. The whole tree is serialized as one JSON object.
type AppState struct {
	SchemaVersion          int                  `json:"schemaVersion"`
	UserProfile            *UserProfile         `json:"userProfile"`
	Routines               []Routine            `json:"routines"`
	ExerciseLibrary        []ExerciseDefinition `json:"exerciseLibrary"`
	WorkoutHistory         []WorkoutSession     `json:"workoutHistory"`
	NotificationSettings   NotificationSettings `json:"notificationSettings"`
	LastAnalyticsRebuildAt string               `json:"lastAnalyticsRebuildAt,omitempty"`
}

// DefaultState returns the empty document a fresh install starts from:
// no profile, empty collections, reminders disabled at 18:00.
func DefaultState() AppState {
	return AppState{
		SchemaVersion:   CurrentSchemaVersion,
		UserProfile:     nil,
		Routines:        []Routine{},
		ExerciseLibrary: []ExerciseDefinition{},
		WorkoutHistory:  []WorkoutSession{},
		NotificationSettings: NotificationSettings{
			Enabled:             false,
			DefaultReminderHour: 18,
		},
	}
}

// RoutineByID returns the first routine with the given id.
func (s AppState) RoutineByID(id string) (Routine, bool) {
	for _, r := range s.Routines {
		if r.ID == id {
			return r, true
		}
	}
	return Routine{}, false
}

// SessionByID returns the first workout session with the given id.
func (s AppState) SessionByID(id string) (WorkoutSession, bool) {
	for _, w := range s.WorkoutHistory {
		if w.ID == id {
			return w, true
		}
	}
	return WorkoutSession{}, false
}

// ExerciseByID returns the first library entry with the given id.
func (s AppState) ExerciseByID(id string) (ExerciseDefinition, bool) {
	for _, e := range s.ExerciseLibrary {
		if e.ID == id {
			return e, true
		}
	}
	return ExerciseDefinition{}, false
}
