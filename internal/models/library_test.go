package models

import "testing"

// TestResolveExerciseKnown verifies a present library entry resolves to itself.
func TestResolveExerciseKnown(t *testing.T) {
	s := DefaultState()
	s.ExerciseLibrary = []ExerciseDefinition{{ID: "e1", Name: "Deadlift", PrimaryMuscleGroup: "Back"}}

	got := s.ResolveExercise("e1")
	if got.Name != "Deadlift" {
		t.Errorf("name = %q, want %q", got.Name, "Deadlift")
	}
}

// TestResolveExerciseDangling verifies a deleted or never-known id resolves
// to the placeholder instead of failing, keeping the original id.
func TestResolveExerciseDangling(t *testing.T) {
	s := DefaultState()

	got := s.ResolveExercise("gone")
	if got.Name != UnknownExerciseName {
		t.Errorf("name = %q, want %q", got.Name, UnknownExerciseName)
	}
	if got.ID != "gone" {
		t.Errorf("id = %q, want %q", got.ID, "gone")
	}
}

// TestResolveExerciseDuplicateIDs verifies that with duplicate ids in the
// library (possible after an unvalidated import) the first entry wins.
func TestResolveExerciseDuplicateIDs(t *testing.T) {
	s := DefaultState()
	s.ExerciseLibrary = []ExerciseDefinition{
		{ID: "dup", Name: "First"},
		{ID: "dup", Name: "Second"},
	}

	if got := s.ResolveExercise("dup"); got.Name != "First" {
		t.Errorf("name = %q, want %q", got.Name, "First")
	}
}

// TestBuiltinExercisesWellFormed verifies seed entries have unique ids, a
// name, a muscle group, and are not flagged as user-created.
func TestBuiltinExercisesWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range BuiltinExercises() {
		if def.ID == "" || def.Name == "" || def.PrimaryMuscleGroup == "" {
			t.Errorf("incomplete seed exercise: %+v", def)
		}
		if seen[def.ID] {
			t.Errorf("duplicate seed id %q", def.ID)
		}
		seen[def.ID] = true
		if def.IsCustom {
			t.Errorf("seed exercise %q marked custom", def.ID)
		}
	}
}

// TestDefaultStateShape verifies the fresh-install document: no profile,
// empty non-nil collections, reminders disabled at hour 18.
func TestDefaultStateShape(t *testing.T) {
	s := DefaultState()
	if s.UserProfile != nil {
		t.Error("userProfile should be nil")
	}
	if s.Routines == nil || len(s.Routines) != 0 {
		t.Errorf("routines = %v, want empty slice", s.Routines)
	}
	if s.ExerciseLibrary == nil || len(s.ExerciseLibrary) != 0 {
		t.Errorf("exerciseLibrary = %v, want empty slice", s.ExerciseLibrary)
	}
	if s.WorkoutHistory == nil || len(s.WorkoutHistory) != 0 {
		t.Errorf("workoutHistory = %v, want empty slice", s.WorkoutHistory)
	}
	if s.NotificationSettings.Enabled {
		t.Error("notifications should start disabled")
	}
	if s.NotificationSettings.DefaultReminderHour != 18 {
		t.Errorf("defaultReminderHour = %d, want 18", s.NotificationSettings.DefaultReminderHour)
	}
	if s.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("schemaVersion = %d, want %d", s.SchemaVersion, CurrentSchemaVersion)
	}
}
