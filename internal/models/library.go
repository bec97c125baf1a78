package models

// UnknownExerciseName is the display name readers see for a dangling
// exercise reference. Deleting a library entry does not repair routines or
// sessions that point at it, so lookups must degrade instead of failing.
const UnknownExerciseName = "Unknown exercise"

// ResolveExercise looks up an exercise definition, falling back to a
// placeholder carrying the requested id when the library no longer has it.
func (s AppState) ResolveExercise(id string) ExerciseDefinition {
	if def, ok := s.ExerciseByID(id); ok {
		return def
	}
	return ExerciseDefinition{
		ID:                 id,
		Name:               UnknownExerciseName,
		PrimaryMuscleGroup: "Unknown",
	}
}

// BuiltinExercises returns the seed library a fresh install starts with.
// Ids are stable so routines exported from one install resolve on another.
func BuiltinExercises() []ExerciseDefinition {
	return []ExerciseDefinition{
		{
			ID:                    "builtin-barbell-bench-press",
			Name:                  "Barbell Bench Press",
			PrimaryMuscleGroup:    "Chest",
			SecondaryMuscleGroups: []string{"Triceps", "Shoulders"},
			Equipment:             "Barbell",
			Tags:                  []string{"compound", "push"},
		},
		{
			ID:                    "builtin-barbell-back-squat",
			Name:                  "Barbell Back Squat",
			PrimaryMuscleGroup:    "Legs",
			SecondaryMuscleGroups: []string{"Glutes", "Core"},
			Equipment:             "Barbell",
			Tags:                  []string{"compound"},
		},
		{
			ID:                    "builtin-deadlift",
			Name:                  "Deadlift",
			PrimaryMuscleGroup:    "Back",
			SecondaryMuscleGroups: []string{"Hamstrings", "Glutes"},
			Equipment:             "Barbell",
			Tags:                  []string{"compound", "pull"},
		},
		{
			ID:                    "builtin-overhead-press",
			Name:                  "Overhead Press",
			PrimaryMuscleGroup:    "Shoulders",
			SecondaryMuscleGroups: []string{"Triceps"},
			Equipment:             "Barbell",
			Tags:                  []string{"compound", "push"},
		},
		{
			ID:                    "builtin-pull-up",
			Name:                  "Pull-Up",
			PrimaryMuscleGroup:    "Back",
			SecondaryMuscleGroups: []string{"Biceps"},
			Equipment:             "Bodyweight",
			Tags:                  []string{"compound", "pull"},
		},
		{
			ID:                 "builtin-dumbbell-row",
			Name:               "Dumbbell Row",
			PrimaryMuscleGroup: "Back",
			Equipment:          "Dumbbell",
			Tags:               []string{"pull"},
		},
		{
			ID:                 "builtin-dumbbell-curl",
			Name:               "Dumbbell Curl",
			PrimaryMuscleGroup: "Biceps",
			Equipment:          "Dumbbell",
			Tags:               []string{"isolation", "pull"},
		},
		{
			ID:                 "builtin-lateral-raise",
			Name:               "Lateral Raise",
			PrimaryMuscleGroup: "Shoulders",
			Equipment:          "Dumbbell",
			Tags:               []string{"isolation"},
		},
		{
			ID:                    "builtin-leg-press",
			Name:                  "Leg Press",
			PrimaryMuscleGroup:    "Legs",
			SecondaryMuscleGroups: []string{"Glutes"},
			Equipment:             "Machine",
		},
		{
			ID:                    "builtin-romanian-deadlift",
			Name:                  "Romanian Deadlift",
			PrimaryMuscleGroup:    "Hamstrings",
			SecondaryMuscleGroups: []string{"Glutes", "Back"},
			Equipment:             "Barbell",
			Tags:                  []string{"compound"},
		},
		{
			ID:                 "builtin-plank",
			Name:               "Plank",
			PrimaryMuscleGroup: "Core",
			Equipment:          "Bodyweight",
			Tags:               []string{"isometric"},
		},
		{
			ID:                 "builtin-running",
			Name:               "Running",
			PrimaryMuscleGroup: "Cardio",
			Equipment:          "Bodyweight",
			Tags:               []string{"conditioning"},
		},
	}
}
