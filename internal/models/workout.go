package models

// UnitSystem selects how weights and body measurements are displayed.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// RoutineSetTemplate is one planned set inside a RoutineExercise. It stores
// targets, not performed values: "8 reps @ 60kg" as a suggestion.
type RoutineSetTemplate struct {
	ID            string   `json:"id"`
	TargetReps    *int     `json:"targetReps,omitempty"`
	TargetTimeSec *int     `json:"targetTimeSec,omitempty"`
	TargetWeight  *float64 `json:"targetWeight,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// ExerciseDefinition is an entry in the exercise library, built-in or
// user-created.
type ExerciseDefinition struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	PrimaryMuscleGroup    string   `json:"primaryMuscleGroup"`
	SecondaryMuscleGroups []string `json:"secondaryMuscleGroups,omitempty"`
	Equipment             string   `json:"equipment,omitempty"`
	IsCustom              bool     `json:"isCustom"`
	Instructions          string   `json:"instructions,omitempty"`
	VideoURL              string   `json:"videoUrl,omitempty"`
	Tags                  []string `json:"tags,omitempty"`
}

// RoutineExercise places an exercise inside a routine with its own order and
// set plan. OrderIndex values within one routine form a contiguous 0-based
// sequence; the mutation helpers in routine.go maintain that.
type RoutineExercise struct {
	ID                     string               `json:"id"`
	ExerciseID             string               `json:"exerciseId"`
	OrderIndex             int                  `json:"orderIndex"`
	SetTemplates           []RoutineSetTemplate `json:"setTemplates"`
	RestSecondsBetweenSets *int                 `json:"restSecondsBetweenSets,omitempty"`
}

// Routine is a reusable workout template ("Push Day A", "Legs"). It owns its
// exercises and their set templates by composition.
type Routine struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	IsFavorite        bool              `json:"isFavorite"`
	ScheduledWeekdays []int             `json:"scheduledWeekdays"`
	Exercises         []RoutineExercise `json:"exercises"`
	LastUsedAt        string            `json:"lastUsedAt,omitempty"`
}

// PerformedSet is one set the user actually did during a session. Only
// completed sets count toward statistics.
type PerformedSet struct {
	ID                   string   `json:"id"`
	RoutineSetTemplateID string   `json:"routineSetTemplateId,omitempty"`
	Reps                 *int     `json:"reps,omitempty"`
	TimeSec              *int     `json:"timeSec,omitempty"`
	Weight               *float64 `json:"weight,omitempty"`
	IsCompleted          bool     `json:"isCompleted"`
	RPE                  *float64 `json:"rpe,omitempty"`
	Notes                string   `json:"notes,omitempty"`
}

// PerformedExercise is one exercise performed during a session. ExerciseID is
// a denormalized copy so the session survives later routine edits.
type PerformedExercise struct {
	ID                string         `json:"id"`
	RoutineExerciseID string         `json:"routineExerciseId,omitempty"`
	ExerciseID        string         `json:"exerciseId"`
	OrderIndex        int            `json:"orderIndex"`
	Sets              []PerformedSet `json:"sets"`
}

// WorkoutSession is one logged execution of training. Timestamps are ISO-8601
// strings; an empty FinishedAt means the session is in progress or was
// abandoned. Once set, FinishedAt is never cleared or revised.
type WorkoutSession struct {
	ID                 string              `json:"id"`
	RoutineID          string              `json:"routineId,omitempty"`
	CustomName         string              `json:"customName,omitempty"`
	StartedAt          string              `json:"startedAt"`
	FinishedAt         string              `json:"finishedAt,omitempty"`
	PerformedExercises []PerformedExercise `json:"performedExercises"`
	Notes              string              `json:"notes,omitempty"`
}

// SessionStats are derived per-session training-load figures. Never persisted.
type SessionStats struct {
	TotalSets       int     `json:"totalSets"`
	TotalReps       int     `json:"totalReps"`
	TotalVolume     float64 `json:"totalVolume"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// UserProfile holds the user's personalization settings. At most one profile
// exists per install.
type UserProfile struct {
	ID                string     `json:"id"`
	DisplayName       string     `json:"displayName"`
	Email             string     `json:"email,omitempty"`
	UnitSystem        UnitSystem `json:"unitSystem"`
	BirthYear         *int       `json:"birthYear,omitempty"`
	HeightCm          *float64   `json:"heightCm,omitempty"`
	BodyweightKg      *float64   `json:"bodyweightKg,omitempty"`
	WeeklyWorkoutGoal *int       `json:"weeklyWorkoutGoal,omitempty"`
	CreatedAt         string     `json:"createdAt"`
}

// NotificationSettings configures workout reminders.
type NotificationSettings struct {
	Enabled             bool `json:"enabled"`
	DefaultReminderHour int  `json:"defaultReminderHour"`
}
