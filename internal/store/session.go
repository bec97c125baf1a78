package store

import (
	"sort"

	"github.com/claude/liftlog/internal/models"
)

// StartSession builds a new in-progress session from a routine's plan: one
// performed exercise per routine exercise, one uncompleted set per template
// with the targets pre-filled as suggested values. The session is returned
// for live logging and is NOT added to history until LogSession. The routine
// must exist; its lastUsedAt is stamped with the session start.
func (s *Store) StartSession(routineID string) (models.WorkoutSession, error) {
	s.mu.RLock()
	routine, ok := s.state.RoutineByID(routineID)
	s.mu.RUnlock()
	if !ok {
		return models.WorkoutSession{}, ErrRoutineNotFound
	}

	// Sort a copy; the snapshot's slice must stay untouched.
	exercises := make([]models.RoutineExercise, len(routine.Exercises))
	copy(exercises, routine.Exercises)
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].OrderIndex < exercises[j].OrderIndex
	})

	performed := make([]models.PerformedExercise, 0, len(exercises))
	for i, re := range exercises {
		sets := make([]models.PerformedSet, 0, len(re.SetTemplates))
		for _, tmpl := range re.SetTemplates {
			sets = append(sets, models.PerformedSet{
				ID:                   s.newID(),
				RoutineSetTemplateID: tmpl.ID,
				Reps:                 copyInt(tmpl.TargetReps),
				TimeSec:              copyInt(tmpl.TargetTimeSec),
				Weight:               copyFloat(tmpl.TargetWeight),
				IsCompleted:          false,
			})
		}
		performed = append(performed, models.PerformedExercise{
			ID:                s.newID(),
			RoutineExerciseID: re.ID,
			ExerciseID:        re.ExerciseID,
			OrderIndex:        i,
			Sets:              sets,
		})
	}

	session := models.WorkoutSession{
		ID:                 s.newID(),
		RoutineID:          routine.ID,
		StartedAt:          s.timestamp(),
		PerformedExercises: performed,
	}

	routine.LastUsedAt = session.StartedAt
	s.dispatch(UpsertRoutine{Routine: routine})

	return session, nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
