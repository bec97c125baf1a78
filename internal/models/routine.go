package models

import "sort"

// NormalizeOrder sorts the routine's exercises by their current order index
// and renumbers them into a contiguous 0..n-1 sequence. Every structural
// mutation of a routine goes through this so the order invariant holds.
func (r *Routine) NormalizeOrder() {
	sort.SliceStable(r.Exercises, func(i, j int) bool {
		return r.Exercises[i].OrderIndex < r.Exercises[j].OrderIndex
	})
	for i := range r.Exercises {
		r.Exercises[i].OrderIndex = i
	}
}

// AddExercise appends a routine exercise at the end of the sequence.
func (r *Routine) AddExercise(ex RoutineExercise) {
	ex.OrderIndex = len(r.Exercises)
	r.Exercises = append(r.Exercises, ex)
}

// RemoveExercise deletes the exercise with the given id and renumbers the
// remaining ones, preserving their relative order. No-op for unknown ids.
func (r *Routine) RemoveExercise(routineExerciseID string) {
	kept := r.Exercises[:0]
	for _, ex := range r.Exercises {
		if ex.ID != routineExerciseID {
			kept = append(kept, ex)
		}
	}
	r.Exercises = kept
	r.NormalizeOrder()
}

// MoveExercise shifts the exercise with the given id one position up
// (delta -1) or down (delta +1). Moves past either end are no-ops.
func (r *Routine) MoveExercise(routineExerciseID string, delta int) {
	r.NormalizeOrder()
	for i, ex := range r.Exercises {
		if ex.ID != routineExerciseID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(r.Exercises) {
			return
		}
		r.Exercises[i], r.Exercises[j] = r.Exercises[j], r.Exercises[i]
		r.Exercises[i].OrderIndex = i
		r.Exercises[j].OrderIndex = j
		return
	}
}
