// Package analytics derives training statistics from workout history. All
// functions are pure: they never mutate their inputs and never touch storage.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// TimeSeriesEntry pairs a session with its computed stats, ordered
// chronologically by BuildTimeSeriesStats.
type TimeSeriesEntry struct {
	Session models.WorkoutSession `json:"session"`
	Stats   models.SessionStats   `json:"stats"`
}

// setVolume is weight × reps for a single set. Sets missing either value
// contribute nothing to volume.
func setVolume(s models.PerformedSet) float64 {
	if s.Weight == nil || s.Reps == nil {
		return 0
	}
	return *s.Weight * float64(*s.Reps)
}

// parseTimestamp parses an ISO-8601 timestamp. Empty or malformed values
// report an error; callers treat that as "absent".
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ComputeSessionStats aggregates one session. Only sets with
// isCompleted=true count; reps without a weight still add to totalReps.
// Duration is round((finish − start) in minutes) and is present only when
// both timestamps parse.
func ComputeSessionStats(session models.WorkoutSession) models.SessionStats {
	var stats models.SessionStats
	for _, ex := range session.PerformedExercises {
		for _, set := range ex.Sets {
			if !set.IsCompleted {
				continue
			}
			stats.TotalSets++
			if set.Reps != nil {
				stats.TotalReps += *set.Reps
			}
			stats.TotalVolume += setVolume(set)
		}
	}

	start, startErr := parseTimestamp(session.StartedAt)
	finish, finishErr := parseTimestamp(session.FinishedAt)
	if startErr == nil && finishErr == nil {
		minutes := int(math.Round(finish.Sub(start).Minutes()))
		stats.DurationMinutes = &minutes
	}
	return stats
}

// BuildTimeSeriesStats returns the sessions sorted ascending by startedAt,
// each paired with its stats. The sort is stable: sessions sharing a start
// timestamp keep their input order. The input slice is not modified;
// sessions with unparsable start timestamps sort as the zero time.
func BuildTimeSeriesStats(sessions []models.WorkoutSession) []TimeSeriesEntry {
	sorted := make([]models.WorkoutSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startedAt(sorted[i]).Before(startedAt(sorted[j]))
	})

	entries := make([]TimeSeriesEntry, 0, len(sorted))
	for _, s := range sorted {
		entries = append(entries, TimeSeriesEntry{Session: s, Stats: ComputeSessionStats(s)})
	}
	return entries
}

func startedAt(s models.WorkoutSession) time.Time {
	t, err := parseTimestamp(s.StartedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
