package analytics

import (
	"time"

	"github.com/claude/liftlog/internal/models"
)

// TrainingSummary holds whole-history totals for the progress view.
type TrainingSummary struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalSets     int     `json:"totalSets"`
	TotalReps     int     `json:"totalReps"`
	TotalVolume   float64 `json:"totalVolume"`
}

// Summarize folds per-session stats over the whole history.
func Summarize(sessions []models.WorkoutSession) TrainingSummary {
	summary := TrainingSummary{TotalWorkouts: len(sessions)}
	for _, s := range sessions {
		stats := ComputeSessionStats(s)
		summary.TotalSets += stats.TotalSets
		summary.TotalReps += stats.TotalReps
		summary.TotalVolume += stats.TotalVolume
	}
	return summary
}

// FilterWeek returns the sessions started during the calendar week containing
// ref. Weeks run Monday 00:00 to the following Monday in ref's location.
func FilterWeek(sessions []models.WorkoutSession, ref time.Time) []models.WorkoutSession {
	weekday := int(ref.Weekday())
	if weekday == 0 { // Sunday belongs to the week that started last Monday
		weekday = 7
	}
	year, month, day := ref.AddDate(0, 0, 1-weekday).Date()
	weekStart := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	weekEnd := weekStart.AddDate(0, 0, 7)

	week := make([]models.WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		t, err := parseTimestamp(s.StartedAt)
		if err != nil {
			continue
		}
		if !t.Before(weekStart) && t.Before(weekEnd) {
			week = append(week, s)
		}
	}
	return week
}

// SessionsInWeek counts sessions started during the calendar week containing
// ref; used against the profile's weekly workout goal.
func SessionsInWeek(sessions []models.WorkoutSession, ref time.Time) int {
	return len(FilterWeek(sessions, ref))
}
