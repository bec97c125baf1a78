package analytics

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func sessionWithSets(sets ...models.PerformedSet) models.WorkoutSession {
	return models.WorkoutSession{
		ID:        "s1",
		StartedAt: "2025-03-10T18:00:00Z",
		PerformedExercises: []models.PerformedExercise{
			{ID: "pe1", ExerciseID: "e1", Sets: sets},
		},
	}
}

// TestComputeSessionStatsVolume verifies the documented scenario: two
// completed sets (8×60, 10×50) and one incomplete (5×100) yield
// totalSets=2, totalReps=18, totalVolume=980.
func TestComputeSessionStatsVolume(t *testing.T) {
	session := sessionWithSets(
		models.PerformedSet{ID: "a", Reps: intp(8), Weight: floatp(60), IsCompleted: true},
		models.PerformedSet{ID: "b", Reps: intp(10), Weight: floatp(50), IsCompleted: true},
		models.PerformedSet{ID: "c", Reps: intp(5), Weight: floatp(100), IsCompleted: false},
	)

	stats := ComputeSessionStats(session)
	if stats.TotalSets != 2 {
		t.Errorf("totalSets = %d, want 2", stats.TotalSets)
	}
	if stats.TotalReps != 18 {
		t.Errorf("totalReps = %d, want 18", stats.TotalReps)
	}
	if stats.TotalVolume != 980 {
		t.Errorf("totalVolume = %v, want 980", stats.TotalVolume)
	}
}

// TestComputeSessionStatsRepsWithoutWeight verifies completed bodyweight sets
// count toward totalReps but contribute zero volume.
func TestComputeSessionStatsRepsWithoutWeight(t *testing.T) {
	session := sessionWithSets(
		models.PerformedSet{ID: "a", Reps: intp(12), IsCompleted: true},
	)

	stats := ComputeSessionStats(session)
	if stats.TotalReps != 12 {
		t.Errorf("totalReps = %d, want 12", stats.TotalReps)
	}
	if stats.TotalVolume != 0 {
		t.Errorf("totalVolume = %v, want 0", stats.TotalVolume)
	}
}

// TestComputeSessionStatsAllIncomplete verifies an all-incomplete session
// yields zero totals while duration is still computed from the timestamps.
func TestComputeSessionStatsAllIncomplete(t *testing.T) {
	session := sessionWithSets(
		models.PerformedSet{ID: "a", Reps: intp(8), Weight: floatp(60)},
		models.PerformedSet{ID: "b", Reps: intp(8), Weight: floatp(60)},
	)
	session.FinishedAt = "2025-03-10T18:45:30Z"

	stats := ComputeSessionStats(session)
	if stats.TotalSets != 0 || stats.TotalReps != 0 || stats.TotalVolume != 0 {
		t.Errorf("totals = %d/%d/%v, want 0/0/0", stats.TotalSets, stats.TotalReps, stats.TotalVolume)
	}
	if stats.DurationMinutes == nil {
		t.Fatal("durationMinutes missing")
	}
	if *stats.DurationMinutes != 46 { // 45.5 minutes rounds up
		t.Errorf("durationMinutes = %d, want 46", *stats.DurationMinutes)
	}
}

// TestComputeSessionStatsNoFinish verifies an unfinished session has no
// duration.
func TestComputeSessionStatsNoFinish(t *testing.T) {
	session := sessionWithSets()
	if stats := ComputeSessionStats(session); stats.DurationMinutes != nil {
		t.Errorf("durationMinutes = %d, want absent", *stats.DurationMinutes)
	}
}

// TestComputeSessionStatsMalformedTimestamp verifies malformed timestamps
// are treated as absent rather than producing an error or a bogus duration.
func TestComputeSessionStatsMalformedTimestamp(t *testing.T) {
	session := sessionWithSets()
	session.StartedAt = "last tuesday"
	session.FinishedAt = "2025-03-10T19:00:00Z"

	if stats := ComputeSessionStats(session); stats.DurationMinutes != nil {
		t.Errorf("durationMinutes = %d, want absent", *stats.DurationMinutes)
	}
}

// TestBuildTimeSeriesStatsOrdering verifies ascending order by startedAt and
// that ties keep their input order.
func TestBuildTimeSeriesStatsOrdering(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: "late", StartedAt: "2025-03-12T10:00:00Z"},
		{ID: "tie-first", StartedAt: "2025-03-10T10:00:00Z"},
		{ID: "tie-second", StartedAt: "2025-03-10T10:00:00Z"},
		{ID: "early", StartedAt: "2025-03-01T10:00:00Z"},
	}

	entries := BuildTimeSeriesStats(sessions)
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Session.ID
	}
	want := []string{"early", "tie-first", "tie-second", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestBuildTimeSeriesStatsDoesNotMutateInput verifies sorting happens on a
// copy.
func TestBuildTimeSeriesStatsDoesNotMutateInput(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: "b", StartedAt: "2025-03-12T10:00:00Z"},
		{ID: "a", StartedAt: "2025-03-01T10:00:00Z"},
	}

	BuildTimeSeriesStats(sessions)
	if sessions[0].ID != "b" || sessions[1].ID != "a" {
		t.Errorf("input order changed: %s,%s", sessions[0].ID, sessions[1].ID)
	}
}

// TestSummarize verifies whole-history totals fold per-session stats.
func TestSummarize(t *testing.T) {
	sessions := []models.WorkoutSession{
		sessionWithSets(models.PerformedSet{ID: "a", Reps: intp(8), Weight: floatp(60), IsCompleted: true}),
		sessionWithSets(models.PerformedSet{ID: "b", Reps: intp(10), Weight: floatp(50), IsCompleted: true}),
	}

	summary := Summarize(sessions)
	if summary.TotalWorkouts != 2 {
		t.Errorf("totalWorkouts = %d, want 2", summary.TotalWorkouts)
	}
	if summary.TotalSets != 2 {
		t.Errorf("totalSets = %d, want 2", summary.TotalSets)
	}
	if summary.TotalReps != 18 {
		t.Errorf("totalReps = %d, want 18", summary.TotalReps)
	}
	if summary.TotalVolume != 980 {
		t.Errorf("totalVolume = %v, want 980", summary.TotalVolume)
	}
}

// TestSessionsInWeek verifies the Monday-to-Monday window: a session from
// last week and one with a broken timestamp are both excluded.
func TestSessionsInWeek(t *testing.T) {
	// Wednesday 2025-03-12; its week is Mon 2025-03-10 .. Mon 2025-03-17.
	ref := mustParse(t, "2025-03-12T12:00:00Z")
	sessions := []models.WorkoutSession{
		{ID: "mon", StartedAt: "2025-03-10T06:00:00Z"},
		{ID: "sun", StartedAt: "2025-03-16T23:00:00Z"},
		{ID: "prev-week", StartedAt: "2025-03-09T23:59:00Z"},
		{ID: "broken", StartedAt: "not-a-time"},
	}

	if got := SessionsInWeek(sessions, ref); got != 2 {
		t.Errorf("SessionsInWeek = %d, want 2", got)
	}
}

// TestSessionsInWeekSundayRef verifies a Sunday reference still counts back
// to the previous Monday instead of starting a new week.
func TestSessionsInWeekSundayRef(t *testing.T) {
	ref := mustParse(t, "2025-03-16T12:00:00Z") // Sunday
	sessions := []models.WorkoutSession{
		{ID: "mon", StartedAt: "2025-03-10T06:00:00Z"},
	}

	if got := SessionsInWeek(sessions, ref); got != 1 {
		t.Errorf("SessionsInWeek = %d, want 1", got)
	}
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := parseTimestamp(s)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}
