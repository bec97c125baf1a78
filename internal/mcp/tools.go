package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/store"
)

// --- Tool definitions ---

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Get the user's profile: display name, unit system, bodyweight, height and weekly workout goal."),
)

var toolGetRoutines = mcp.NewTool("get_routines",
	mcp.WithDescription("List all workout routines with their exercises and set templates, ordered as the user arranged them."),
)

var toolGetExercises = mcp.NewTool("get_exercises",
	mcp.WithDescription("List the exercise library: built-in and custom exercise definitions with muscle groups and equipment."),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Get logged workout sessions in chronological order, each with computed stats (sets, reps, volume, duration)."),
	mcp.WithNumber("limit", mcp.Description("Return only the most recent N sessions. Defaults to all.")),
)

var toolGetSessionStats = mcp.NewTool("get_session_stats",
	mcp.WithDescription("Compute stats for a single logged session: completed sets, total reps, total volume (weight x reps) and duration."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("ID of a session in workout history")),
)

var toolGetVolumeTimeSeries = mcp.NewTool("get_volume_timeseries",
	mcp.WithDescription("Per-session training volume over time, sorted chronologically. Suitable for progress charts and trend analysis."),
)

var toolGetTrainingSummary = mcp.NewTool("get_training_summary",
	mcp.WithDescription("Aggregate totals over workout history: workout count, completed sets, reps and volume."),
	mcp.WithString("period", mcp.Description("Aggregation window. Defaults to 'all'."), mcp.Enum("week", "all")),
)

var toolStartSession = mcp.NewTool("start_session",
	mcp.WithDescription("Start a workout session from a routine. Returns the in-progress session with one uncompleted set per template, targets pre-filled. The session is not added to history until logged."),
	mcp.WithString("routine_id", mcp.Required(), mcp.Description("ID of the routine to start")),
)

var toolLogWorkoutSession = mcp.NewTool("log_workout_session",
	mcp.WithDescription("Log a finished workout session to history. The session is stored under a fresh ID; history is append-only."),
	mcp.WithString("session", mcp.Required(), mcp.Description("Full session document as JSON (startedAt, finishedAt, performedExercises with sets)")),
)

// --- Tool handlers ---

func (h *handlers) getProfile(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile := h.ds.State().UserProfile
	if profile == nil {
		return mcp.NewToolResultError("no profile set yet"), nil
	}

	result, err := mcp.NewToolResultJSON(profile)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRoutines(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.ds.State().Routines)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercises(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(h.ds.State().ExerciseLibrary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := analytics.BuildTimeSeriesStats(h.ds.State().WorkoutHistory)

	limit := req.GetInt("limit", 0)
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSessionStats(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	session, ok := h.ds.State().SessionByID(id)
	if !ok {
		return mcp.NewToolResultError("session not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(analytics.ComputeSessionStats(session))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getVolumeTimeSeries(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(analytics.BuildTimeSeriesStats(h.ds.State().WorkoutHistory))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingSummary(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions := h.ds.State().WorkoutHistory
	if req.GetString("period", "all") == "week" {
		sessions = analytics.FilterWeek(sessions, time.Now())
	}

	result, err := mcp.NewToolResultJSON(analytics.Summarize(sessions))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) startSession(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	routineID, err := req.RequireString("routine_id")
	if err != nil {
		return mcp.NewToolResultError("routine_id parameter is required"), nil
	}

	session, err := h.ds.StartSession(routineID)
	if errors.Is(err, store.ErrRoutineNotFound) {
		return mcp.NewToolResultError("routine not found: " + routineID), nil
	}
	if err != nil {
		h.log.Error("mcp start_session", "error", err)
		return mcp.NewToolResultError("starting session failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logWorkoutSession(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("session")
	if err != nil {
		return mcp.NewToolResultError("session parameter is required"), nil
	}

	var session models.WorkoutSession
	if err := json.Unmarshal([]byte(doc), &session); err != nil {
		return mcp.NewToolResultError("invalid session JSON: " + err.Error()), nil
	}

	logged := h.ds.LogSession(session)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"session": logged,
		"stats":   analytics.ComputeSessionStats(logged),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
