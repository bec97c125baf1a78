package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/analytics"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/store"
)

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State())
}

// --- Profile ---

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile := s.store.State().UserProfile
	if profile == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not set"})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.store.SaveProfile(profile))
}

// --- Routines ---

func (s *Server) handleListRoutines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State().Routines)
}

func (s *Server) handleCreateRoutine(w http.ResponseWriter, r *http.Request) {
	var routine models.Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, s.store.CreateRoutine(routine))
}

func (s *Server) handleGetRoutine(w http.ResponseWriter, r *http.Request) {
	routine, ok := s.store.State().RoutineByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "routine not found"})
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

func (s *Server) handleUpdateRoutine(w http.ResponseWriter, r *http.Request) {
	var routine models.Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	routine.ID = chi.URLParam(r, "id")

	updated, err := s.store.UpdateRoutine(routine)
	if errors.Is(err, store.ErrRoutineNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "routine not found"})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteRoutine(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteRoutine(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.StartSession(chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrRoutineNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "routine not found"})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// --- Sessions ---

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State().WorkoutHistory)
}

func (s *Server) handleLogSession(w http.ResponseWriter, r *http.Request) {
	var session models.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, s.store.LogSession(session))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.store.State().SessionByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleSessionStats(w http.ResponseWriter, r *http.Request) {
	session, ok := s.store.State().SessionByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, analytics.ComputeSessionStats(session))
}

// --- Exercise library ---

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State().ExerciseLibrary)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var def models.ExerciseDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, s.store.CreateExercise(def))
}

// handleGetExercise resolves the id the way routine and history views do:
// a deleted definition comes back as the unknown-exercise placeholder, so
// clients always get something renderable.
func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State().ResolveExercise(chi.URLParam(r, "id")))
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var def models.ExerciseDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	def.ID = chi.URLParam(r, "id")

	updated, err := s.store.UpdateExercise(def)
	if errors.Is(err, store.ErrExerciseNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteExercise(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// --- Settings ---

func (s *Server) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State().NotificationSettings)
}

func (s *Server) handlePutNotifications(w http.ResponseWriter, r *http.Request) {
	var settings models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.store.SetNotificationSettings(settings)
	writeJSON(w, http.StatusOK, settings)
}

// --- Stats ---

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analytics.BuildTimeSeriesStats(s.store.State().WorkoutHistory))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.State().WorkoutHistory
	if r.URL.Query().Get("range") == "week" {
		sessions = analytics.FilterWeek(sessions, time.Now())
	}
	writeJSON(w, http.StatusOK, analytics.Summarize(sessions))
}

// handleWeekProgress reports this week's session count against the profile's
// weekly workout goal. Goal is 0 when no profile is set.
func (s *Server) handleWeekProgress(w http.ResponseWriter, r *http.Request) {
	state := s.store.State()

	goal := 0
	if state.UserProfile != nil && state.UserProfile.WeeklyWorkoutGoal != nil {
		goal = *state.UserProfile.WeeklyWorkoutGoal
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"sessionsThisWeek":  analytics.SessionsInWeek(state.WorkoutHistory, time.Now()),
		"weeklyWorkoutGoal": goal,
	})
}

// --- Data management ---

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.store.Export()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="liftlog-export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := s.store.Import(data); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	state := s.store.State()
	writeJSON(w, http.StatusOK, map[string]int{
		"routines":  len(state.Routines),
		"exercises": len(state.ExerciseLibrary),
		"sessions":  len(state.WorkoutHistory),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.store.ResetAll()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
