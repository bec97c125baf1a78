package mcp

import (
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/store"
)

// DataSource abstracts the state store for MCP tools: snapshot reads plus the
// two session operations assistants are allowed to drive.
type DataSource interface {
	State() models.AppState
	StartSession(routineID string) (models.WorkoutSession, error)
	LogSession(sess models.WorkoutSession) models.WorkoutSession
}

// Compile-time check: *store.Store satisfies DataSource.
var _ DataSource = (*store.Store)(nil)
