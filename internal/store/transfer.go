package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// ErrUnsupportedSchema reports an import document written by a newer
// version of the app.
var ErrUnsupportedSchema = errors.New("store: unsupported schema version")

// Export serializes the current document as indented JSON, suitable for a
// clipboard or a backup file. Pure: no side effects beyond the returned
// bytes.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export document: %w", err)
	}
	return data, nil
}

// Import parses data as a full state document and atomically replaces the
// in-memory state with it, then persists. A parse failure (or a document
// from a newer schema) leaves the current state untouched and is reported
// to the caller. No semantic validation happens beyond the structural
// parse: dangling or duplicate ids are accepted as-is, with first-match
// lookup semantics.
func (s *Store) Import(data []byte) error {
	var doc models.AppState
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing import document: %w", err)
	}
	if doc.SchemaVersion > models.CurrentSchemaVersion {
		return fmt.Errorf("%w: document has version %d, this build supports up to %d",
			ErrUnsupportedSchema, doc.SchemaVersion, models.CurrentSchemaVersion)
	}
	if doc.SchemaVersion == 0 {
		// Documents exported before versioning was introduced.
		doc.SchemaVersion = models.CurrentSchemaVersion
	}

	// Keep the non-nil collection invariant for hand-written documents.
	if doc.Routines == nil {
		doc.Routines = []models.Routine{}
	}
	if doc.ExerciseLibrary == nil {
		doc.ExerciseLibrary = []models.ExerciseDefinition{}
	}
	if doc.WorkoutHistory == nil {
		doc.WorkoutHistory = []models.WorkoutSession{}
	}

	s.dispatch(Hydrate{State: doc})
	return nil
}
