package gridlens

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridlens/gridlens-go/pkg/gridlens/models"
)

// Snapshot is an immutable, identifiable revision of a normalized table.
// Interactive edits never mutate a table in place: each edit batch produces
// a fresh snapshot, so aggregation always runs over a consistent revision
// even when an edit arrives mid-render.
type Snapshot struct {
	// ID uniquely identifies this revision.
	ID string `json:"id"`
	// CreatedAt is when the revision was taken.
	CreatedAt time.Time `json:"created_at"`
	// Table is the revision's table. Treated as read-only.
	Table models.NormalizedTable `json:"table"`
}

// NewSnapshot takes the initial snapshot of a table.
func NewSnapshot(table models.NormalizedTable) Snapshot {
	return Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Table:     table.Clone(),
	}
}

// Apply produces the next revision with the given edits applied. The
// receiver is left untouched.
func (s Snapshot) Apply(edits []models.CellEdit) Snapshot {
	return Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Table:     s.Table.WithEdits(edits),
	}
}
