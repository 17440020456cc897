package ports

import (
	"context"

	"github.com/bnema/pool-cli/internal/domain"
)

// RecordStore persists the state of a single pool kind.
//
// Load returns domain.ErrRecordNotFound when nothing is stored and
// domain.ErrVersionMismatch when the stored record has another schema version.
// Archive moves the stored record aside and returns the backup path, or ""
// when there was nothing to archive.
type RecordStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	Archive(ctx context.Context) (string, error)
}
