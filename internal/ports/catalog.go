package ports

import (
	"context"

	"github.com/bnema/pool-cli/internal/domain"
)

// ItemSource enumerates every valid item of a pool kind. It must not have
// side effects.
type ItemSource interface {
	Items(ctx context.Context) (domain.ItemSet, error)
}

// CurrentItemSource returns the active item, or "" when none is set.
type CurrentItemSource interface {
	CurrentItem(ctx context.Context) (domain.Item, error)
}
