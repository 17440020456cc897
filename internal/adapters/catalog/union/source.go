package union

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/bnema/pool-cli/internal/ports"
)

// Source merges the items of several sources.
type Source struct {
	sources []ports.ItemSource
}

var _ ports.ItemSource = (*Source)(nil)

var errNoSources = errors.New("union source needs at least one item source")

func NewSource(sources ...ports.ItemSource) *Source {
	source, err := NewSourceChecked(sources...)
	if err != nil {
		panic(err)
	}

	return source
}

func NewSourceChecked(sources ...ports.ItemSource) (*Source, error) {
	if len(sources) == 0 {
		return nil, errNoSources
	}
	for i, source := range sources {
		if source == nil {
			return nil, fmt.Errorf("item source %d is nil", i)
		}
	}

	return &Source{sources: sources}, nil
}

func (s *Source) Items(ctx context.Context) (domain.ItemSet, error) {
	items := domain.NewItemSet()
	for i, source := range s.sources {
		found, err := source.Items(ctx)
		if err != nil {
			if shouldAbort(err) {
				return nil, err
			}
			return nil, fmt.Errorf("item source %d: %w", i, err)
		}
		for item := range found {
			items.Add(item)
		}
	}

	return items, nil
}

func shouldAbort(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
