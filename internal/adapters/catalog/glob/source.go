package glob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/bnema/pool-cli/internal/ports"
	"github.com/spf13/afero"
)

type LookupFunc func(key string) string

// Source lists files matching Dir/Pattern and turns their base names into
// items. Dir may reference environment variables.
type Source struct {
	fs     afero.Fs
	config domain.SourceConfig
	lookup LookupFunc
}

var _ ports.ItemSource = (*Source)(nil)

func NewSource(fs afero.Fs, config domain.SourceConfig, lookup LookupFunc) *Source {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if lookup == nil {
		lookup = os.Getenv
	}

	return &Source{fs: fs, config: config, lookup: lookup}
}

func (s *Source) Items(ctx context.Context) (domain.ItemSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pattern := filepath.Join(os.Expand(s.config.Dir, s.lookup), s.config.Pattern)
	matches, err := afero.Glob(s.fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	items := domain.NewItemSet()
	for _, match := range matches {
		name := ItemName(filepath.Base(match), s.config.TrimPrefix, s.config.TrimSuffix)
		if name == "" {
			continue
		}
		items.Add(name)
	}

	return items, nil
}

func ItemName(base, prefix, suffix string) domain.Item {
	name := strings.TrimPrefix(base, prefix)
	name = strings.TrimSuffix(name, suffix)
	return domain.Item(strings.TrimSpace(name))
}
