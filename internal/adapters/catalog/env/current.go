package env

import (
	"context"
	"os"
	"strings"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/bnema/pool-cli/internal/ports"
)

// CurrentItem reads the active item from one environment variable. An empty
// key always yields no current item.
type CurrentItem struct {
	key    string
	lookup func(string) (string, bool)
}

var _ ports.CurrentItemSource = (*CurrentItem)(nil)

func NewCurrentItem(key string) *CurrentItem {
	return &CurrentItem{key: strings.TrimSpace(key), lookup: os.LookupEnv}
}

func (c *CurrentItem) CurrentItem(ctx context.Context) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.key == "" {
		return "", nil
	}

	value, ok := c.lookup(c.key)
	if !ok {
		return "", nil
	}

	return domain.Item(strings.TrimSpace(value)), nil
}
