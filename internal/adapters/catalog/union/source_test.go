package union

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/pool-cli/internal/domain"
	portmocks "github.com/bnema/pool-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSourceMergesAllSources(t *testing.T) {
	t.Parallel()

	bundled := portmocks.NewMockItemSource(t)
	local := portmocks.NewMockItemSource(t)
	source := NewSource(bundled, local)

	bundled.EXPECT().Items(mock.Anything).Return(domain.NewItemSet("molokai", "desert"), nil).Once()
	local.EXPECT().Items(mock.Anything).Return(domain.NewItemSet("desert", "jellybeans"), nil).Once()

	items, err := source.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{"desert", "jellybeans", "molokai"}, items.Sorted())
}

func TestSourceWrapsFailingSource(t *testing.T) {
	t.Parallel()

	bundled := portmocks.NewMockItemSource(t)
	local := portmocks.NewMockItemSource(t)
	source := NewSource(bundled, local)

	bundled.EXPECT().Items(mock.Anything).Return(domain.NewItemSet("molokai"), nil).Once()
	local.EXPECT().Items(mock.Anything).Return(nil, errors.New("permission denied")).Once()

	_, err := source.Items(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "item source 1")
	assert.ErrorContains(t, err, "permission denied")
}

func TestSourceStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	bundled := portmocks.NewMockItemSource(t)
	local := portmocks.NewMockItemSource(t)
	source := NewSource(bundled, local)

	bundled.EXPECT().Items(mock.Anything).Return(nil, context.Canceled).Once()

	_, err := source.Items(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "item source 0")
}

func TestNewSourceCheckedRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := NewSourceChecked()
	require.ErrorIs(t, err, errNoSources)

	_, err = NewSourceChecked(portmocks.NewMockItemSource(t), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "item source 1 is nil")
}
