package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDice replays fixed rolls, then repeats the last one.
type scriptedDice struct {
	rolls []int
	calls int
}

func (d *scriptedDice) IntN(n int) int {
	roll := d.rolls[len(d.rolls)-1]
	if d.calls < len(d.rolls) {
		roll = d.rolls[d.calls]
	}
	d.calls++
	return roll % n
}

func TestPreferredTier(t *testing.T) {
	t.Parallel()

	rights := Rights{White: 60, Free: 30}
	tests := []struct {
		dice int
		want Tier
	}{
		{dice: 0, want: TierWhite},
		{dice: 59, want: TierWhite},
		{dice: 60, want: TierFree},
		{dice: 89, want: TierFree},
		{dice: 90, want: TierBlack},
		{dice: 99, want: TierBlack},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, PreferredTier(tc.dice, rights), "dice %d", tc.dice)
	}
}

func TestFallbackOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [3]Tier{TierWhite, TierFree, TierBlack}, FallbackOrder(TierWhite))
	assert.Equal(t, [3]Tier{TierFree, TierWhite, TierBlack}, FallbackOrder(TierFree))
	assert.Equal(t, [3]Tier{TierBlack, TierFree, TierWhite}, FallbackOrder(TierBlack))
}

func TestPickerFallsBackToNextNonEmptyTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		roll  int
		tiers Tiers
		want  Item
	}{
		{
			name:  "white preferred, white empty, free next",
			roll:  0,
			tiers: Tiers{White: NewItemSet(), Free: NewItemSet("free"), Black: NewItemSet("black")},
			want:  "free",
		},
		{
			name:  "free preferred, free empty, white next",
			roll:  85,
			tiers: Tiers{White: NewItemSet("white"), Free: NewItemSet(), Black: NewItemSet("black")},
			want:  "white",
		},
		{
			name:  "black preferred, black empty, free next",
			roll:  99,
			tiers: Tiers{White: NewItemSet("white"), Free: NewItemSet("free"), Black: NewItemSet()},
			want:  "free",
		},
		{
			name:  "only black left",
			roll:  0,
			tiers: Tiers{White: NewItemSet(), Free: NewItemSet(), Black: NewItemSet("black")},
			want:  "black",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			picker := NewPicker(&scriptedDice{rolls: []int{tc.roll, 0}}, 0)

			got, err := picker.Pick(tc.tiers, Rights{White: 80, Free: 15}, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPickerFailsWhenAllTiersEmpty(t *testing.T) {
	t.Parallel()

	picker := NewPicker(&scriptedDice{rolls: []int{0}}, 0)

	_, err := picker.Pick(Tiers{White: NewItemSet(), Free: NewItemSet(), Black: NewItemSet()}, DefaultRights(), "")
	require.ErrorIs(t, err, ErrPoolExhausted)
}

func TestPickerRerollsCurrentItem(t *testing.T) {
	t.Parallel()

	// Tier roll 0 (white), member roll 0 -> "A" (current); then 0, 1 -> "B".
	picker := NewPicker(&scriptedDice{rolls: []int{0, 0, 0, 1}}, 0)

	got, err := picker.Pick(Tiers{White: NewItemSet("A", "B"), Free: NewItemSet("C"), Black: NewItemSet()}, DefaultRights(), "A")
	require.NoError(t, err)
	assert.Equal(t, Item("B"), got)
}

func TestPickerStopsWhenOnlyCurrentItemIsPickable(t *testing.T) {
	t.Parallel()

	dice := &scriptedDice{rolls: []int{0}}
	picker := NewPicker(dice, 8)

	_, err := picker.Pick(Tiers{White: NewItemSet("A"), Free: NewItemSet(), Black: NewItemSet()}, DefaultRights(), "A")
	require.ErrorIs(t, err, ErrPoolExhausted)
	assert.ErrorContains(t, err, "only the current item")
	assert.Equal(t, 16, dice.calls)
}

func TestPickerDistributionFollowsRights(t *testing.T) {
	t.Parallel()

	full := alphabet()
	state := DefaultState()
	state.White.Add("A")
	state.Black.Add("Z")
	tiers := Tiers{White: state.White, Free: state.FreeSet(full), Black: state.Black}

	picker := NewPicker(rand.New(rand.NewPCG(2026, 10)), 0)
	const trials = 100_000
	counts := map[Item]int{}
	for i := 0; i < trials; i++ {
		picked, err := picker.Pick(tiers, Rights{White: 80, Free: 20}, "")
		require.NoError(t, err)
		counts[picked]++
	}

	share := float64(counts["A"]) / trials
	assert.InDelta(t, 0.80, share, 0.02)
	assert.Zero(t, counts["Z"])
}

func TestPickerIsDeterministicForSeededDice(t *testing.T) {
	t.Parallel()

	tiers := Tiers{White: NewItemSet("A", "B", "C"), Free: NewItemSet("D", "E"), Black: NewItemSet("F")}
	pick := func() []Item {
		picker := NewPicker(rand.New(rand.NewPCG(9, 9)), 0)
		var picks []Item
		for i := 0; i < 20; i++ {
			item, err := picker.Pick(tiers, Rights{White: 60, Free: 30}, "B")
			require.NoError(t, err)
			picks = append(picks, item)
		}
		return picks
	}

	first := pick()
	assert.Equal(t, first, pick())
	assert.NotContains(t, first, Item("B"))
}
