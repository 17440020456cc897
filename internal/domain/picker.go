package domain

import (
	"fmt"
	"math/rand/v2"
)

type Tier string

const (
	TierWhite Tier = "white"
	TierFree  Tier = "free"
	TierBlack Tier = "black"
)

const DefaultMaxPickAttempts = 64

// Dice yields integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Dice interface {
	IntN(n int) int
}

// SystemDice draws from the process-wide random source.
type SystemDice struct{}

func (SystemDice) IntN(n int) int {
	return rand.IntN(n)
}

// Tiers holds the three classified sets for one pick.
type Tiers struct {
	White ItemSet
	Free  ItemSet
	Black ItemSet
}

func (t Tiers) set(tier Tier) ItemSet {
	switch tier {
	case TierWhite:
		return t.White
	case TierFree:
		return t.Free
	default:
		return t.Black
	}
}

// PreferredTier maps a roll in [0, 100) onto the tier whose right covers it.
func PreferredTier(dice int, rights Rights) Tier {
	switch {
	case dice < rights.White:
		return TierWhite
	case dice < rights.White+rights.Free:
		return TierFree
	default:
		return TierBlack
	}
}

// FallbackOrder lists the tiers to try, preferred tier first.
func FallbackOrder(preferred Tier) [3]Tier {
	switch preferred {
	case TierWhite:
		return [3]Tier{TierWhite, TierFree, TierBlack}
	case TierFree:
		return [3]Tier{TierFree, TierWhite, TierBlack}
	default:
		return [3]Tier{TierBlack, TierFree, TierWhite}
	}
}

type Picker struct {
	dice        Dice
	maxAttempts int
}

func NewPicker(dice Dice, maxAttempts int) *Picker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPickAttempts
	}
	return &Picker{dice: dice, maxAttempts: maxAttempts}
}

// Pick rolls for a tier, falls back to the next non-empty one, and picks a
// member uniformly. A pick equal to current is re-rolled, at most maxAttempts
// times in total.
func (p *Picker) Pick(tiers Tiers, rights Rights, current Item) (Item, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		picked, err := p.pickOnce(tiers, rights)
		if err != nil {
			return "", err
		}
		if current == "" || picked != current {
			return picked, nil
		}
	}

	return "", fmt.Errorf("only the current item %q is pickable after %d attempts: %w", current, p.maxAttempts, ErrPoolExhausted)
}

func (p *Picker) pickOnce(tiers Tiers, rights Rights) (Item, error) {
	preferred := PreferredTier(p.dice.IntN(100), rights)
	for _, tier := range FallbackOrder(preferred) {
		candidates := tiers.set(tier)
		if len(candidates) == 0 {
			continue
		}
		sorted := candidates.Sorted()
		return sorted[p.dice.IntN(len(sorted))], nil
	}

	return "", fmt.Errorf("all 3 sets are empty: %w", ErrPoolExhausted)
}
