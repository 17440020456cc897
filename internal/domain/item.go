package domain

import (
	"sort"
	"strings"
)

// Item is an opaque name, unique within one pool kind.
type Item string

type ItemSet map[Item]struct{}

func NewItemSet(items ...Item) ItemSet {
	set := make(ItemSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func ItemSetFromStrings(values []string) ItemSet {
	set := make(ItemSet, len(values))
	for _, value := range values {
		set[Item(value)] = struct{}{}
	}
	return set
}

func (s ItemSet) Has(item Item) bool {
	_, ok := s[item]
	return ok
}

func (s ItemSet) Add(item Item) {
	s[item] = struct{}{}
}

func (s ItemSet) Remove(item Item) {
	delete(s, item)
}

func (s ItemSet) Clone() ItemSet {
	out := make(ItemSet, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Minus returns the items of s that are in none of others.
func (s ItemSet) Minus(others ...ItemSet) ItemSet {
	out := make(ItemSet, len(s))
	for item := range s {
		excluded := false
		for _, other := range others {
			if other.Has(item) {
				excluded = true
				break
			}
		}
		if !excluded {
			out[item] = struct{}{}
		}
	}
	return out
}

func (s ItemSet) Intersects(other ItemSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for item := range small {
		if large.Has(item) {
			return true
		}
	}
	return false
}

// Covers reports whether every item of other is in s.
func (s ItemSet) Covers(other ItemSet) bool {
	for item := range other {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

// Sorted returns the members in lexical order.
func (s ItemSet) Sorted() []Item {
	items := make([]Item, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

func (s ItemSet) Strings() []string {
	sorted := s.Sorted()
	values := make([]string, 0, len(sorted))
	for _, item := range sorted {
		values = append(values, string(item))
	}
	return values
}

func ParseItems(values []string) []Item {
	items := make([]Item, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		items = append(items, Item(trimmed))
	}
	return items
}
