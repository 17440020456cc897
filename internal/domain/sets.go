package domain

// FreeSet returns the items that are neither liked nor banned.
func FreeSet(full, white, black ItemSet) ItemSet {
	return full.Minus(white, black)
}

func CheckSets(full, white, black ItemSet) error {
	if len(full) == 0 {
		return &SetError{Kind: SetErrorEmpty}
	}
	if white.Intersects(black) {
		return &SetError{Kind: SetErrorOverlap}
	}
	if black.Covers(full) {
		return &SetError{Kind: SetErrorAllBlack}
	}
	if white.Covers(full) {
		return &SetError{Kind: SetErrorAllWhite}
	}

	return nil
}

// State is the persisted classification of one pool kind.
type State struct {
	White  ItemSet
	Black  ItemSet
	Rights Rights
}

func DefaultState() State {
	return State{
		White:  NewItemSet(),
		Black:  NewItemSet(),
		Rights: DefaultRights(),
	}
}

func (s State) Clone() State {
	return State{White: s.White.Clone(), Black: s.Black.Clone(), Rights: s.Rights}
}

func (s State) Check(full ItemSet) error {
	return CheckSets(full, s.White, s.Black)
}

func (s State) FreeSet(full ItemSet) ItemSet {
	return FreeSet(full, s.White, s.Black)
}

// Like moves the known items into the white set. Unknown items are returned
// and left untouched.
func (s *State) Like(items []Item, full ItemSet) []Item {
	var missing []Item
	for _, item := range items {
		if !full.Has(item) {
			missing = append(missing, item)
			continue
		}
		s.White.Add(item)
		s.Black.Remove(item)
	}
	return missing
}

// Ban moves the known items into the black set. Unknown items are returned
// and left untouched.
func (s *State) Ban(items []Item, full ItemSet) []Item {
	var missing []Item
	for _, item := range items {
		if !full.Has(item) {
			missing = append(missing, item)
			continue
		}
		s.Black.Add(item)
		s.White.Remove(item)
	}
	return missing
}

// Free drops the items from both sets. Unknown items are reported but still
// removed, so stale entries can be cleaned up.
func (s *State) Free(items []Item, full ItemSet) []Item {
	var missing []Item
	for _, item := range items {
		if !full.Has(item) {
			missing = append(missing, item)
		}
		s.White.Remove(item)
		s.Black.Remove(item)
	}
	return missing
}
