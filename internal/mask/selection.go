package mask

import "fmt"

// Selection represents a range of selected text within a Value.
// Anchor is where the selection started; Head is the current cursor
// position. When Anchor == Head, this represents a caret with no
// selection. Selection is an immutable value type; offsets are byte
// offsets into the owning Value's text.
type Selection struct {
	Anchor int // Where selection started
	Head   int // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCaret creates a selection representing just a caret (no extent).
func NewCaret(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsEmpty returns true if the selection has no extent (just a caret).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() int {
	if s.Anchor <= s.Head {
		return s.Head - s.Anchor
	}
	return s.Anchor - s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return s.Head >= s.Anchor
}

// Extend returns a new selection extended to the given offset.
// The anchor remains fixed; only the head moves.
func (s Selection) Extend(offset int) Selection {
	return Selection{Anchor: s.Anchor, Head: offset}
}

// MoveTo returns a new collapsed selection (caret) at the given offset.
func (s Selection) MoveTo(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Collapse collapses the selection to a caret at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	end := s.End()
	return Selection{Anchor: end, Head: end}
}

// Normalize returns a forward selection (anchor <= head).
func (s Selection) Normalize() Selection {
	if s.Anchor <= s.Head {
		return s
	}
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Clamp returns a selection clamped to the valid range [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	anchor := s.Anchor
	head := s.Head

	if anchor < 0 {
		anchor = 0
	} else if anchor > maxOffset {
		anchor = maxOffset
	}

	if head < 0 {
		head = 0
	} else if head > maxOffset {
		head = maxOffset
	}

	return Selection{Anchor: anchor, Head: head}
}

// Map returns a selection with both offsets passed through fn
// independently.
func (s Selection) Map(fn func(int) int) Selection {
	return Selection{Anchor: fn(s.Anchor), Head: fn(s.Head)}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", s.Head)
	}
	dir := "→"
	if !s.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Head)
}
