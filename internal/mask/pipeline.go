package mask

import "strings"

// collapse strips all non-digit characters from the value's text and
// maps both selection offsets into the digit-only stream.
//
// For each retained digit at original position p, with last the end
// index of the previous digit, an original offset falling anywhere in
// [last, p] (on top of intervening literals included) maps to the
// output length at that point, i.e. immediately before the digit being
// approached. Anchor and head are mapped independently; an offset never
// mapped during the scan (at or past the last digit) maps to the final
// output length. The mapping is monotonic and always lands in
// [0, len(out)].
func collapse(v Value) Value {
	out := make([]byte, 0, len(v.Text))
	anchor, head := -1, -1
	last := 0

	for p := 0; p < len(v.Text); p++ {
		if !isDigit(v.Text[p]) {
			continue
		}
		if anchor < 0 && v.Selection.Anchor >= last && v.Selection.Anchor <= p {
			anchor = len(out)
		}
		if head < 0 && v.Selection.Head >= last && v.Selection.Head <= p {
			head = len(out)
		}
		out = append(out, v.Text[p])
		last = p + 1
	}

	if anchor < 0 {
		anchor = len(out)
	}
	if head < 0 {
		head = len(out)
	}
	return NewValue(string(out), anchor, head)
}

// trim caps the collapsed digit stream at the formatter's capacity and
// clamps both selection offsets accordingly. Values already within
// capacity pass through unchanged.
func (f *Formatter) trim(v Value) Value {
	if len(v.Text) <= f.capacity {
		return v
	}
	return Value{
		Text:      v.Text[:f.capacity],
		Selection: v.Selection.Clamp(f.capacity),
	}
}

// expand walks the template re-inserting literal runs around the
// collapsed digit stream. Input offsets are in digit units: offset k
// means the caret sits before the k-th digit.
//
// At each placeholder the tracked offsets are tested against the number
// of digits already written; capture happens before checking whether
// any digit remains, so an offset equal to the digit count lands after
// any literals that follow the last digit. Once the digits are
// exhausted the walk stops; the template is never expanded past the
// available input, and trailing whitespace padding is trimmed so a
// dangling separator with no following digit cannot remain.
//
// The interior anchor/head mapping is returned for callers that need a
// position-preserving selection. The emitted value's own selection is
// always collapsed to the end of the produced text: every edit parks
// the caret just after the last affected digit's formatted position.
func (f *Formatter) expand(v Value) (Value, Selection) {
	buf := make([]byte, 0, len(f.template))
	anchor, head := -1, -1
	written := 0

	for i := 0; i < len(f.template); i++ {
		ch := f.template[i]
		if ch != Placeholder {
			buf = append(buf, ch)
			continue
		}
		if anchor < 0 && written == v.Selection.Anchor {
			anchor = len(buf)
		}
		if head < 0 && written == v.Selection.Head {
			head = len(buf)
		}
		if written >= len(v.Text) {
			break
		}
		buf = append(buf, v.Text[written])
		written++
	}

	text := strings.TrimRight(string(buf), " \t")
	if anchor < 0 {
		anchor = len(text)
	}
	if head < 0 {
		head = len(text)
	}
	interior := NewSelection(anchor, head).Clamp(len(text))

	return NewCaretValue(text, len(text)), interior
}

// Format runs the full collapse → trim → expand pipeline on a value.
// If the collapsed-and-trimmed text is empty the result is returned
// directly without expanding, so a field can be fully cleared and show
// hint content rather than template literals.
func (f *Formatter) Format(v Value) Value {
	collapsed := f.trim(collapse(v.Clamp()))
	if collapsed.IsEmpty() {
		return collapsed
	}
	formatted, _ := f.expand(collapsed)
	return formatted
}

// Reformat reconciles an edit, classifying the transition from old to
// edited by length:
//
//   - growth (typing, paste, autocomplete-insert) reformats the edited
//     value directly;
//   - shrink dispatches to deletion handling, which may cascade a
//     literal-only deletion into removing the adjacent digit;
//   - equal length passes the edited value through untouched, assuming
//     formatting is already consistent.
func (f *Formatter) Reformat(old, edited Value) Value {
	switch {
	case len(edited.Text) > len(old.Text):
		return f.Format(edited)
	case len(edited.Text) < len(old.Text):
		return f.reformatDeletion(old, edited)
	default:
		return edited
	}
}

// reformatDeletion handles a shrinking edit.
//
// When the digit count changed, at least one digit was genuinely
// removed and a plain reformat suffices, whatever the shape of the
// deletion. When the counts are equal the user deleted only literal
// formatting characters (backspace on a separator boundary): the
// nearest digit at or before the deletion point is removed as well, so
// backspacing a lone separator cascades into deleting the last digit
// typed instead of leaving an inert separator gap.
func (f *Formatter) reformatDeletion(old, edited Value) Value {
	if CountDigits(edited.Text) != CountDigits(old.Text) {
		return f.Format(edited)
	}

	edited = edited.Clamp()
	cursor := edited.Selection.Start()

	idx := -1
	for i := cursor - 1; i >= 0; i-- {
		if isDigit(edited.Text[i]) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return f.Format(edited)
	}

	// Remove the span from the digit through the deletion point and
	// shift offsets across the removed span: offsets past the cursor
	// move left by the span width, offsets inside it collapse to the
	// digit's index.
	width := cursor - idx
	adjusted := Value{
		Text: edited.Text[:idx] + edited.Text[cursor:],
		Selection: edited.Selection.Map(func(off int) int {
			switch {
			case off > cursor:
				return off - width
			case off >= idx:
				return idx
			default:
				return off
			}
		}),
	}
	return f.Format(adjusted)
}
