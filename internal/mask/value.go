package mask

import "fmt"

// Value is an immutable snapshot of a text field: its text plus the
// current selection. Every transform stage consumes one Value and
// produces a new Value with recomputed offsets; nothing is mutated in
// place.
type Value struct {
	Text      string
	Selection Selection
}

// NewValue creates a value with a selection from anchor to head.
func NewValue(text string, anchor, head int) Value {
	return Value{Text: text, Selection: Selection{Anchor: anchor, Head: head}}
}

// NewCaretValue creates a value with a caret at the given offset.
func NewCaretValue(text string, offset int) Value {
	return Value{Text: text, Selection: NewCaret(offset)}
}

// Empty is the zero value: empty text with a caret at offset 0.
var Empty = Value{}

// IsEmpty returns true if the value holds no text.
func (v Value) IsEmpty() bool {
	return v.Text == ""
}

// Len returns the length of the text in bytes.
func (v Value) Len() int {
	return len(v.Text)
}

// WithText returns a value with the given text and the selection
// clamped to the new length.
func (v Value) WithText(text string) Value {
	return Value{Text: text, Selection: v.Selection.Clamp(len(text))}
}

// WithSelection returns a value with the given selection clamped to the
// text length.
func (v Value) WithSelection(sel Selection) Value {
	return Value{Text: v.Text, Selection: sel.Clamp(len(v.Text))}
}

// Clamp returns a value whose selection is clamped to [0, len(Text)].
// Offsets outside the text are a caller contract violation; they are
// clamped rather than rejected so every transform stays total.
func (v Value) Clamp() Value {
	return Value{Text: v.Text, Selection: v.Selection.Clamp(len(v.Text))}
}

// Equals returns true if text and selection match exactly.
func (v Value) Equals(other Value) bool {
	return v.Text == other.Text && v.Selection.Equals(other.Selection)
}

// String returns a string representation of the value.
func (v Value) String() string {
	return fmt.Sprintf("Value(%q, %s)", v.Text, v.Selection)
}

// CountDigits returns the number of ASCII digit characters in s.
func CountDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
