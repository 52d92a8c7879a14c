package field

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/maskedit/internal/mask"
)

// Field is a single-line masked input field.
// Field is not safe for concurrent use; the host event loop serializes
// access, matching the reformatter's contract that each call sees the
// authoritative previous value.
type Field struct {
	id          string
	label       string
	hint        string
	reformatter mask.Reformatter
	value       mask.Value
	focused     bool
}

// New creates a field driving the given reformatter. The hint is shown
// dimmed while the field is empty.
func New(label, hint string, rf mask.Reformatter) *Field {
	return &Field{
		id:          uuid.NewString(),
		label:       label,
		hint:        hint,
		reformatter: rf,
	}
}

// ID returns the field's unique instance identifier.
func (f *Field) ID() string {
	return f.id
}

// Label returns the field's display label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the field's current value.
func (f *Field) Value() mask.Value {
	return f.value
}

// SetFocused sets the field's focus state.
func (f *Field) SetFocused(focused bool) {
	f.focused = focused
}

// Focused returns true if the field has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Clear resets the field to empty.
func (f *Field) Clear() {
	f.value = f.reformatter.Reformat(f.value, mask.Empty)
}

// HandleKey processes a key event. Returns true if the event was
// consumed.
func (f *Field) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		return f.insertRune(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return f.deleteBackward()
	case tcell.KeyDelete:
		return f.deleteForward()
	case tcell.KeyLeft:
		f.moveCaret(-1, ev.Modifiers()&tcell.ModShift != 0)
		return true
	case tcell.KeyRight:
		f.moveCaret(1, ev.Modifiers()&tcell.ModShift != 0)
		return true
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.moveCaretTo(0, ev.Modifiers()&tcell.ModShift != 0)
		return true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.moveCaretTo(f.value.Len(), ev.Modifiers()&tcell.ModShift != 0)
		return true
	case tcell.KeyCtrlU:
		f.apply(mask.Empty)
		return true
	default:
		return false
	}
}

// insertRune inserts a printable ASCII rune at the selection, replacing
// any selected span. Templates and digit streams are byte-indexed, so
// wider input is rejected rather than corrupting offsets.
func (f *Field) insertRune(r rune) bool {
	if r < ' ' || r > '~' {
		return false
	}
	sel := f.value.Selection.Normalize()
	text := f.value.Text[:sel.Anchor] + string(r) + f.value.Text[sel.Head:]
	f.apply(mask.NewCaretValue(text, sel.Anchor+1))
	return true
}

// Paste inserts a string at the selection as a single edit.
func (f *Field) Paste(s string) {
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= ' ' && s[i] <= '~' {
			clean = append(clean, s[i])
		}
	}
	if len(clean) == 0 {
		return
	}
	sel := f.value.Selection.Normalize()
	text := f.value.Text[:sel.Anchor] + string(clean) + f.value.Text[sel.Head:]
	f.apply(mask.NewCaretValue(text, sel.Anchor+len(clean)))
}

func (f *Field) deleteBackward() bool {
	sel := f.value.Selection.Normalize()
	if sel.IsEmpty() {
		if sel.Head == 0 {
			return true
		}
		sel = mask.NewSelection(sel.Head-1, sel.Head)
	}
	text := f.value.Text[:sel.Anchor] + f.value.Text[sel.Head:]
	f.apply(mask.NewCaretValue(text, sel.Anchor))
	return true
}

func (f *Field) deleteForward() bool {
	sel := f.value.Selection.Normalize()
	if sel.IsEmpty() {
		if sel.Head >= f.value.Len() {
			return true
		}
		sel = mask.NewSelection(sel.Head, sel.Head+1)
	}
	text := f.value.Text[:sel.Anchor] + f.value.Text[sel.Head:]
	f.apply(mask.NewCaretValue(text, sel.Anchor))
	return true
}

func (f *Field) moveCaret(delta int, extend bool) {
	f.moveCaretTo(f.value.Selection.Head+delta, extend)
}

func (f *Field) moveCaretTo(offset int, extend bool) {
	if offset < 0 {
		offset = 0
	}
	if offset > f.value.Len() {
		offset = f.value.Len()
	}
	if extend {
		f.value = f.value.WithSelection(f.value.Selection.Extend(offset))
	} else {
		f.value = f.value.WithSelection(mask.NewCaret(offset))
	}
}

// apply runs the reformatter over the naive edit.
func (f *Field) apply(edited mask.Value) {
	f.value = f.reformatter.Reformat(f.value, edited)
}
