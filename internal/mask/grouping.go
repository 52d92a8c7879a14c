package mask

import "strings"

// GroupSize is the fixed chunk width used by GroupFormatter.
const GroupSize = 4

// GroupFormatter re-chunks field text into fixed-size groups joined by
// single spaces: "123456789" becomes "1234 5678 9". It has no template
// or capacity concept and no digit-only filtering: any non-space
// character is groupable.
//
// Unlike Formatter, a GroupFormatter caches the last formatted text so
// the raw (space-stripped) string can be read back. The cache is owned
// solely by this instance and overwritten wholesale on each edit;
// callers serialize edits per instance.
type GroupFormatter struct {
	formatted string
}

// NewGrouping creates a grouping formatter.
func NewGrouping() *GroupFormatter {
	return &GroupFormatter{}
}

// Reformat re-chunks the edited text into groups. The selection is
// shifted by the delta between the edited and re-chunked text lengths,
// a pure length heuristic rather than a per-character offset mapping.
func (g *GroupFormatter) Reformat(old, edited Value) Value {
	stripped := strings.ReplaceAll(edited.Text, " ", "")

	var b strings.Builder
	b.Grow(len(stripped) + len(stripped)/GroupSize)
	for i := 0; i < len(stripped); i += GroupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + GroupSize
		if end > len(stripped) {
			end = len(stripped)
		}
		b.WriteString(stripped[i:end])
	}

	text := b.String()
	g.formatted = text

	delta := len(text) - len(edited.Text)
	sel := edited.Selection.Map(func(off int) int {
		return off + delta
	})
	return Value{Text: text, Selection: sel.Clamp(len(text))}
}

// RawString returns the last formatted text with group separators
// stripped, a read-only snapshot of the most recent edit.
func (g *GroupFormatter) RawString() string {
	return strings.ReplaceAll(g.formatted, " ", "")
}
