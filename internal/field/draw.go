package field

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Styles groups the styles used to render a field.
type Styles struct {
	Label     tcell.Style
	Text      tcell.Style
	Hint      tcell.Style
	Selection tcell.Style
	Focused   tcell.Style
}

// DefaultStyles returns the default field styles.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Label:     base.Foreground(tcell.ColorSilver),
		Text:      base,
		Hint:      base.Foreground(tcell.ColorGray),
		Selection: base.Reverse(true),
		Focused:   base.Bold(true),
	}
}

// Draw renders the field at (x, y) within the given width and positions
// the terminal cursor when the field is focused. The label column is
// measured with runewidth; labels may contain wide runes even though
// field text itself is ASCII.
func (f *Field) Draw(screen tcell.Screen, x, y, width, labelWidth int, styles Styles) {
	labelStyle := styles.Label
	if f.focused {
		labelStyle = styles.Focused
	}

	col := x
	for _, r := range f.label {
		if col-x >= labelWidth {
			break
		}
		screen.SetContent(col, y, r, nil, labelStyle)
		col += runewidth.RuneWidth(r)
	}
	for col-x < labelWidth {
		screen.SetContent(col, y, ' ', nil, labelStyle)
		col++
	}

	textX := x + labelWidth
	avail := width - labelWidth
	if avail <= 0 {
		return
	}

	text := f.value.Text
	textStyle := styles.Text
	if text == "" {
		text = f.hint
		textStyle = styles.Hint
	}

	sel := f.value.Selection.Normalize()
	for i := 0; i < avail; i++ {
		ch := ' '
		style := textStyle
		if i < len(text) {
			ch = rune(text[i])
		}
		if f.focused && !f.value.IsEmpty() && i >= sel.Anchor && i < sel.Head {
			style = styles.Selection
		}
		screen.SetContent(textX+i, y, ch, nil, style)
	}

	if f.focused {
		caret := f.value.Selection.Head
		if caret > avail-1 {
			caret = avail - 1
		}
		screen.ShowCursor(textX+caret, y)
	}
}
