package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/maskedit/internal/config"
	"github.com/dshills/maskedit/internal/field"
	"github.com/dshills/maskedit/internal/mask/registry"
)

// Form holds the demo's masked fields and routes input to whichever
// has focus.
type Form struct {
	fields []*field.Field
	focus  int
	styles field.Styles
}

// NewForm builds a form from field configuration. Every configured
// mask is registered so later lookups by name resolve, then each field
// gets its own reformatter instance.
func NewForm(cfg *config.Config, reg *registry.Registry) (*Form, error) {
	if len(cfg.Fields) == 0 {
		return nil, ErrNoFields
	}

	form := &Form{styles: field.DefaultStyles()}
	for _, fc := range cfg.Fields {
		if !reg.Has(fc.Name) {
			if err := reg.Register(fc.Definition()); err != nil {
				return nil, fmt.Errorf("field %s: %w", fc.Name, err)
			}
		}
		rf, err := reg.NewReformatter(fc.Name)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fc.Name, err)
		}
		form.fields = append(form.fields, field.New(fc.Label, fc.Mask, rf))
	}
	form.fields[0].SetFocused(true)
	return form, nil
}

// Fields returns the form's fields in display order.
func (f *Form) Fields() []*field.Field {
	return f.fields
}

// Focused returns the field currently holding focus.
func (f *Form) Focused() *field.Field {
	return f.fields[f.focus]
}

// FocusNext moves focus to the next field, wrapping around.
func (f *Form) FocusNext() {
	f.setFocus((f.focus + 1) % len(f.fields))
}

// FocusPrev moves focus to the previous field, wrapping around.
func (f *Form) FocusPrev() {
	f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
}

func (f *Form) setFocus(i int) {
	f.fields[f.focus].SetFocused(false)
	f.focus = i
	f.fields[f.focus].SetFocused(true)
}

// HandleKey routes a key event: Tab and Backtab cycle focus, anything
// else goes to the focused field. Returns true if consumed.
func (f *Form) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab:
		f.FocusNext()
		return true
	case tcell.KeyBacktab:
		f.FocusPrev()
		return true
	default:
		return f.Focused().HandleKey(ev)
	}
}

// Draw renders every field, one per row starting at (x, y). The label
// column is sized to the widest label.
func (f *Form) Draw(screen tcell.Screen, x, y, width int) {
	labelWidth := 0
	for _, fld := range f.fields {
		if w := runewidth.StringWidth(fld.Label()); w > labelWidth {
			labelWidth = w
		}
	}
	labelWidth += 2 // gap between label and text

	for i, fld := range f.fields {
		fld.Draw(screen, x, y+i*2, width, labelWidth, f.styles)
	}
}

// Height returns the number of rows the form occupies.
func (f *Form) Height() int {
	return len(f.fields)*2 - 1
}
