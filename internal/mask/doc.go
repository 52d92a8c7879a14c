// Package mask provides template-driven reformatting for text input
// fields.
//
// A Formatter owns an immutable template of literal characters and digit
// placeholders (for example "??/??" or "(???) ???-????"). On every edit
// it reconciles the field's previous value against the naively edited
// value and produces a freshly formatted value: digits are kept, template
// literals are re-inserted around them, input beyond the template's
// placeholder capacity is dropped, and the caret lands just after the
// last affected digit.
//
// The transform is a pipeline of three pure stages:
//
//   - collapse: strip formatting, mapping selection offsets into the
//     digit-only stream
//   - trim: cap the digit stream at the template's capacity
//   - expand: walk the template re-inserting literals, mapping offsets
//     back into formatted space
//
// Selection Model:
//
// Values carry a Selection using an anchor/head model where Anchor is
// where the selection started and Head is the current cursor position.
// When Anchor == Head the selection is just a caret. Both offsets are
// mapped independently through every stage so drag-selections survive
// the pipeline, though a reformat always emits a caret at the end of the
// produced text.
//
// A secondary GroupFormatter re-chunks arbitrary text into fixed groups
// of four characters joined by single spaces, with no template or
// capacity concept.
//
// Basic usage:
//
//	f, err := mask.New("??/??")
//	if err != nil {
//		return err
//	}
//	old := mask.NewValue("1", 1, 1)
//	edited := mask.NewValue("12", 2, 2)
//	formatted := f.Reformat(old, edited) // Text "12/", caret at 3
//
// Formatters are stateless per call and safe for concurrent use across
// distinct field instances; calls for the same field must be serialized
// by the caller, since each call assumes it sees the authoritative
// previous value.
package mask
