// Package field implements a single-line masked text field for tcell
// screens.
//
// A Field owns a mask.Reformatter and the current mask.Value. Key
// events build the naively edited value (insert, backspace, delete,
// caret movement, shift-extended selection) and the reformatter
// reconciles it against the previous value, so the displayed text is
// always consistent with the field's template. When the field is empty
// a dimmed hint is rendered instead of template literals.
package field
