package mask

import (
	"errors"
	"hash/fnv"
)

// Placeholder is the template character reserved to hold one input digit.
const Placeholder byte = '?'

// ErrInvalidTemplate indicates a formatter was constructed without a
// template. A template with zero placeholders is legal; it defines a
// fixed literal string the field always collapses to.
var ErrInvalidTemplate = errors.New("invalid template")

// Reformatter reconciles a field's previous value against a naively
// edited value and returns the value the field should display.
// Implemented by Formatter and GroupFormatter.
type Reformatter interface {
	Reformat(old, edited Value) Value
}

// Formatter reformats field edits against a fixed template of literal
// characters and digit placeholders. A Formatter is immutable and
// stateless per call: each Reformat is a pure function of the old and
// new values.
type Formatter struct {
	template string
	capacity int
}

// New creates a formatter for the given template. Templates are scanned
// once at construction; the placeholder count is cached as the
// formatter's capacity.
func New(template string) (*Formatter, error) {
	if template == "" {
		return nil, ErrInvalidTemplate
	}

	capacity := 0
	for i := 0; i < len(template); i++ {
		if template[i] == Placeholder {
			capacity++
		}
	}

	return &Formatter{template: template, capacity: capacity}, nil
}

// MustNew creates a formatter and panics on error. Useful for built-in
// templates registered at init time.
func MustNew(template string) *Formatter {
	f, err := New(template)
	if err != nil {
		panic(err)
	}
	return f
}

// Template returns the formatter's template string.
func (f *Formatter) Template() string {
	return f.template
}

// Capacity returns the number of digit placeholders in the template.
func (f *Formatter) Capacity() int {
	return f.capacity
}

// Equal returns true if both formatters share the same template.
// Template identity is the formatter's only state; capacity is derived.
func (f *Formatter) Equal(other *Formatter) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.template == other.template
}

// Hash returns a hash of the formatter consistent with Equal.
func (f *Formatter) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(f.template))
	return h.Sum64()
}

// String returns a string representation of the formatter.
func (f *Formatter) String() string {
	return "Formatter(" + f.template + ")"
}
