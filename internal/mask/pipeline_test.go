package mask

import "testing"

// Collapse Tests

func TestCollapseStripsLiterals(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		anchor     int
		head       int
		wantText   string
		wantAnchor int
		wantHead   int
	}{
		{"plain digits", "12", 2, 2, "12", 2, 2},
		{"separator dropped", "12/34", 5, 5, "1234", 4, 4},
		{"cursor before separator", "12/34", 2, 2, "1234", 2, 2},
		{"cursor on separator", "12/34", 3, 3, "1234", 2, 2},
		{"cursor at start", "12/34", 0, 0, "1234", 0, 0},
		{"cursor mid literal run", "(123) 45", 5, 5, "12345", 3, 3},
		{"no digits at all", "ab-cd", 3, 3, "", 0, 0},
		{"empty", "", 0, 0, "", 0, 0},
		{"drag selection", "12/34", 1, 4, "1234", 1, 3},
		{"backward selection", "12/34", 4, 1, "1234", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collapse(NewValue(tt.text, tt.anchor, tt.head))
			if got.Text != tt.wantText {
				t.Errorf("text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Selection.Anchor != tt.wantAnchor || got.Selection.Head != tt.wantHead {
				t.Errorf("selection = %s, want (%d,%d)", got.Selection, tt.wantAnchor, tt.wantHead)
			}
		})
	}
}

func TestCollapseOffsetsMonotonic(t *testing.T) {
	text := "(123) 456-7890"
	prev := 0
	for off := 0; off <= len(text); off++ {
		got := collapse(NewCaretValue(text, off))
		if got.Selection.Head < prev {
			t.Fatalf("offset %d mapped to %d, below previous %d", off, got.Selection.Head, prev)
		}
		if got.Selection.Head < 0 || got.Selection.Head > len(got.Text) {
			t.Fatalf("offset %d mapped out of range: %d", off, got.Selection.Head)
		}
		prev = got.Selection.Head
	}
}

// Trim Tests

func TestTrimWithinCapacity(t *testing.T) {
	f := MustNew("??/??")
	v := NewValue("123", 3, 3)
	if got := f.trim(v); !got.Equals(v) {
		t.Errorf("value within capacity should pass through, got %s", got)
	}
}

func TestTrimOverCapacity(t *testing.T) {
	f := MustNew("??/??")
	got := f.trim(NewValue("123456", 6, 6))
	if got.Text != "1234" {
		t.Errorf("text = %q, want %q", got.Text, "1234")
	}
	if got.Selection.Anchor != 4 || got.Selection.Head != 4 {
		t.Errorf("selection = %s, want (4,4)", got.Selection)
	}
}

func TestTrimKeepsInteriorOffsets(t *testing.T) {
	f := MustNew("??/??")
	got := f.trim(NewValue("123456", 2, 6))
	if got.Selection.Anchor != 2 || got.Selection.Head != 4 {
		t.Errorf("selection = %s, want (2,4)", got.Selection)
	}
}

// Expand Tests

func TestExpandReinsertsLiterals(t *testing.T) {
	f := MustNew("??/??")

	got, _ := f.expand(NewValue("1234", 4, 4))
	if got.Text != "12/34" {
		t.Errorf("text = %q, want %q", got.Text, "12/34")
	}
	if got.Selection.Anchor != 5 || got.Selection.Head != 5 {
		t.Errorf("caret should collapse to end of text, got %s", got.Selection)
	}
}

func TestExpandStopsAtAvailableInput(t *testing.T) {
	f := MustNew("??/??")

	got, _ := f.expand(NewValue("12", 2, 2))
	if got.Text != "12/" {
		t.Errorf("separator before next digit should remain, got %q", got.Text)
	}
	if got.Selection.Head != 3 {
		t.Errorf("caret = %d, want 3", got.Selection.Head)
	}
}

func TestExpandTrimsTrailingWhitespace(t *testing.T) {
	f := MustNew("(???) ???-????")

	got, _ := f.expand(NewValue("123", 3, 3))
	if got.Text != "(123)" {
		t.Errorf("trailing space must not dangle, got %q", got.Text)
	}
}

func TestExpandInteriorMapping(t *testing.T) {
	f := MustNew("??/??")

	// Offset 2 in digit units lands after the separator: the capture at
	// a placeholder happens before testing whether a digit remains.
	_, interior := f.expand(NewValue("1234", 2, 3))
	if interior.Anchor != 3 {
		t.Errorf("interior anchor = %d, want 3", interior.Anchor)
	}
	if interior.Head != 4 {
		t.Errorf("interior head = %d, want 4", interior.Head)
	}
}

func TestExpandDefaultsUncapturedToEnd(t *testing.T) {
	f := MustNew("??/??")

	_, interior := f.expand(NewValue("1234", 4, 4))
	if interior.Anchor != 5 || interior.Head != 5 {
		t.Errorf("uncaptured offsets should default to end, got %s", interior)
	}
}

// Format Tests

func TestFormatEmptyClears(t *testing.T) {
	f := MustNew("??/??")
	got := f.Format(NewCaretValue("", 0))
	if got.Text != "" {
		t.Errorf("clearing the field should not resurrect literals, got %q", got.Text)
	}
}

func TestFormatLiteralOnlyInputClears(t *testing.T) {
	f := MustNew("??/??")
	got := f.Format(NewCaretValue("/", 1))
	if got.Text != "" {
		t.Errorf("literal-only input should collapse to empty, got %q", got.Text)
	}
}

func TestFormatIdempotent(t *testing.T) {
	templates := []string{"??/??", "(???) ???-????", "??-??-????"}
	inputs := []string{"", "1", "12", "12345", "1a2b3c", "(99) x 41", "123456789012"}

	for _, tmpl := range templates {
		f := MustNew(tmpl)
		for _, in := range inputs {
			once := f.Format(NewCaretValue(in, len(in)))
			twice := f.Format(once)
			if !twice.Equals(once) {
				t.Errorf("template %q input %q: Format not idempotent: %s then %s", tmpl, in, once, twice)
			}
		}
	}
}

func TestFormatCapacityInvariant(t *testing.T) {
	f := MustNew("??/??")
	inputs := []string{"123456", "111111111111", "9/8/7/6/5/4/3"}
	for _, in := range inputs {
		got := f.Format(NewCaretValue(in, len(in)))
		if n := CountDigits(got.Text); n > f.Capacity() {
			t.Errorf("input %q: %d digits exceeds capacity %d", in, n, f.Capacity())
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	f := MustNew("(???) ???-????")
	inputs := []string{"", "1", "1234", "123456789012345", "a1b2"}
	for _, in := range inputs {
		trimmed := f.trim(collapse(NewCaretValue(in, len(in))))
		if trimmed.IsEmpty() {
			continue
		}
		expanded, _ := f.expand(trimmed)
		back := collapse(expanded)
		if back.Text != trimmed.Text {
			t.Errorf("input %q: round-trip %q != %q", in, back.Text, trimmed.Text)
		}
	}
}

func TestFormatZeroPlaceholderTemplate(t *testing.T) {
	f := MustNew("N/A")
	got := f.Format(NewCaretValue("123", 3))
	if got.Text != "" {
		t.Errorf("zero-capacity template should collapse all input, got %q", got.Text)
	}
}

// Reformat Tests

func TestReformatFirstDigit(t *testing.T) {
	f := MustNew("??/??")
	got := f.Reformat(NewCaretValue("", 0), NewCaretValue("1", 1))
	if got.Text != "1" || got.Selection.Head != 1 {
		t.Errorf("got %s, want text %q caret 1", got, "1")
	}
}

func TestReformatCompletesSeparator(t *testing.T) {
	f := MustNew("??/??")
	got := f.Reformat(NewCaretValue("1", 1), NewCaretValue("12", 2))
	if got.Text != "12/" || got.Selection.Head != 3 {
		t.Errorf("got %s, want text %q caret 3", got, "12/")
	}
}

func TestReformatBackspaceOnSeparatorCascades(t *testing.T) {
	f := MustNew("(???) ???-????")
	// User backspaced the space after "(123) "; digit counts are equal,
	// so the adjacent digit is deleted along with the separator.
	got := f.Reformat(NewCaretValue("(123) ", 6), NewCaretValue("(123)", 5))
	if got.Text != "(12" || got.Selection.Head != 3 {
		t.Errorf("got %s, want text %q caret 3", got, "(12")
	}
}

func TestReformatPasteBeyondCapacity(t *testing.T) {
	f := MustNew("??/??")
	got := f.Reformat(NewCaretValue("", 0), NewCaretValue("123456", 6))
	if got.Text != "12/34" {
		t.Errorf("digits beyond capacity should drop, got %q", got.Text)
	}
}

func TestReformatDigitDeletion(t *testing.T) {
	f := MustNew("??/??")
	// Deleting "3" from "12/34" removes a digit: plain reformat.
	got := f.Reformat(NewCaretValue("12/34", 4), NewCaretValue("12/4", 3))
	if got.Text != "12/4" {
		t.Errorf("got %q, want %q", got.Text, "12/4")
	}
}

func TestReformatMidStringDeletion(t *testing.T) {
	f := MustNew("??/??")
	// Multi-character deletion crossing the separator.
	got := f.Reformat(NewCaretValue("12/34", 5), NewCaretValue("14", 1))
	if got.Text != "14/" {
		t.Errorf("got %q, want %q", got.Text, "14/")
	}
}

func TestReformatDeleteToEmpty(t *testing.T) {
	f := MustNew("??/??")
	got := f.Reformat(NewCaretValue("12/34", 5), NewCaretValue("", 0))
	if got.Text != "" || got.Selection.Head != 0 {
		t.Errorf("full deletion should clear, got %s", got)
	}
}

func TestReformatLiteralDeletionWithNoPriorDigit(t *testing.T) {
	f := MustNew("-??")
	// Only the leading literal was deleted and no digit precedes the
	// cursor: straight reformat, nothing to cascade into.
	got := f.Reformat(NewCaretValue("-12", 1), NewCaretValue("12", 0))
	if got.Text != "-12" {
		t.Errorf("got %q, want %q", got.Text, "-12")
	}
}

func TestReformatSameLengthPassesThrough(t *testing.T) {
	f := MustNew("??/??")
	edited := NewCaretValue("92/34", 1)
	got := f.Reformat(NewCaretValue("12/34", 1), edited)
	if !got.Equals(edited) {
		t.Errorf("same-length edit should pass through untouched, got %s", got)
	}
}

func TestReformatSingleDigitDeletionPreservesOrder(t *testing.T) {
	f := MustNew("(???) ???-????")
	formatted := f.Format(NewCaretValue("1234567", 7))

	// Delete each digit in turn; the surviving stream must be the old
	// stream with exactly that digit removed, in order.
	for i := 0; i < len(formatted.Text); i++ {
		if !isDigit(formatted.Text[i]) {
			continue
		}
		edited := NewCaretValue(formatted.Text[:i]+formatted.Text[i+1:], i)
		got := f.Reformat(formatted, edited)

		want := ""
		for j := 0; j < len(formatted.Text); j++ {
			if isDigit(formatted.Text[j]) && j != i {
				want += string(formatted.Text[j])
			}
		}

		gotDigits := ""
		for j := 0; j < len(got.Text); j++ {
			if isDigit(got.Text[j]) {
				gotDigits += string(got.Text[j])
			}
		}
		if gotDigits != want {
			t.Errorf("deleting digit at %d: stream %q, want %q", i, gotDigits, want)
		}
	}
}
