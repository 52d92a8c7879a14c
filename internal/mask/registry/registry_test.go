package registry

import (
	"errors"
	"testing"

	"github.com/dshills/maskedit/internal/mask"
)

func TestRegisterAndGet(t *testing.T) {
	r := New()
	if err := r.Register(Definition{Name: "zip", Template: "?????"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def, ok := r.Get("zip")
	if !ok {
		t.Fatal("registered mask should be found")
	}
	if def.Template != "?????" {
		t.Errorf("template = %q, want %q", def.Template, "?????")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	def := Definition{Name: "zip", Template: "?????"}
	if err := r.Register(def); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(def); !errors.Is(err, ErrMaskAlreadyRegistered) {
		t.Errorf("expected ErrMaskAlreadyRegistered, got %v", err)
	}
}

func TestRegisterInvalidDefinition(t *testing.T) {
	r := New()

	cases := []Definition{
		{Name: "", Template: "??"},
		{Name: "both", Template: "??", Grouping: true},
		{Name: "neither"},
	}
	for _, def := range cases {
		if err := r.Register(def); !errors.Is(err, ErrBadDefinition) {
			t.Errorf("definition %+v: expected ErrBadDefinition, got %v", def, err)
		}
	}
}

func TestNewWithDefaults(t *testing.T) {
	r := NewWithDefaults()
	for _, name := range []string{"expiry", "date", "phone", "card"} {
		if !r.Has(name) {
			t.Errorf("built-in mask %q missing", name)
		}
	}
}

func TestNewReformatterUnknown(t *testing.T) {
	r := New()
	if _, err := r.NewReformatter("nope"); !errors.Is(err, ErrMaskNotFound) {
		t.Errorf("expected ErrMaskNotFound, got %v", err)
	}
}

func TestNewReformatterTemplate(t *testing.T) {
	r := NewWithDefaults()
	rf, err := r.NewReformatter("expiry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := rf.Reformat(mask.Empty, mask.NewCaretValue("12", 2))
	if got.Text != "12/" {
		t.Errorf("text = %q, want %q", got.Text, "12/")
	}
}

func TestNewReformatterGroupingIsPerField(t *testing.T) {
	r := NewWithDefaults()
	a, err := r.NewReformatter("card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := r.NewReformatter("card")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Reformat(mask.Empty, mask.NewCaretValue("1111", 4))
	b.Reformat(mask.Empty, mask.NewCaretValue("2222", 4))

	ga := a.(*mask.GroupFormatter)
	gb := b.(*mask.GroupFormatter)
	if ga.RawString() != "1111" || gb.RawString() != "2222" {
		t.Errorf("grouping instances must not share state: %q / %q", ga.RawString(), gb.RawString())
	}
}

func TestNames(t *testing.T) {
	r := NewWithDefaults()
	names := r.Names()
	want := []string{"card", "date", "expiry", "phone"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
