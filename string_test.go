package plorth_test

import (
	"testing"

	"github.com/plorth/plorth"
	"github.com/plorth/plorth/testutils"
)

// TestStringStrategies exercises the three string representations through
// their common interface.
func TestStringStrategies(t *testing.T) {
	rt := testutils.TestingRuntime()
	flat := rt.NewString("hello world")
	concat := rt.NewConcatString(rt.NewString("hello"), rt.NewString(" world"))
	sub := rt.NewSubstring(rt.NewString("say hello worlds"), 4, 11)
	views := map[string]*plorth.String{
		"Flat":      flat,
		"Concat":    concat,
		"Substring": sub,
	}
	for name, s := range views {
		if s.Length() != 11 {
			t.Errorf("%s: length = %d, want 11", name, s.Length())
		}
		if s.String() != "hello world" {
			t.Errorf("%s: contents = %q, want %q", name, s.String(), "hello world")
		}
		if !s.Equals(flat) {
			t.Errorf("%s does not equal the flat string", name)
		}
		if s.At(4) != 'o' || s.At(10) != 'd' {
			t.Errorf("%s: wrong characters through At", name)
		}
	}
}

// TestSubstringAcrossConcat checks that a substring view over a lazy
// concatenation reads characters from both halves.
func TestSubstringAcrossConcat(t *testing.T) {
	rt := testutils.TestingRuntime()
	concat := rt.NewConcatString(rt.NewString("abc"), rt.NewString("def"))
	sub := rt.NewSubstring(concat, 2, 2)
	if sub.Length() != 2 {
		t.Fatalf("length = %d, want 2", sub.Length())
	}
	if got := sub.String(); got != "cd" {
		t.Errorf("contents = %q, want %q", got, "cd")
	}
	if !sub.Equals(rt.NewString("cd")) {
		t.Error("substring across concat does not equal its flat form")
	}
}

func TestConcatEmptySides(t *testing.T) {
	rt := testutils.TestingRuntime()
	s := rt.NewString("x")
	if rt.NewConcatString(rt.NewString(""), s) != s {
		t.Error("concat with empty left side allocates a new string")
	}
	if rt.NewConcatString(s, rt.NewString("")) != s {
		t.Error("concat with empty right side allocates a new string")
	}
}

func TestStringUnicode(t *testing.T) {
	rt := testutils.TestingRuntime()
	s := rt.NewString("päivää \U0001f600")
	// Length counts code points, not bytes.
	if s.Length() != 8 {
		t.Errorf("length = %d, want 8", s.Length())
	}
	if s.At(7) != '\U0001f600' {
		t.Errorf("At(7) = %q, want astral code point", s.At(7))
	}
	// Non-ASCII code points escape as \u sequences, astral ones as
	// surrogate pairs.
	want := `"p\u00e4iv\u00e4\u00e4 \ud83d\ude00"`
	if got := plorth.ToSource(s); got != want {
		t.Errorf("ToSource = %q, want %q", got, want)
	}
}
