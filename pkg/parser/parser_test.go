package parser

import (
	"testing"

	"lwhlisp/pkg/types"
)

func mustParseOne(t *testing.T, src string) types.Value {
	t.Helper()
	values, diags := Parse(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", src, diags)
	}
	if len(values) != 1 {
		t.Fatalf("expected exactly one form for %q, got %d", src, len(values))
	}
	return values[0]
}

func TestParseAtoms(t *testing.T) {
	if got := mustParseOne(t, "42"); got.Debug() != "42" {
		t.Errorf("got %q", got.Debug())
	}
	if got := mustParseOne(t, "foo"); got.Debug() != "foo" {
		t.Errorf("got %q", got.Debug())
	}
	if got := mustParseOne(t, `"hi"`); got.Debug() != `"hi"` {
		t.Errorf("got %q", got.Debug())
	}
}

func TestParseProperList(t *testing.T) {
	got := mustParseOne(t, "(+ 1 2)")
	if got.Debug() != "(+ 1 2)" {
		t.Errorf("got %q", got.Debug())
	}
}

func TestParseNestedList(t *testing.T) {
	got := mustParseOne(t, "(a (b c) d)")
	if got.Debug() != "(a (b c) d)" {
		t.Errorf("got %q", got.Debug())
	}
}

func TestParseDottedList(t *testing.T) {
	got := mustParseOne(t, "(1 . 2)")
	if got.Debug() != "(1 . 2)" {
		t.Errorf("got %q", got.Debug())
	}

	got = mustParseOne(t, "(1 2 . 3)")
	if got.Debug() != "(1 2 . 3)" {
		t.Errorf("got %q", got.Debug())
	}
}

func TestParseEmptyList(t *testing.T) {
	got := mustParseOne(t, "()")
	if !types.IsNil(got) {
		t.Errorf("() should parse to nil, got %q", got.Debug())
	}
}

func TestReaderMacros(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"'x", "(quote x)"},
		{"`x", "(quasiquote x)"},
		{",x", "(unquote x)"},
		{",@x", "(unquote-splicing x)"},
		{"'(1 2)", "(quote (1 2))"},
		{"`(a ,b ,@c)", "(quasiquote (a (unquote b) (unquote-splicing c)))"},
	}
	for _, tt := range tests {
		got := mustParseOne(t, tt.src)
		if got.Debug() != tt.want {
			t.Errorf("%q: got %q, want %q", tt.src, got.Debug(), tt.want)
		}
	}
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	values, diags := Parse("(define x 1) (define y 2) (+ x y)")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(values) != 3 {
		t.Fatalf("got %d forms, want 3", len(values))
	}
}

func TestUnclosedListProducesDiagnostic(t *testing.T) {
	_, diags := Parse("(+ 1 2")
	if len(diags) == 0 {
		t.Error("expected a diagnostic for an unclosed list")
	}
}

func TestUnexpectedCloseParenProducesDiagnostic(t *testing.T) {
	_, diags := Parse(")")
	if len(diags) == 0 {
		t.Error("expected a diagnostic for an unmatched close paren")
	}
}

func TestMalformedFormDoesNotSwallowTheRest(t *testing.T) {
	values, diags := Parse(") (+ 1 2)")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic for the leading close paren")
	}
	if len(values) != 1 || values[0].Debug() != "(+ 1 2)" {
		t.Fatalf("expected recovery to still parse the following form, got %v", values)
	}
}

func TestCommentsAreIgnored(t *testing.T) {
	values, diags := Parse("; a comment\n(+ 1 2) ; trailing\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(values) != 1 || values[0].Debug() != "(+ 1 2)" {
		t.Fatalf("got %v", values)
	}
}
