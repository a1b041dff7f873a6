package interp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInterpretReturnsLastResult(t *testing.T) {
	i := New()
	got, err := i.Interpret("(define x 10) (+ x 5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Debug() != "15" {
		t.Errorf("got %q", got.Debug())
	}
}

func TestInterpretPersistsEnvironmentAcrossCalls(t *testing.T) {
	i := New()
	if _, err := i.Interpret("(define x 10)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := i.Interpret("(+ x 1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Debug() != "11" {
		t.Errorf("got %q, want x to still be bound from the previous call", got.Debug())
	}
}

func TestInterpretReportsParseDiagnosticsBeforeEvaluating(t *testing.T) {
	i := New()
	if _, err := i.Interpret("(+ 1 2"); err == nil {
		t.Error("expected an error for an unclosed form")
	}
}

func TestLoadFileEvaluatesEachTopLevelForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.lisp")
	if err := os.WriteFile(path, []byte("(define x 1) (define y 2)"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	i := New()
	if err := i.LoadFile(path, false, os.Stdout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := i.Interpret("(+ x y)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Debug() != "3" {
		t.Errorf("got %q", got.Debug())
	}
}

func TestLoadFileMissingPathIsIoError(t *testing.T) {
	i := New()
	if err := i.LoadFile(filepath.Join(t.TempDir(), "missing.lisp"), false, os.Stdout); err == nil {
		t.Error("expected an error for a missing file")
	}
}

// loadDefaultLibrary loads the library `run` loads by default against a
// fresh interpreter, so its macros and functions can be exercised directly
// instead of only through hand-written stand-ins.
func loadDefaultLibrary(t *testing.T) *Interpreter {
	t.Helper()
	path := filepath.Join("..", "..", "lib", "lib.lisp")
	i := New()
	if err := i.LoadFile(path, false, os.Stdout); err != nil {
		t.Fatalf("loading default library: %v", err)
	}
	return i
}

func TestDefaultLibraryUnlessWhenAndOr(t *testing.T) {
	i := loadDefaultLibrary(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(unless nil 'yes 'no)", "yes"},
		{"(unless t 'yes 'no)", "no"},
		{"(when t 1 2 3)", "3"},
		{"(when nil 1 2 3)", "nil"},
		{"(and t 5)", "5"},
		{"(and nil 5)", "nil"},
		{"(or nil 5)", "5"},
		{"(or 5 nil)", "5"},
	}
	for _, tt := range tests {
		got, err := i.Interpret(tt.src)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.src, err)
		}
		if got.Debug() != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got.Debug(), tt.want)
		}
	}
}

func TestDefaultLibraryListOperations(t *testing.T) {
	i := loadDefaultLibrary(t)
	tests := []struct {
		src  string
		want string
	}{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(length (list 1 2 3))", "3"},
		{"(append (list 1 2) (list 3 4))", "(1 2 3 4)"},
		{"(reverse (list 1 2 3))", "(3 2 1)"},
		{"(map (lambda (x) (* x x)) (list 1 2 3))", "(1 4 9)"},
		{"(filter (lambda (x) (< x 3)) (list 1 2 3 4))", "(1 2)"},
		{"(reduce + 0 (list 1 2 3 4))", "10"},
		{"(nth 1 (list 'a 'b 'c))", "b"},
		{"(range 3)", "(0 1 2)"},
	}
	for _, tt := range tests {
		got, err := i.Interpret(tt.src)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.src, err)
		}
		if got.Debug() != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got.Debug(), tt.want)
		}
	}
}
