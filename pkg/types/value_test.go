package types

import "testing"

func TestNilAndTruthy(t *testing.T) {
	if !IsNil(Nil) {
		t.Error("Nil should be nil")
	}
	if IsNil(T) {
		t.Error("T should not be nil")
	}
	if Truthy(Nil) {
		t.Error("Nil should not be truthy")
	}
	if !Truthy(T) {
		t.Error("T should be truthy")
	}
	if !Truthy(Number(0)) {
		t.Error("Number(0) should be truthy, only nil is false")
	}
}

func TestBoolValue(t *testing.T) {
	if BoolValue(true) != T {
		t.Error("BoolValue(true) should be T")
	}
	if BoolValue(false) != Nil {
		t.Error("BoolValue(false) should be Nil")
	}
}

func TestDebugRendering(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"number", Number(42), "42"},
		{"negative number", Number(-3.5), "-3.5"},
		{"symbol", Symbol("foo"), "foo"},
		{"string", String(`hi "there"`), `"hi \"there\""`},
		{"nil", Nil, "nil"},
		{"proper list", SliceToList([]Value{Number(1), Number(2), Number(3)}), "(1 2 3)"},
		{"dotted list", DottedSliceToList([]Value{Number(1), Number(2)}, Number(3)), "(1 2 . 3)"},
		{"nested list", SliceToList([]Value{Symbol("a"), SliceToList([]Value{Symbol("b"), Symbol("c")})}), "(a (b c))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Debug(); got != tt.want {
				t.Errorf("Debug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsProperList(t *testing.T) {
	if !IsProperList(Nil) {
		t.Error("nil is a proper list")
	}
	if !IsProperList(SliceToList([]Value{Number(1), Number(2)})) {
		t.Error("(1 2) is a proper list")
	}
	if IsProperList(DottedSliceToList([]Value{Number(1)}, Number(2))) {
		t.Error("(1 . 2) is not a proper list")
	}
	if IsProperList(Number(1)) {
		t.Error("a bare atom is not a proper list")
	}

	cycle := NewPair(Number(1), Nil)
	cycle.Cdr = cycle
	if IsProperList(cycle) {
		t.Error("a self-referential pair is not a proper list")
	}
}

func TestListToSliceAndBack(t *testing.T) {
	elems := []Value{Number(1), Symbol("x"), String("y")}
	list := SliceToList(elems)
	got := ListToSlice(list)
	if len(got) != len(elems) {
		t.Fatalf("got %d elements, want %d", len(got), len(elems))
	}
	for i := range elems {
		if !Equal(got[i], elems[i]) {
			t.Errorf("element %d: got %v, want %v", i, got[i], elems[i])
		}
	}
}

func TestClosureDebug(t *testing.T) {
	c := &Closure{
		Formals: SliceToList([]Value{Symbol("x")}),
		Body:    []Value{Symbol("x")},
	}
	want := "(lambda (x) x)"
	if got := c.Debug(); got != want {
		t.Errorf("Debug() = %q, want %q", got, want)
	}
}
