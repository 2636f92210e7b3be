package aether

import (
	"math"
	"testing"
)

func Test_FormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{3.5, "3.5"},
		{-2, "-2"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Fatalf("FormatNumber(%v): want %q, got %q", c.in, c.want, got)
		}
	}
	if got := FormatNumber(math.NaN()); got != "NaN" {
		t.Fatalf("FormatNumber(NaN): got %q", got)
	}
}

func Test_FormatNumber_RuntimeSumRoundTrips(t *testing.T) {
	// The sum must be computed at runtime: a constant 0.1+0.2 would be folded
	// to exactly 0.3 by the compiler and hide the rounding artifact.
	a, b := 0.1, 0.2
	if got := FormatNumber(a + b); got != "0.30000000000000004" {
		t.Fatalf("FormatNumber(0.1+0.2): got %q", got)
	}
}
