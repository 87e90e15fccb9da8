package bsonjson

import (
	"math"
	"testing"
)

func TestAppendDouble(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		in    float64
		want  string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"one", 1, "1"},
		{"negative", -1.5, "-1.5"},
		{"fraction only", 0.5, "0.5"},
		{"small fraction", 0.0001, "0.0001"},
		{"below fixed threshold uses exponential", 0.0000001, "1e-7"},
		{"integral value drops decimal point", 100, "100"},
		{"large integral value", 123456789, "123456789"},
		{"large integral within fixed range", 1e20, "100000000000000000000"},
		{"boundary of fixed range", 1e21, "1e+21"},
		{"several significant digits", 3.14159, "3.14159"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			got := string(appendDouble(nil, c.in))
			if got != c.want {
				t.Fatalf("appendDouble(%v) = %s, want %s", c.in, got, c.want)
			}
		})
	}
}
