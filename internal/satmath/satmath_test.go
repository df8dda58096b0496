package satmath

import "testing"

func TestAddOverflows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		a, b, m  int
		overflow bool
	}{
		{"well within range", 2, 3, 100, false},
		{"exactly at max", 40, 60, 100, false},
		{"one past max", 41, 60, 100, true},
		{"zero and zero", 0, 0, 0, false},
		{"b exceeds max alone", 0, 5, 3, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddOverflows(tc.a, tc.b, tc.m); got != tc.overflow {
				t.Fatalf("AddOverflows(%d,%d,%d) = %v, want %v", tc.a, tc.b, tc.m, got, tc.overflow)
			}
		})
	}
}
