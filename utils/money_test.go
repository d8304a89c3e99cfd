package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.005, 1.0}, // float repr of 1.005 sits just below, rounds down
		{1.015, 1.01},
		{900.0, 900.0},
		{135.0005, 135.0},
		{-2.346, -2.35},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
