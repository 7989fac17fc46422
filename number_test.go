package cmdl

import "testing"

func TestIsNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"-1", true},
		{"+1", true},
		{"-0", true},
		{"-0.4", true},
		{"-1e6", true},
		{"-1.3e-2", true},
		{"1E6", true},
		{".5", true},
		{"-.5", true},
		// a permissive read stops at the garbage, the prefix counts
		{"123abc", true},
		{"1.2.3", true},
		// a started exponent must finish
		{"1e", false},
		{"1e+", false},
		{"1exit", false},
		{"", false},
		{"-", false},
		{"--", false},
		{"-.", false},
		{"+", false},
		{"-x", false},
		{"abc", false},
	}

	for _, tc := range cases {
		if got := isNumber(tc.in); got != tc.want {
			t.Errorf("isNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsOption(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"-x", true},
		{"--long", true},
		{"-", true},
		{"--", true},
		{"--5", true}, // not a valid number read, so the dash wins
		{"-1", false},
		{"-0.4", false},
		{"-1e6", false},
		{"x", false},
		{"1", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := isOption(tc.in); got != tc.want {
			t.Errorf("isOption(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
