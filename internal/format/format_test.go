package format

import "testing"

func TestMiles(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{8990, "8.990"},
		{10000, "10.000"},
		{1234567, "1.234.567"},
		{-4990, "-4.990"},
		{10000.4, "10.000"},
	}
	for _, tc := range cases {
		if got := Miles(tc.in); got != tc.want {
			t.Errorf("Miles(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCLP(t *testing.T) {
	if got := CLP(18990); got != "$18.990" {
		t.Fatalf("CLP = %q", got)
	}
	if got := CLP(-500); got != "-$500" {
		t.Fatalf("CLP negative = %q", got)
	}
}
