package main

import (
	"testing"
)

func TestStripComment(t *testing.T) {
	cases := map[string]string{
		"p 1 2\n":              "p 1 2",
		"  r 3  \n":            "r 3",
		"w 50 # settle time\n": "w 50",
		"# whole line\n":       "",
		"\n":                   "",
		"   \n":                "",
		"p 1 2":                "p 1 2",
		"#":                    "",
	}

	for in, want := range cases {
		if got := StripComment(in); got != want {
			t.Fatalf("StripComment(%q) = %q, expected %q", in, got, want)
		}
	}
}
