package main

import (
	"slices"
	"testing"
)

func TestTerminated(t *testing.T) {
	cases := []struct {
		in       []byte
		expected []byte
	}{
		{[]byte("p 1 2"), []byte("p 1 2\n")},
		{[]byte("p 1 2\n"), []byte("p 1 2\n")},
		{[]byte("p 1 2\nr 1 2"), []byte("p 1 2\nr 1 2\n")},
		{[]byte{}, []byte("\n")},
	}

	for _, c := range cases {
		if got := terminated(c.in); !slices.Equal(got, c.expected) {
			t.Fatalf("terminated(%q) = %q, expected %q", c.in, got, c.expected)
		}
	}
}
