package pipe

import (
	"testing"
)

func TestPipeFIFO(t *testing.T) {
	p := New()
	if err := p.Open(); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Write([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Write([]byte("c")); err != nil {
		t.Fatal(err)
	}

	for _, expected := range []byte("abc") {
		c, ok, err := p.PollByte()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("expected a byte")
		}
		if c != expected {
			t.Fatalf("expected %q, got %q", expected, c)
		}
	}

	_, ok, err := p.PollByte()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected the pipe to be drained")
	}
}

func TestPipeCloseDropsNewWrites(t *testing.T) {
	p := New()

	if _, err := p.Write([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Write([]byte("y")); err != nil {
		t.Fatal(err)
	}

	// buffered data stays pollable, post-close writes are dropped
	c, ok, err := p.PollByte()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || c != 'x' {
		t.Fatalf("expected %q, got %q (ok=%v)", byte('x'), c, ok)
	}

	_, ok, _ = p.PollByte()
	if ok {
		t.Fatal("expected no data after close")
	}
}
