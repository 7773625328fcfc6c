package reader

import (
	"os"
	"strings"
	"testing"
)

func TestReaderPollByte(t *testing.T) {
	r := New(strings.NewReader("ab"))
	if err := r.Open(); err != nil {
		t.Fatal(err)
	}

	for _, expected := range []byte("ab") {
		c, ok, err := r.PollByte()
		if err != nil {
			t.Fatal(err)
		}
		if !ok || c != expected {
			t.Fatalf("expected %q, got %q (ok=%v)", expected, c, ok)
		}
	}

	// EOF is end of input, not an error
	for range 2 {
		_, ok, err := r.PollByte()
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("expected no data at EOF")
		}
	}
}

// TestReaderPollsPipeWithoutBlocking drives the source with a pipe that
// still has an open writer: polling a dry pipe must come back as "no data"
// instead of hanging on the read.
func TestReaderPollsPipeWithoutBlocking(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = pw.Close()
	}()

	r := New(pr)
	if err := r.Open(); err != nil {
		t.Fatal(err)
	}

	if _, err := pw.Write([]byte("a")); err != nil {
		t.Fatal(err)
	}

	c, ok, err := r.PollByte()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || c != 'a' {
		t.Fatalf("expected %q, got %q (ok=%v)", byte('a'), c, ok)
	}

	// writer still open, nothing buffered
	_, ok, err = r.PollByte()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no data on a dry pipe")
	}

	if _, err := pw.Write([]byte("b")); err != nil {
		t.Fatal(err)
	}

	c, ok, err = r.PollByte()
	if err != nil {
		t.Fatal(err)
	}
	if !ok || c != 'b' {
		t.Fatalf("expected %q, got %q (ok=%v)", byte('b'), c, ok)
	}
}

func TestReaderRequiresUnderlyingReader(t *testing.T) {
	r := New(nil)
	if err := r.Open(); err == nil {
		t.Fatal("expected an error for a nil reader")
	}
}
