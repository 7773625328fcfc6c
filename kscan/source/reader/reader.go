package reader

import (
	"errors"
	"github.com/allape/openkscan/kscan/source"
	"io"
	"os"
	"time"
)

// PollTimeout bounds a single read on deadline-capable files (ttys, pipes)
// so PollByte honors the non-blocking polling contract.
const PollTimeout = time.Millisecond

// Reader adapts an io.Reader into a polling source. End of input is reported
// as "no data", not as an error, so a piped-in script drains cleanly. Reads
// on regular files fall back to plain blocking reads, which return promptly
// anyway.
type Reader struct {
	source.Source

	R io.Reader

	file *os.File
	eof  bool
}

func (r *Reader) Open() error {
	if r.R == nil {
		return errors.New("reader source has no underlying reader")
	}

	if file, ok := r.R.(*os.File); ok {
		// probe for deadline support, regular files have none
		if err := file.SetReadDeadline(time.Time{}); err == nil {
			r.file = file
		}
	}

	return nil
}

func (r *Reader) Close() error {
	r.eof = true
	if closer, ok := r.R.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (r *Reader) PollByte() (byte, bool, error) {
	if r.eof {
		return 0, false, nil
	}

	if r.file != nil {
		_ = r.file.SetReadDeadline(time.Now().Add(PollTimeout))
	}

	var buf [1]byte
	n, err := r.R.Read(buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.eof = true
			return 0, false, nil
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			// nothing buffered right now
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}

	return buf[0], true, nil
}

func New(r io.Reader) *Reader {
	return &Reader{R: r}
}
