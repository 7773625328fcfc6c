package script

import (
	"errors"
	"github.com/allape/openkscan/kscan/source"
)

// MaxLineLen is the longest command line accepted, terminator excluded.
const MaxLineLen = 127

var (
	// ErrNoData means no characters were buffered before the source ran dry
	// or the line was terminated. A line holding only a terminator is
	// deliberately reported as ErrNoData as well, see readLine.
	ErrNoData = errors.New("no command data available")
	// ErrOverflow means the line exceeded MaxLineLen without a terminator.
	ErrOverflow = errors.New("command line too long")
)

// readLine polls src one byte at a time until a newline, a NUL, the length
// limit, or the source reports no data.
//
// Some tty backends keep answering reads with NUL once stdin is drained
// instead of signalling "no data", so NUL terminates a line exactly like a
// newline does. An empty line is therefore indistinguishable from end of
// input and both come back as ErrNoData.
//
// On ErrOverflow the truncated prefix is returned for diagnostics only.
func readLine(src source.Source) (string, error) {
	var buf [MaxLineLen]byte
	n := 0

	for {
		c, ok, err := src.PollByte()
		if err != nil {
			return "", err
		}
		if !ok || c == '\n' || c == 0 {
			break
		}
		if n >= MaxLineLen {
			return string(buf[:n]), ErrOverflow
		}
		buf[n] = c
		n++
	}

	if n == 0 {
		return "", ErrNoData
	}

	return string(buf[:n]), nil
}
