package source

import (
	"io"
)

// Source is a byte-oriented polling input.
//
// PollByte never blocks for long: it returns the next byte with ok set, or
// ok unset when no data is currently available. An error means the source
// itself failed, not that it ran dry.
type Source interface {
	io.Closer
	Open() error
	PollByte() (c byte, ok bool, err error)
}
