package pipe

import (
	"github.com/allape/openkscan/kscan/source"
	"sync"
)

// Pipe is an in-memory FIFO source. Writers append command text, the scan
// loop polls it byte by byte. Safe for concurrent use.
type Pipe struct {
	source.Source

	locker sync.Locker

	buf    []byte
	closed bool
}

func (p *Pipe) Open() error {
	return nil
}

func (p *Pipe) Close() error {
	p.locker.Lock()
	defer p.locker.Unlock()

	p.closed = true
	return nil
}

// Write appends data to the pipe. Writing to a closed pipe is a no-op
// reported as success, matching a drained tty.
func (p *Pipe) Write(data []byte) (int, error) {
	p.locker.Lock()
	defer p.locker.Unlock()

	if p.closed {
		return len(data), nil
	}

	p.buf = append(p.buf, data...)
	return len(data), nil
}

func (p *Pipe) PollByte() (byte, bool, error) {
	p.locker.Lock()
	defer p.locker.Unlock()

	if len(p.buf) == 0 {
		return 0, false, nil
	}

	c := p.buf[0]
	p.buf = p.buf[1:]
	return c, true, nil
}

func New() *Pipe {
	return &Pipe{
		locker: &sync.Mutex{},
	}
}
