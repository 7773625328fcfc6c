package serialport

import (
	"errors"
	"github.com/allape/gogger"
	"github.com/allape/openkscan/kscan/source"
	"go.bug.st/serial"
	"sync"
	"time"
)

var l = gogger.New("kscan.source.serialport")

// PollTimeout bounds a single read so PollByte honors the non-blocking
// polling contract even on a quiet port.
const PollTimeout = time.Millisecond

type SerialPortSource struct {
	source.Source

	openLocker sync.Locker
	readLocker sync.Locker

	Port serial.Port

	Name string
	Baud int
}

func (s *SerialPortSource) Open() error {
	s.openLocker.Lock()
	defer s.openLocker.Unlock()

	if s.Port != nil {
		return errors.New("port already open")
	}

	mode := &serial.Mode{
		BaudRate: s.Baud,
	}
	port, err := serial.Open(s.Name, mode)
	if err != nil {
		return err
	}

	err = port.SetReadTimeout(PollTimeout)
	if err != nil {
		_ = port.Close()
		return err
	}

	l.Info().Println("opened command port:", s.Name)
	s.Port = port

	return nil
}

func (s *SerialPortSource) Close() error {
	s.openLocker.Lock()
	defer s.openLocker.Unlock()

	if s.Port == nil {
		return nil
	}

	err := s.Port.Close()
	s.Port = nil
	return err
}

func (s *SerialPortSource) PollByte() (byte, bool, error) {
	s.readLocker.Lock()
	defer s.readLocker.Unlock()

	if s.Port == nil {
		return 0, false, errors.New("port not open")
	}

	var buf [1]byte
	n, err := s.Port.Read(buf[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		// read timeout, nothing buffered on the port
		return 0, false, nil
	}

	return buf[0], true, nil
}

func New(name string, baud int) *SerialPortSource {
	return &SerialPortSource{
		openLocker: &sync.Mutex{},
		readLocker: &sync.Mutex{},
		Name:       name,
		Baud:       baud,
	}
}
