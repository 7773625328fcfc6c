package script

import (
	"errors"
	"fmt"
)

// Op is the single-letter opcode leading a command line.
type Op byte

const (
	OpPress   Op = 'p'
	OpRelease Op = 'r'
	OpWait    Op = 'w'
)

// Command is one decoded scripted action. Row and Col are only meaningful
// for OpPress and OpRelease, WaitMS only for OpWait.
type Command struct {
	Op     Op
	Row    int
	Col    int
	WaitMS int
}

var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrBadArgs       = errors.New("bad command arguments")
)

// parseCommand decodes one line of the command protocol:
//
//	p <row> [<col>]   press, col defaults to 0
//	r <row> [<col>]   release, col defaults to 0
//	w <ms>            pause before the next command
//
// Row and col ranges are not validated here, that is the callback's concern.
func parseCommand(line string) (Command, error) {
	cmd := Command{}
	if len(line) == 0 {
		return cmd, ErrUnknownOpcode
	}

	n := 0
	switch Op(line[0]) {
	case OpPress:
		n, _ = fmt.Sscanf(line, "p %d %d", &cmd.Row, &cmd.Col)
	case OpRelease:
		n, _ = fmt.Sscanf(line, "r %d %d", &cmd.Row, &cmd.Col)
	case OpWait:
		n, _ = fmt.Sscanf(line, "w %d", &cmd.WaitMS)
	default:
		return cmd, ErrUnknownOpcode
	}

	cmd.Op = Op(line[0])

	switch cmd.Op {
	case OpPress, OpRelease:
		if n == 1 {
			cmd.Col = 0
		} else if n != 2 {
			return Command{}, ErrBadArgs
		}
	case OpWait:
		if n != 1 {
			return Command{}, ErrBadArgs
		}
	}

	return cmd, nil
}
