package script

import (
	"errors"
	"github.com/allape/gogger"
	"github.com/allape/openkscan/kscan"
	"github.com/allape/openkscan/kscan/source"
	"sync"
	"time"
)

var l = gogger.New("kscan.script")

type Config struct {
	// EventPeriod is the delay before the next firing after a press or
	// release has been dispatched, and the initial arming delay.
	EventPeriod time.Duration
	// ExitAfter signals termination with code 0 once input is exhausted.
	// When unset the driver goes idle instead.
	ExitAfter bool
	// ResumeOnParseError re-arms the loop after a malformed command.
	// The faithful default is to stall: a bad command stops the scan loop
	// without signalling failure.
	ResumeOnParseError bool
}

// Driver replays a textual command script as key matrix events.
//
// Each firing runs exactly one read-parse-dispatch cycle and re-arms itself,
// so at most one cycle is ever in flight. Fatal conditions are not acted on
// in place: they are delivered once on Done and the host decides how to die.
type Driver struct {
	kscan.Driver

	config Config
	src    source.Source
	device *kscan.Device

	locker sync.Locker

	callback   kscan.Callback
	cmdIdx     int
	terminated bool

	work *delayedWork
	done chan kscan.Status
}

// Init prepares the dormant work item. Idempotent.
func (d *Driver) Init() error {
	d.locker.Lock()
	defer d.locker.Unlock()

	if d.work == nil {
		d.work = newDelayedWork(d.fire)
	}
	return nil
}

// Enable arms the scan loop with the configured event period. A firing that
// is already pending is left untouched, so enabling never cuts a scripted
// wait short. It does not check for a registered callback.
func (d *Driver) Enable() error {
	d.schedule(d.config.EventPeriod)
	return nil
}

// Disable cancels a pending firing. A firing already underway completes its
// cycle. Idempotent.
func (d *Driver) Disable() error {
	d.locker.Lock()
	work := d.work
	d.locker.Unlock()

	if work != nil {
		work.Cancel()
	}
	return nil
}

// Configure registers the event callback and arms the scan loop, leaving a
// pending firing untouched like Enable does.
func (d *Driver) Configure(callback kscan.Callback) error {
	if callback == nil {
		return errors.New("callback is required")
	}

	d.locker.Lock()
	d.callback = callback
	d.locker.Unlock()

	d.schedule(d.config.EventPeriod)
	return nil
}

// Done delivers the terminal status once the driver decides the host process
// should stop. Nothing is ever delivered while the driver merely idles.
func (d *Driver) Done() <-chan kscan.Status {
	return d.done
}

// CommandIndex reports how many commands have been dispatched so far.
// Diagnostics only.
func (d *Driver) CommandIndex() int {
	d.locker.Lock()
	defer d.locker.Unlock()
	return d.cmdIdx
}

func (d *Driver) Terminated() bool {
	d.locker.Lock()
	defer d.locker.Unlock()
	return d.terminated
}

// schedule arms the loop unless a firing is already pending. The façade
// operations go through here.
func (d *Driver) schedule(delay time.Duration) {
	work, terminated := d.workState()
	if terminated {
		return
	}
	work.Schedule(delay)
}

// reschedule replaces a pending firing. Only the firing cycle itself goes
// through here: its wait and event-period delays must win over a concurrent
// Enable.
func (d *Driver) reschedule(delay time.Duration) {
	work, terminated := d.workState()
	if terminated {
		return
	}
	work.Reschedule(delay)
}

func (d *Driver) workState() (*delayedWork, bool) {
	d.locker.Lock()
	defer d.locker.Unlock()

	if d.work == nil {
		d.work = newDelayedWork(d.fire)
	}
	return d.work, d.terminated
}

func (d *Driver) terminate(status kscan.Status) {
	d.locker.Lock()
	if d.terminated {
		d.locker.Unlock()
		return
	}
	d.terminated = true
	d.locker.Unlock()

	d.done <- status
}

func (d *Driver) nextIndex() int {
	d.locker.Lock()
	defer d.locker.Unlock()

	idx := d.cmdIdx
	d.cmdIdx++
	return idx
}

// fire runs one read-parse-dispatch cycle and re-arms the work item.
func (d *Driver) fire() {
	line, err := readLine(d.src)
	switch {
	case errors.Is(err, ErrNoData):
		l.Info().Println("all commands processed, stopping scripted scan")
		if d.config.ExitAfter {
			d.terminate(kscan.Status{Code: 0})
		}
		return
	case errors.Is(err, ErrOverflow):
		l.Error().Printf("command too long: %q...", line)
		d.terminate(kscan.Status{Code: 1, Err: err})
		return
	case err != nil:
		l.Error().Println("reading command:", err)
		d.terminate(kscan.Status{Code: 1, Err: err})
		return
	}

	cmd, err := parseCommand(line)
	if err != nil {
		l.Error().Printf("invalid command %q: %v", line, err)
		if d.config.ResumeOnParseError {
			d.reschedule(d.config.EventPeriod)
		}
		return
	}

	if cmd.Op == OpWait {
		l.Verbose().Printf("cmd[%d] wait %dms", d.nextIndex(), cmd.WaitMS)
		d.reschedule(time.Duration(cmd.WaitMS) * time.Millisecond)
		return
	}

	d.locker.Lock()
	callback := d.callback
	d.locker.Unlock()

	if callback == nil {
		d.terminate(kscan.Status{Code: 1, Err: errors.New("no callback configured")})
		return
	}

	pressed := cmd.Op == OpPress
	action := "release"
	if pressed {
		action = "press"
	}
	l.Verbose().Printf("cmd[%d] %s row %d col %d", d.nextIndex(), action, cmd.Row, cmd.Col)

	callback(d.device, cmd.Row, cmd.Col, pressed)
	d.reschedule(d.config.EventPeriod)
}

func New(device *kscan.Device, src source.Source, config Config) *Driver {
	return &Driver{
		config: config,
		src:    src,
		device: device,

		locker: &sync.Mutex{},
		done:   make(chan kscan.Status, 1),
	}
}
