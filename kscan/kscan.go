package kscan

// Device is the handle passed back to the registered callback, identifying
// the virtual matrix the event originated from.
type Device struct {
	Name string
	Rows int
	Cols int
}

// Callback receives one key matrix event.
type Callback func(dev *Device, row, col int, pressed bool)

// Driver is the contract the firmware input subsystem drives a key-scan
// driver through.
type Driver interface {
	Init() error
	Enable() error
	Disable() error
	Configure(callback Callback) error
}

// Status is the terminal outcome of a scan driver, delivered once the driver
// decides the host process should stop. Code follows process exit semantics:
// 0 for a clean end of input, 1 for a fatal read failure.
type Status struct {
	Code int
	Err  error
}
