package adapter

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// MaxInput is the largest value a joystick read can return. Reads are in
// [0, MaxInput].
const MaxInput = 255

// OldJoystick is the legacy, port-based device contract.
type OldJoystick interface {
	ConnectToPort()
	ReadInputs() int
}

// USBJoystick is the contract current callers expect.
type USBJoystick interface {
	ConnectToUSB()
	ReadData() int
}

// Source produces pseudo-random ints in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Option configures the stock joystick implementations.
type Option func(*device)

// WithSource sets the random source. A nil source is ignored.
func WithSource(src Source) Option {
	return func(d *device) {
		if src != nil {
			d.src = src
		}
	}
}

// WithOutput sets where status lines are written. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(d *device) {
		if w != nil {
			d.out = w
		}
	}
}

type device struct {
	src Source
	out io.Writer
}

func newDevice(opts []Option) device {
	d := device{src: globalSource{}, out: os.Stdout}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

func (d device) say(line string) { _, _ = fmt.Fprintln(d.out, line) }

func (d device) read() int { return d.src.IntN(MaxInput + 1) }

// OldJoystickImpl is a port-based joystick producing random readings.
type OldJoystickImpl struct {
	device
}

// NewOldJoystick returns an OldJoystickImpl.
func NewOldJoystick(opts ...Option) *OldJoystickImpl {
	return &OldJoystickImpl{device: newDevice(opts)}
}

func (j *OldJoystickImpl) ConnectToPort() { j.say("Connecting to port") }

func (j *OldJoystickImpl) ReadInputs() int {
	j.say("Reading the old joystick inputs")
	return j.read()
}

// USBJoystickImpl is a native USB joystick producing random readings.
type USBJoystickImpl struct {
	device
}

// NewUSBJoystick returns a USBJoystickImpl.
func NewUSBJoystick(opts ...Option) *USBJoystickImpl {
	return &USBJoystickImpl{device: newDevice(opts)}
}

func (j *USBJoystickImpl) ConnectToUSB() { j.say("Connecting to usb") }

func (j *USBJoystickImpl) ReadData() int {
	j.say("Reading from USB")
	return j.read()
}

// JoystickAdapter exposes an OldJoystick as a USBJoystick.
type JoystickAdapter struct {
	old OldJoystick
}

// NewJoystickAdapter wraps old.
func NewJoystickAdapter(old OldJoystick) *JoystickAdapter {
	return &JoystickAdapter{old: old}
}

// ConnectToUSB delegates to ConnectToPort.
func (a *JoystickAdapter) ConnectToUSB() { a.old.ConnectToPort() }

// ReadData returns ReadInputs unchanged.
func (a *JoystickAdapter) ReadData() int { return a.old.ReadInputs() }

var (
	_ OldJoystick = (*OldJoystickImpl)(nil)
	_ USBJoystick = (*USBJoystickImpl)(nil)
	_ USBJoystick = (*JoystickAdapter)(nil)
)
