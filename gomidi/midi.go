// Package gomidi feeds messages from rtmidi input devices into a gate graph.
package gomidi

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/vsariola/gensyn"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	// DeliverFunc hands an event to the consumer. It must not block; false
	// means the event was dropped.
	DeliverFunc func(gensyn.Event) bool

	RTMIDIContext struct {
		driver             *rtmididrv.Driver
		deliver            DeliverFunc
		currentIn          drivers.In
		stop               func()
		inputDevices       []RTMIDIDevice
		devicesInitialized bool
		dropped            atomic.Uint64
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
		id      int
	}
)

var errNoDriver = errors.New("no driver available")

// NewContext opens the rtmidi driver. Messages from the opened input are
// passed to deliver. If the driver cannot be opened the context has no
// inputs.
func NewContext(deliver DeliverFunc) *RTMIDIContext {
	m := RTMIDIContext{deliver: deliver}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(gensyn.MIDIInputDevice) bool) {
	if m.devicesInitialized {
		m.yieldCachedInputDevices(yield)
	} else {
		m.initInputDevices(yield)
	}
}

func (m *RTMIDIContext) yieldCachedInputDevices(yield func(gensyn.MIDIInputDevice) bool) {
	for _, device := range m.inputDevices {
		if !yield(device) {
			break
		}
	}
}

func (m *RTMIDIContext) initInputDevices(yield func(gensyn.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for i := 0; i < len(ins); i++ {
		m.inputDevices = append(m.inputDevices, RTMIDIDevice{context: m, in: ins[i], id: i})
	}
	m.devicesInitialized = true
	m.yieldCachedInputDevices(yield)
}

func (m *RTMIDIContext) Support() gensyn.MIDISupport {
	if m.driver == nil {
		return gensyn.MIDISupportNoDriver
	}
	return gensyn.MIDISupported
}

// Open an input device while closing the currently open if necessary.
func (d RTMIDIDevice) Open() error {
	c := d.context
	if c.currentIn == d.in {
		return nil
	}
	if c.driver == nil {
		return errNoDriver
	}
	c.closeCurrent()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, c.handler(d.id))
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	c.currentIn, c.stop = d.in, stop
	return nil
}

func (d RTMIDIDevice) Close() error {
	if d.context.currentIn != d.in {
		return nil
	}
	return d.context.closeCurrent()
}

func (d RTMIDIDevice) IsOpen() bool {
	return d.context.currentIn == d.in && d.in.IsOpen()
}

func (d RTMIDIDevice) String() string {
	return d.in.String()
}

func (c *RTMIDIContext) closeCurrent() error {
	if c.currentIn == nil {
		return nil
	}
	if c.stop != nil {
		c.stop()
	}
	err := c.currentIn.Close()
	c.currentIn, c.stop = nil, nil
	return err
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	c.closeCurrent()
	c.driver.Close()
}

func (c *RTMIDIContext) HasDeviceOpen() bool {
	return c.currentIn != nil && c.currentIn.IsOpen()
}

// OpenByPrefix opens the first input whose name starts with namePrefix, or
// the first input at all if takeFirst is set.
func (c *RTMIDIContext) OpenByPrefix(namePrefix string, takeFirst bool) error {
	if namePrefix == "" && !takeFirst {
		return nil
	}
	if takeFirst {
		namePrefix = ""
	}
	input, ok := gensyn.FindMIDIInput(c, namePrefix)
	if !ok {
		if takeFirst {
			return errors.New("could not find any MIDI input")
		}
		return fmt.Errorf("could not find any MIDI input starting with %q", namePrefix)
	}
	return input.Open()
}

// Dropped returns the number of messages the consumer refused.
func (c *RTMIDIContext) Dropped() uint64 {
	return c.dropped.Load()
}

func (c *RTMIDIContext) handler(id int) func(midi.Message, int32) {
	return func(msg midi.Message, timestampms int32) {
		e, ok := ToEvent(id, msg)
		if !ok {
			return
		}
		if !c.deliver(e) { // if the queue is full, just drop the message
			c.dropped.Add(1)
		}
	}
}

// ToEvent converts a channel voice message to an Event. Other messages, like
// sysex or realtime, are not convertible.
func ToEvent(deviceID int, msg midi.Message) (gensyn.Event, bool) {
	if len(msg) == 0 || msg[0] < 0x80 || msg[0] >= 0xF0 {
		return gensyn.Event{}, false
	}
	e := gensyn.Event{DeviceID: deviceID, Input: msg[0]}
	if len(msg) > 1 {
		e.Data1 = msg[1]
	}
	if len(msg) > 2 {
		e.Data2 = msg[2]
	}
	return e, true
}
