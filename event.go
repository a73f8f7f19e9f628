package gensyn

type (
	// Event is an input event from a device such as a MIDI controller. For
	// MIDI, Input is the status byte and Data1, Data2 the two data bytes.
	Event struct {
		DeviceID int
		Input    uint8
		Data1    uint8
		Data2    uint8
	}

	// EventQueue is a bounded multi-producer queue of events. When the queue
	// is full, new events are rejected; events already waiting are never
	// overwritten.
	EventQueue struct {
		events chan Event
	}
)

// MIDI status nibbles understood by the built-in event consumers.
const (
	NoteOff uint8 = 0x80
	NoteOn  uint8 = 0x90
)

func NewEventQueue(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &EventQueue{events: make(chan Event, capacity)}
}

// Push enqueues an event without blocking. It returns false if the queue was
// full and the event was dropped.
func (q *EventQueue) Push(e Event) bool {
	return TrySend(q.events, e)
}

// Drain appends all currently waiting events to dst and returns it.
func (q *EventQueue) Drain(dst []Event) []Event {
	for {
		select {
		case e := <-q.events:
			dst = append(dst, e)
		default:
			return dst
		}
	}
}

// Len returns the number of waiting events.
func (q *EventQueue) Len() int { return len(q.events) }

// Channel returns the MIDI channel of the event, 0-15.
func (e Event) Channel() int { return int(e.Input & 0x0F) }

// IsNoteOn reports whether the event starts a note. A note-on with zero
// velocity is a note-off, as MIDI defines it.
func (e Event) IsNoteOn() bool {
	return e.Input&0xF0 == NoteOn && e.Data2 > 0
}

// IsNoteOff reports whether the event releases a note.
func (e Event) IsNoteOff() bool {
	s := e.Input & 0xF0
	return s == NoteOff || (s == NoteOn && e.Data2 == 0)
}

// TrySend offers v to c and reports whether c accepted it. It never waits for
// room.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
		return true
	default:
		return false
	}
}
