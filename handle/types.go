package handle

import "github.com/typedbuf/typedbuf/view"

// Handle is an opaque reference to a buffer in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// DefaultTag resolves to the buffer's cached type when passed as the
// tag argument of a table operation. It carries bits outside the tag
// mask and is never itself a valid tag.
const DefaultTag view.Tag = 0xff

// EventType enumerates buffer lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventResized
	EventReleased
)

// Event represents a buffer lifecycle event.
type Event struct {
	Handle Handle
	Size   int
	Type   EventType
}

// Observer receives notifications about buffer lifecycle events.
type Observer interface {
	OnBufferEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnBufferEvent(e Event) { f(e) }
