package grid

import (
	"fmt"

	"map-tools/internal/core"
)

// EventType names an inbound event forwarded by a view.
type EventType string

const (
	EventPointerEnter     EventType = "pointer-enter"
	EventPointerLeave     EventType = "pointer-leave"
	EventPointerLeaveGrid EventType = "pointer-leave-grid"
	EventClick            EventType = "click"
	EventClearSelection   EventType = "clear-selection"
	EventPaint            EventType = "paint"
	EventShapeChange      EventType = "shape-change"
)

// Event is one inbound request. Only the fields relevant to Type are read.
type Event struct {
	Type       EventType
	Coordinate core.Coordinate
	Brush      Brush
	Shape      core.Shape

	// Generation is the store generation the event was issued against. The
	// queue stamps it on Push.
	Generation uint64
}

func (e Event) String() string {
	switch e.Type {
	case EventPointerEnter, EventPointerLeave, EventClick:
		return fmt.Sprintf("%s(%v)", e.Type, e.Coordinate)
	case EventPaint:
		return fmt.Sprintf("%s(%v, %v)", e.Type, e.Coordinate, e.Brush)
	case EventShapeChange:
		return fmt.Sprintf("%s(%v)", e.Type, e.Shape)
	default:
		return string(e.Type)
	}
}

// PointerEnter builds a pointer-enter event.
func PointerEnter(c core.Coordinate) Event { return Event{Type: EventPointerEnter, Coordinate: c} }

// PointerLeave builds a pointer-leave event for the tile at c.
func PointerLeave(c core.Coordinate) Event { return Event{Type: EventPointerLeave, Coordinate: c} }

// PointerLeaveGrid builds a pointer-leave-grid event.
func PointerLeaveGrid() Event { return Event{Type: EventPointerLeaveGrid} }

// Click builds a click event.
func Click(c core.Coordinate) Event { return Event{Type: EventClick, Coordinate: c} }

// ClearSelection builds a clear-selection event.
func ClearSelection() Event { return Event{Type: EventClearSelection} }

// PaintRequest builds a paint event.
func PaintRequest(c core.Coordinate, b Brush) Event {
	return Event{Type: EventPaint, Coordinate: c, Brush: b}
}

// ShapeChange builds a shape-change event.
func ShapeChange(s core.Shape) Event { return Event{Type: EventShapeChange, Shape: s} }

// NotificationType names an outbound change notification.
type NotificationType string

const (
	GridRebuilt       NotificationType = "grid-rebuilt"
	HighlightsChanged NotificationType = "highlights-changed"
	TilePainted       NotificationType = "tile-painted"
)

// Notification tells views what changed after a completed transition.
type Notification struct {
	Type       NotificationType
	Shape      core.Shape
	Generation uint64
	State      InteractionState
	// Tile is set for TilePainted.
	Tile Tile
}

// Listener receives notifications.
type Listener interface {
	OnNotification(n Notification)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(n Notification)

// OnNotification calls f(n).
func (f ListenerFunc) OnNotification(n Notification) { f(n) }

// Dispatcher fans notifications out to listeners subscribed by type.
type Dispatcher struct {
	listeners map[NotificationType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[NotificationType][]Listener)}
}

// Subscribe registers l for notifications of type t.
func (d *Dispatcher) Subscribe(t NotificationType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// SubscribeAll registers l for every notification type.
func (d *Dispatcher) SubscribeAll(l Listener) {
	for _, t := range []NotificationType{GridRebuilt, HighlightsChanged, TilePainted} {
		d.Subscribe(t, l)
	}
}

// Unsubscribe removes the first registration of l for type t. Listeners must
// be comparable; ListenerFunc values cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(t NotificationType, l Listener) {
	listeners := d.listeners[t]
	for i, existing := range listeners {
		if existing == l {
			d.listeners[t] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers n to every listener subscribed to its type, in
// subscription order.
func (d *Dispatcher) Dispatch(n Notification) {
	for _, l := range d.listeners[n.Type] {
		l.OnNotification(n)
	}
}
