package board

type EventKind uint8

const (
	TileCreated EventKind = iota
	TileDestroyed
	TileMoved
)

func (k EventKind) String() string {
	switch k {
	case TileCreated:
		return "created"
	case TileDestroyed:
		return "destroyed"
	case TileMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Event describes a change to a tile. Position is the tile's position at
// the time of the event; From is only set for TileMoved.
type Event struct {
	Kind     EventKind
	Tile     TileId
	Position Position
	From     Position
}

// Observer receives board events synchronously, after the change has been
// applied to both the registry and the grid.
type Observer interface {
	OnTileEvent(ev Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ev Event)

func (f ObserverFunc) OnTileEvent(ev Event) { f(ev) }

// EventLog buffers events for a host that consumes them once per cycle,
// e.g. to update sprite transforms after the systems have run.
type EventLog struct {
	events []Event
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) OnTileEvent(ev Event) {
	l.events = append(l.events, ev)
}

// Len returns the number of buffered events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Drain returns all buffered events in emission order and resets the buffer.
func (l *EventLog) Drain() []Event {
	if len(l.events) == 0 {
		return nil
	}
	out := make([]Event, len(l.events))
	copy(out, l.events)
	l.events = l.events[:0]
	return out
}
