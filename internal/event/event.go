// internal/event/event.go
package event

// EventType задаёт тип события оверлея
type EventType string

// Event carries one notification; Data holds the payload type documented
// next to each EventType.
type Event struct {
	Type EventType
	Data any
}

type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       uint64
	listener Listener
}

// Dispatcher delivers overlay events synchronously, in subscription order.
// It is used only from the simulation goroutine and takes no locks.
type Dispatcher struct {
	subs   map[EventType][]subscription
	nextID uint64
	counts map[EventType]int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs:   make(map[EventType][]subscription),
		counts: make(map[EventType]int),
	}
}

// Subscribe registers listener for eventType and returns the function that
// removes exactly this subscription. Calling it twice is harmless.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (cancel func()) {
	d.nextID++
	id := d.nextID
	d.subs[eventType] = append(d.subs[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

func (d *Dispatcher) remove(eventType EventType, id uint64) {
	subs := d.subs[eventType]
	for i, s := range subs {
		if s.id == id {
			// копия, чтобы не портить срез, по которому идёт Dispatch
			d.subs[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch is a no-op on a nil Dispatcher so optional wiring needs no checks.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	d.counts[event.Type]++
	for _, s := range d.subs[event.Type] {
		s.listener.OnEvent(event)
	}
}

// Count returns how many events of eventType were dispatched so far.
func (d *Dispatcher) Count(eventType EventType) int {
	if d == nil {
		return 0
	}
	return d.counts[eventType]
}
