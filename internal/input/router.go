package input

import (
	"github.com/google/uuid"
)

// Handler receives dispatched events.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	id   uuid.UUID
	area string
}

// Valid reports whether the subscription was issued by a router.
func (s Subscription) Valid() bool {
	return s.id != uuid.Nil
}

type entry struct {
	id uuid.UUID
	fn Handler
}

// Router fans events out to global observers and to hit-area handlers.
//
// Global observers see every event. Area handlers only see pointer events whose
// Target equals their area. For one event, global observers run before area
// handlers, each group in subscription order.
type Router struct {
	global []entry
	areas  map[string][]entry
	queue  []Event
}

func NewRouter() *Router {
	return &Router{
		areas: make(map[string][]entry),
	}
}

// Subscribe registers a process-wide observer.
func (r *Router) Subscribe(fn Handler) Subscription {
	id := uuid.New()
	r.global = append(r.global, entry{id: id, fn: fn})
	return Subscription{id: id}
}

// SubscribeArea registers a handler for pointer events aimed at area.
func (r *Router) SubscribeArea(area string, fn Handler) Subscription {
	id := uuid.New()
	r.areas[area] = append(r.areas[area], entry{id: id, fn: fn})
	return Subscription{id: id, area: area}
}

// Unsubscribe removes a handler. Unknown or already removed subscriptions are ignored.
func (r *Router) Unsubscribe(s Subscription) {
	if !s.Valid() {
		return
	}
	if s.area == "" {
		r.global = remove(r.global, s.id)
		return
	}
	handlers := remove(r.areas[s.area], s.id)
	if len(handlers) == 0 {
		delete(r.areas, s.area)
		return
	}
	r.areas[s.area] = handlers
}

func remove(entries []entry, id uuid.UUID) []entry {
	for i, e := range entries {
		if e.id == id {
			out := make([]entry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...)
		}
	}
	return entries
}

// Post queues an event for the next Flush. Hosts call it from their input
// callbacks so events reach scripts before the frame's physics step.
func (r *Router) Post(ev Event) {
	r.queue = append(r.queue, ev)
}

// Pending returns the number of queued events.
func (r *Router) Pending() int {
	return len(r.queue)
}

// Flush dispatches queued events in the order they were posted.
func (r *Router) Flush() {
	for len(r.queue) > 0 {
		ev := r.queue[0]
		r.queue = r.queue[1:]
		r.Dispatch(ev)
	}
	r.queue = r.queue[:0]
}

// Dispatch delivers ev immediately. Handlers may subscribe or unsubscribe while
// the event is being delivered; the change applies from the next event.
func (r *Router) Dispatch(ev Event) {
	for _, e := range r.global {
		e.fn(ev)
	}
	if area := target(ev); area != "" {
		for _, e := range r.areas[area] {
			e.fn(ev)
		}
	}
}

// Observers returns the number of global observers and area handlers.
func (r *Router) Observers() (global, area int) {
	for _, handlers := range r.areas {
		area += len(handlers)
	}
	return len(r.global), area
}
