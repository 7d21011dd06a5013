// Package campaign provides the room graph that walkers explore and the
// event plumbing that lets other systems react to what happens in it.
package campaign

import (
	"errors"
	"slices"
)

// EventType names an event slot on an asset.
type EventType string

const (
	// EventTick fires once per asset per campaign tick.
	EventTick EventType = "tick"
	// EventEnter fires when a walker enters a room or passes through a door.
	EventEnter EventType = "enter"
	// EventLeave fires when a walker leaves a room.
	EventLeave EventType = "leave"
)

// ErrInvalidHandler is returned when registering a nil handler or callback.
var ErrInvalidHandler = errors.New("invalid handler")

// Callback is the function a Handler wraps.
// caller is the asset that emitted the event.
type Callback func(caller Asset, data any)

// Handler wraps a callback so it can be registered and removed by identity.
// The same callback wrapped twice gives two independent handlers.
type Handler struct {
	callback Callback
	enabled  bool
}

// NewHandler wraps a callback in an enabled handler.
func NewHandler(cb Callback) *Handler {
	return &Handler{callback: cb, enabled: true}
}

// Enabled returns true if the handler will fire when its event is emitted.
func (h *Handler) Enabled() bool { return h.enabled }

// Enable turns the handler on.
func (h *Handler) Enable() { h.enabled = true }

// Disable keeps the handler registered but stops it from firing.
func (h *Handler) Disable() { h.enabled = false }

// Call runs the callback directly.
func (h *Handler) Call(caller Asset, data any) {
	h.callback(caller, data)
}

// Asset is anything in the campaign that has a name, reacts to ticks and
// emits events.
type Asset interface {
	Name() string
	Tick()
	On(t EventType, h *Handler) error
	OnFunc(t EventType, cb Callback) (*Handler, error)
	Off(t EventType, h *Handler)
	Emit(t EventType, data any)
}

// Emitter is the event table embedded in every asset.
// owner is passed to handlers as the caller, so a Room's handlers see the
// Room and not the Emitter.
type Emitter struct {
	name   string
	owner  Asset
	events map[EventType][]*Handler
}

func (e *Emitter) init(owner Asset, name string) {
	e.name = name
	e.owner = owner
	e.events = map[EventType][]*Handler{
		EventTick: {},
	}
}

// Name returns the asset's name.
func (e *Emitter) Name() string { return e.name }

// On registers a handler for an event type.
// Registering the same handler twice is a no-op.
func (e *Emitter) On(t EventType, h *Handler) error {
	if h == nil || h.callback == nil {
		return ErrInvalidHandler
	}
	if e.events == nil {
		e.events = map[EventType][]*Handler{EventTick: {}}
	}
	if slices.Contains(e.events[t], h) {
		return nil
	}
	e.events[t] = append(e.events[t], h)
	return nil
}

// OnFunc wraps cb in a new handler, registers it, and returns the handler
// so it can be removed later.
func (e *Emitter) OnFunc(t EventType, cb Callback) (*Handler, error) {
	if cb == nil {
		return nil, ErrInvalidHandler
	}
	h := NewHandler(cb)
	if err := e.On(t, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Off removes a handler. Unknown types and handlers are ignored.
func (e *Emitter) Off(t EventType, h *Handler) {
	handlers, ok := e.events[t]
	if !ok {
		return
	}
	e.events[t] = slices.DeleteFunc(handlers, func(other *Handler) bool {
		return other == h
	})
}

// Emit calls every enabled handler registered for t, in registration order.
//
// The handler list is copied before the first call. Handlers registered
// while the emission is running wait for the next Emit; handlers removed
// while it is running still get called this once.
func (e *Emitter) Emit(t EventType, data any) {
	handlers := slices.Clone(e.events[t])
	for _, h := range handlers {
		if h.enabled {
			h.callback(e.owner, data)
		}
	}
}

// Handlers returns a copy of the handlers registered for t.
func (e *Emitter) Handlers(t EventType) []*Handler {
	return slices.Clone(e.events[t])
}

// HasEvent returns true if a slot exists for t, even an empty one.
func (e *Emitter) HasEvent(t EventType) bool {
	_, ok := e.events[t]
	return ok
}

// Tick emits the tick event. Assets that do more per tick override this.
func (e *Emitter) Tick() {
	e.Emit(EventTick, nil)
}

// BasicAsset is an asset with no behavior beyond its events.
type BasicAsset struct {
	Emitter
}

// NewAsset creates a plain named asset.
func NewAsset(name string) *BasicAsset {
	a := &BasicAsset{}
	a.init(a, name)
	return a
}

// Ensure the asset kinds implement Asset
var (
	_ Asset = (*BasicAsset)(nil)
	_ Asset = (*Room)(nil)
	_ Asset = (*Door)(nil)
	_ Asset = (*Walker)(nil)
)
