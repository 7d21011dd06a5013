package campaign

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomwalk/internal/telemetry"
)

// Campaign owns the assets of a world and ticks them.
// Assets are unique and kept in insertion order; rooms are tracked again on
// their own so doors can be cleaned up when a room is removed.
type Campaign struct {
	assets []Asset
	rooms  []*Room
	ticks  int
}

// New creates a campaign with the given assets. Duplicates are dropped.
func New(assets ...Asset) *Campaign {
	c := &Campaign{}
	for _, a := range assets {
		c.AddAsset(a)
	}
	return c
}

// AddAsset appends an asset unless it is already present.
func (c *Campaign) AddAsset(a Asset) {
	if a == nil || slices.Contains(c.assets, a) {
		return
	}
	c.assets = append(c.assets, a)
	if room, ok := a.(*Room); ok {
		c.rooms = append(c.rooms, room)
	}
}

// AddRoom adds a room and, if connectFrom is not nil, links the two rooms
// with a pair of doors.
func (c *Campaign) AddRoom(room, connectFrom *Room) {
	c.AddAsset(room)
	if connectFrom != nil {
		connectFrom.ConnectTo(room, "")
	}
}

// RemoveAsset removes an asset. Removing a room first removes every tracked
// room's doors into it; the removed room's own doors go with it.
func (c *Campaign) RemoveAsset(a Asset) {
	idx := slices.Index(c.assets, a)
	if idx < 0 {
		return
	}
	if room, ok := a.(*Room); ok {
		c.rooms = slices.DeleteFunc(c.rooms, func(other *Room) bool {
			return other == room
		})
		for _, other := range c.rooms {
			other.DisconnectFrom(room)
		}
	}
	c.assets = slices.Delete(c.assets, idx, idx+1)
}

// Assets returns a copy of the campaign's assets in insertion order.
func (c *Campaign) Assets() []Asset {
	return slices.Clone(c.assets)
}

// Rooms returns a copy of the campaign's rooms in insertion order.
func (c *Campaign) Rooms() []*Room {
	return slices.Clone(c.rooms)
}

// Room returns the first room with the given name, or nil.
func (c *Campaign) Room(name string) *Room {
	for _, r := range c.rooms {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Contains returns true if the asset belongs to the campaign.
func (c *Campaign) Contains(a Asset) bool {
	return slices.Contains(c.assets, a)
}

// Ticks returns how many times Tick has run.
func (c *Campaign) Ticks() int { return c.ticks }

// VisitedCount returns how many rooms have been entered at least once.
func (c *Campaign) VisitedCount() int {
	count := 0
	for _, r := range c.rooms {
		if r.Visited() {
			count++
		}
	}
	return count
}

// Tick calls Tick on every asset once, in insertion order.
// Assets added or removed by handlers during the pass take effect next tick.
func (c *Campaign) Tick(ctx context.Context) {
	tracer := telemetry.Tracer("campaign")
	_, span := tracer.Start(ctx, "campaign.tick")
	defer span.End()

	c.ticks++
	assets := slices.Clone(c.assets)
	for _, a := range assets {
		a.Tick()
	}

	span.SetAttributes(
		attribute.Int("campaign.tick", c.ticks),
		attribute.Int("campaign.assets", len(assets)),
		attribute.Int("campaign.rooms_visited", c.VisitedCount()),
	)
}
