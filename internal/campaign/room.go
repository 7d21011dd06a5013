package campaign

import "slices"

// Room is a node in the campaign graph.
// Walkers inside a room are tracked in entry order; a walker is in at most
// one room at a time, which Walker enforces by leaving before it moves on.
type Room struct {
	Emitter
	doors   []*Door
	walkers []*Walker
	visited bool
}

// NewRoom creates an empty, unvisited room.
func NewRoom(name string) *Room {
	r := &Room{}
	r.init(r, name)
	r.events[EventEnter] = []*Handler{}
	r.events[EventLeave] = []*Handler{}
	return r
}

// ConnectTo links this room and other with a door in each direction.
// An empty name is replaced with "<from> to <to>".
func (r *Room) ConnectTo(other *Room, name string) (toOther, toSelf *Door) {
	toOther = NewDoor(doorName(name, r, other), other)
	toSelf = NewDoor(doorName(name, other, r), r)
	r.AddDoor(toOther)
	other.AddDoor(toSelf)
	return toOther, toSelf
}

// DisconnectFrom removes this room's doors that lead to other.
// Doors in other that lead back here are left alone.
func (r *Room) DisconnectFrom(other *Room) {
	r.doors = slices.DeleteFunc(r.doors, func(d *Door) bool {
		return d.room == other
	})
}

// AddDoor attaches a door to this room. Adding the same door twice is a no-op.
func (r *Room) AddDoor(d *Door) {
	if d == nil || slices.Contains(r.doors, d) {
		return
	}
	r.doors = append(r.doors, d)
}

// Doors returns a copy of the room's doors.
func (r *Room) Doors() []*Door {
	return slices.Clone(r.doors)
}

// DoorTo returns the first door leading to other, or nil.
func (r *Room) DoorTo(other *Room) *Door {
	for _, d := range r.doors {
		if d.room == other {
			return d
		}
	}
	return nil
}

// Enter puts a walker in the room, marks it visited and emits EventEnter.
// Entering a room the walker is already in does nothing.
func (r *Room) Enter(w *Walker) *Room {
	if r.Contains(w) {
		return r
	}
	r.walkers = append(r.walkers, w)
	r.visited = true
	r.Emit(EventEnter, w)
	return r
}

// Leave removes a walker and emits EventLeave. Unknown walkers are ignored.
func (r *Room) Leave(w *Walker) {
	if !r.Contains(w) {
		return
	}
	r.walkers = slices.DeleteFunc(r.walkers, func(other *Walker) bool {
		return other == w
	})
	r.Emit(EventLeave, w)
}

// Contains returns true if the walker is in the room.
func (r *Room) Contains(w *Walker) bool {
	return slices.Contains(r.walkers, w)
}

// Walkers returns a copy of the walkers in the room.
func (r *Room) Walkers() []*Walker {
	return slices.Clone(r.walkers)
}

// Visited returns true once any walker has entered the room.
func (r *Room) Visited() bool { return r.visited }

// Neighbors returns the distinct rooms reachable through this room's doors.
func (r *Room) Neighbors() []*Room {
	var rooms []*Room
	for _, d := range r.doors {
		if d.room != nil && !slices.Contains(rooms, d.room) {
			rooms = append(rooms, d.room)
		}
	}
	return rooms
}

// Door is a one-way edge to a room. A door with no room is a dead end.
type Door struct {
	Emitter
	room *Room
}

// NewDoor creates a door leading to room, which may be nil.
func NewDoor(name string, room *Room) *Door {
	d := &Door{room: room}
	d.init(d, name)
	d.events[EventEnter] = []*Handler{}
	return d
}

// Room returns where the door leads, or nil for a dead end.
func (d *Door) Room() *Room { return d.room }

// Enter emits the door's EventEnter and then enters the destination room.
// It returns nil if the door leads nowhere.
func (d *Door) Enter(w *Walker) *Room {
	d.Emit(EventEnter, w)
	if d.room == nil {
		return nil
	}
	return d.room.Enter(w)
}

func doorName(name string, from, to *Room) string {
	if name != "" {
		return name
	}
	return from.Name() + " to " + to.Name()
}
