package campaign

import "math/rand"

// DoorSelector picks the door a walker tries next, or nil to stay put.
type DoorSelector func(doors []*Door) *Door

// SelectUnvisited picks the first door into a room nobody has visited yet.
// Once every neighbor is visited the walker stops moving.
func SelectUnvisited(doors []*Door) *Door {
	for _, d := range doors {
		if d.room != nil && !d.room.visited {
			return d
		}
	}
	return nil
}

// SelectNearestUnvisited picks a door into an unvisited room if there is
// one, and otherwise the door on the shortest path to the closest unvisited
// room. It returns nil once everything reachable has been visited.
func SelectNearestUnvisited(doors []*Door) *Door {
	if d := SelectUnvisited(doors); d != nil {
		return d
	}

	var best *Door
	bestDist := -1
	for _, d := range doors {
		if d.room == nil {
			continue
		}
		if dist := distanceToUnvisited(d.room); dist >= 0 && (bestDist < 0 || dist < bestDist) {
			best, bestDist = d, dist
		}
	}
	return best
}

// distanceToUnvisited returns the number of doors between start and the
// closest unvisited room, or -1 if there is none.
func distanceToUnvisited(start *Room) int {
	dist := map[*Room]int{start: 0}
	queue := []*Room{start}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		if !r.visited {
			return dist[r]
		}
		for _, d := range r.doors {
			if d.room == nil {
				continue
			}
			if _, seen := dist[d.room]; !seen {
				dist[d.room] = dist[r] + 1
				queue = append(queue, d.room)
			}
		}
	}
	return -1
}

// SelectFirst always picks the first door, dead ends included.
func SelectFirst(doors []*Door) *Door {
	if len(doors) == 0 {
		return nil
	}
	return doors[0]
}

// SelectRandom returns a selector that picks any door with a destination.
func SelectRandom(rng *rand.Rand) DoorSelector {
	return func(doors []*Door) *Door {
		open := make([]*Door, 0, len(doors))
		for _, d := range doors {
			if d.room != nil {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			return nil
		}
		return open[rng.Intn(len(open))]
	}
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithSpeed sets how many ticks pass between moves. Values below 1 mean 1.
func WithSpeed(speed int) WalkerOption {
	return func(w *Walker) {
		if speed < 1 {
			speed = 1
		}
		w.speed = speed
	}
}

// WithDoorSelector replaces the default SelectUnvisited policy.
func WithDoorSelector(sel DoorSelector) WalkerOption {
	return func(w *Walker) {
		if sel != nil {
			w.selectDoor = sel
		}
	}
}

// Walker is an asset that moves through doors on its own.
type Walker struct {
	Emitter
	room        *Room
	speed       int
	ticksPassed int
	selectDoor  DoorSelector
	stalled     bool
}

// NewWalker creates a walker and enters it into room.
func NewWalker(name string, room *Room, opts ...WalkerOption) *Walker {
	w := &Walker{
		speed:      1,
		selectDoor: SelectUnvisited,
	}
	w.init(w, name)
	for _, opt := range opts {
		opt(w)
	}
	if room != nil {
		w.Place(room)
	}
	return w
}

// Room returns the room the walker is in.
func (w *Walker) Room() *Room { return w.room }

// Speed returns the number of ticks between moves.
func (w *Walker) Speed() int { return w.speed }

// Stalled returns true if the last move attempt found no door to take.
func (w *Walker) Stalled() bool { return w.stalled }

// Place moves the walker straight into room without using a door.
func (w *Walker) Place(room *Room) {
	if w.room == room {
		room.Enter(w)
		return
	}
	prev := w.room
	w.room = room
	if prev != nil {
		prev.Leave(w)
	}
	room.Enter(w)
}

// Tick emits EventTick and, every speed ticks, tries to move through a door.
//
// If the chosen door rejects the walker it stays where it is and no leave
// event fires. On success the walker's room is updated before the old room
// emits EventLeave.
func (w *Walker) Tick() {
	w.Emit(EventTick, nil)

	w.ticksPassed++
	if w.ticksPassed < w.speed {
		return
	}
	w.ticksPassed = 0

	if w.room == nil {
		w.stalled = true
		return
	}

	door := w.selectDoor(w.room.Doors())
	if door == nil {
		w.stalled = true
		return
	}
	w.stalled = false

	next := door.Enter(w)
	if next == nil || next == w.room {
		return
	}

	prev := w.room
	w.room = next
	prev.Leave(w)
}
