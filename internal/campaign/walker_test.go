package campaign

import (
	"math/rand"
	"testing"
)

func TestWalkerStartsInRoom(t *testing.T) {
	room := NewRoom("Start")
	w := NewWalker("Walker", room)

	if w.Room() != room {
		t.Errorf("Room() = %v, want start room", w.Room())
	}
	if !room.Contains(w) {
		t.Error("Start room should contain the walker")
	}
	if !room.Visited() {
		t.Error("Start room should be visited")
	}
	if w.Speed() != 1 {
		t.Errorf("Default speed = %d, want 1", w.Speed())
	}
}

func TestWalkerTickMoves(t *testing.T) {
	r0 := NewRoom("R0")
	r1 := NewRoom("R1")
	r0.ConnectTo(r1, "")
	w := NewWalker("Walker", r0)

	w.Tick()

	if w.Room() != r1 {
		t.Errorf("Walker in %s, want R1", w.Room().Name())
	}
	if r0.Contains(w) {
		t.Error("R0 should no longer contain the walker")
	}
	if !r1.Contains(w) {
		t.Error("R1 should contain the walker")
	}
	if !r1.Visited() {
		t.Error("R1 should be visited")
	}
}

func TestWalkerTickEventOrder(t *testing.T) {
	r0 := NewRoom("R0")
	r1 := NewRoom("R1")
	door, _ := r0.ConnectTo(r1, "")
	w := NewWalker("Walker", r0)
	var order []string
	w.OnFunc(EventTick, func(Asset, any) { order = append(order, "tick") })
	door.OnFunc(EventEnter, func(Asset, any) { order = append(order, "door") })
	r1.OnFunc(EventEnter, func(Asset, any) { order = append(order, "enter") })
	r0.OnFunc(EventLeave, func(_ Asset, data any) {
		order = append(order, "leave")
		if data.(*Walker).Room() != r1 {
			t.Error("Walker's room should already be updated when leave fires")
		}
	})

	w.Tick()

	expected := []string{"tick", "door", "enter", "leave"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Event %d = %q, want %q", i, order[i], expected[i])
		}
	}
}

func TestWalkerSpeed(t *testing.T) {
	r0 := NewRoom("R0")
	r1 := NewRoom("R1")
	r0.ConnectTo(r1, "")
	w := NewWalker("Walker", r0, WithSpeed(3))
	ticks := 0
	w.OnFunc(EventTick, func(Asset, any) { ticks++ })

	w.Tick()
	w.Tick()
	if w.Room() != r0 {
		t.Error("Walker moved before its speed was reached")
	}

	w.Tick()
	if w.Room() != r1 {
		t.Error("Walker should move on the third tick")
	}
	if ticks != 3 {
		t.Errorf("Tick event should fire every tick, got %d", ticks)
	}
}

func TestWalkerSpeedClamped(t *testing.T) {
	w := NewWalker("Walker", nil, WithSpeed(0))
	if w.Speed() != 1 {
		t.Errorf("Speed 0 should clamp to 1, got %d", w.Speed())
	}
}

func TestWalkerStallsWhenAllVisited(t *testing.T) {
	r0 := NewRoom("R0")
	r1 := NewRoom("R1")
	r0.ConnectTo(r1, "")
	w := NewWalker("Walker", r0)

	w.Tick() // into R1
	w.Tick() // R0 already visited

	if w.Room() != r1 {
		t.Errorf("Walker should stay in R1, is in %s", w.Room().Name())
	}
	if !w.Stalled() {
		t.Error("Walker should report stalled")
	}
}

func TestWalkerRejectedByDeadEnd(t *testing.T) {
	start := NewRoom("Start")
	start.AddDoor(NewDoor("Locked", nil))
	w := NewWalker("Walker", start, WithDoorSelector(SelectFirst))
	leaves := 0
	start.OnFunc(EventLeave, func(Asset, any) { leaves++ })

	w.Tick()

	if w.Room() != start || !start.Contains(w) {
		t.Error("Rejected walker should stay in its room")
	}
	if leaves != 0 {
		t.Errorf("Rejected move emitted %d leave events", leaves)
	}
	if w.Stalled() {
		t.Error("A walker that found a door is not stalled, even if rejected")
	}
}

func TestWalkerExploresChain(t *testing.T) {
	rooms := []*Room{NewRoom("0"), NewRoom("1"), NewRoom("2"), NewRoom("3")}
	for i := 0; i < len(rooms)-1; i++ {
		rooms[i].ConnectTo(rooms[i+1], "")
	}
	w := NewWalker("Walker", rooms[0])

	for i := 0; i < 10; i++ {
		w.Tick()
	}

	if w.Room() != rooms[3] {
		t.Errorf("Walker should end in the last room, is in %s", w.Room().Name())
	}
	for _, r := range rooms {
		if !r.Visited() {
			t.Errorf("Room %s not visited", r.Name())
		}
		if r != rooms[3] && r.Contains(w) {
			t.Errorf("Room %s still contains the walker", r.Name())
		}
	}
}

func TestWalkerPlace(t *testing.T) {
	a := NewRoom("A")
	b := NewRoom("B")
	w := NewWalker("Walker", a)

	w.Place(b)

	if w.Room() != b || !b.Contains(w) || a.Contains(w) {
		t.Error("Place should move the walker from A to B")
	}
}

func TestSelectRandomSkipsDeadEnds(t *testing.T) {
	target := NewRoom("Target")
	doors := []*Door{NewDoor("Dead", nil), NewDoor("Open", target), NewDoor("Dead 2", nil)}
	sel := SelectRandom(rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		if d := sel(doors); d == nil || d.Room() != target {
			t.Fatalf("SelectRandom picked %v, want the open door", d)
		}
	}

	if sel([]*Door{NewDoor("Dead", nil)}) != nil {
		t.Error("SelectRandom should return nil when no door leads anywhere")
	}
}

func TestSelectFirstEmpty(t *testing.T) {
	if SelectFirst(nil) != nil {
		t.Error("SelectFirst(nil) should return nil")
	}
}

func TestSelectNearestUnvisitedBacktracks(t *testing.T) {
	// hub -> dead (leaf), hub -> a -> b
	hub := NewRoom("Hub")
	dead := NewRoom("Dead end")
	a := NewRoom("A")
	b := NewRoom("B")
	hub.ConnectTo(dead, "")
	hub.ConnectTo(a, "")
	a.ConnectTo(b, "")
	w := NewWalker("Walker", hub, WithDoorSelector(SelectNearestUnvisited))

	var path []string
	for i := 0; i < 6; i++ {
		w.Tick()
		path = append(path, w.Room().Name())
	}

	expected := []string{"Dead end", "Hub", "A", "B", "B", "B"}
	for i := range expected {
		if path[i] != expected[i] {
			t.Errorf("Step %d in %s, want %s (path %v)", i, path[i], expected[i], path)
		}
	}
	if !w.Stalled() {
		t.Error("Walker should stall once everything is visited")
	}
}
