package campaign

import "testing"

func TestRoomConnectTo(t *testing.T) {
	r0 := NewRoom("R0")
	r1 := NewRoom("R1")

	toR1, toR0 := r0.ConnectTo(r1, "")

	if toR1.Room() != r1 || toR0.Room() != r0 {
		t.Fatal("ConnectTo returned doors with wrong destinations")
	}
	if doors := r0.Doors(); len(doors) != 1 || doors[0] != toR1 {
		t.Errorf("R0 doors = %v, want [toR1]", doors)
	}
	if doors := r1.Doors(); len(doors) != 1 || doors[0] != toR0 {
		t.Errorf("R1 doors = %v, want [toR0]", doors)
	}
	if toR1.Name() != "R0 to R1" {
		t.Errorf("Default door name = %q, want %q", toR1.Name(), "R0 to R1")
	}

	named, _ := r0.ConnectTo(NewRoom("Cave"), "Cave-mouth")
	if named.Name() != "Cave-mouth" {
		t.Errorf("Door name = %q, want %q", named.Name(), "Cave-mouth")
	}
}

func TestRoomDisconnectFromOneSided(t *testing.T) {
	r0 := NewRoom("R0")
	r1 := NewRoom("R1")
	r2 := NewRoom("R2")
	r0.ConnectTo(r1, "")
	r0.ConnectTo(r2, "")

	r0.DisconnectFrom(r1)

	if r0.DoorTo(r1) != nil {
		t.Error("R0 should have no door to R1")
	}
	if r0.DoorTo(r2) == nil {
		t.Error("R0 should still lead to R2")
	}
	if r1.DoorTo(r0) == nil {
		t.Error("R1's door back to R0 should be untouched")
	}
}

func TestRoomEnterIdempotent(t *testing.T) {
	room := NewRoom("Test room")
	w := NewWalker("Walker", nil)
	enters := 0
	room.OnFunc(EventEnter, func(_ Asset, data any) {
		enters++
		if data != w {
			t.Errorf("Enter data = %v, want the walker", data)
		}
	})

	if got := room.Enter(w); got != room {
		t.Errorf("Enter() returned %v, want the room", got)
	}
	if !room.Visited() {
		t.Error("Room should be visited after enter")
	}

	room.Enter(w)

	if enters != 1 {
		t.Errorf("Expected 1 enter event, got %d", enters)
	}
	if len(room.Walkers()) != 1 {
		t.Errorf("Expected 1 walker, got %d", len(room.Walkers()))
	}
}

func TestRoomLeave(t *testing.T) {
	room := NewRoom("Test room")
	w := NewWalker("Walker", room)
	leaves := 0
	room.OnFunc(EventLeave, func(Asset, any) { leaves++ })

	room.Leave(NewWalker("Stranger", nil))
	if leaves != 0 {
		t.Errorf("Leaving with an absent walker emitted %d events", leaves)
	}

	room.Leave(w)
	if room.Contains(w) {
		t.Error("Walker should be gone after Leave")
	}
	if leaves != 1 {
		t.Errorf("Expected 1 leave event, got %d", leaves)
	}
	if !room.Visited() {
		t.Error("Visited should stay set after the walker leaves")
	}
}

func TestDoorEnter(t *testing.T) {
	room := NewRoom("Test room")
	door := NewDoor("Test door", room)
	w := NewWalker("Walker", nil)
	var order []string
	door.OnFunc(EventEnter, func(Asset, any) { order = append(order, "door") })
	room.OnFunc(EventEnter, func(Asset, any) { order = append(order, "room") })

	if got := door.Enter(w); got != room {
		t.Errorf("Door.Enter() = %v, want the room", got)
	}

	if len(order) != 2 || order[0] != "door" || order[1] != "room" {
		t.Errorf("Expected door then room events, got %v", order)
	}
	if !room.Contains(w) {
		t.Error("Walker should be in the room")
	}
}

func TestDoorEnterDeadEnd(t *testing.T) {
	door := NewDoor("Bricked up", nil)
	start := NewRoom("Start")
	w := NewWalker("Walker", start)
	doorEvents := 0
	door.OnFunc(EventEnter, func(Asset, any) { doorEvents++ })
	startEvents := 0
	start.OnFunc(EventEnter, func(Asset, any) { startEvents++ })
	start.OnFunc(EventLeave, func(Asset, any) { startEvents++ })

	if got := door.Enter(w); got != nil {
		t.Errorf("Dead-end door returned %v, want nil", got)
	}
	if doorEvents != 1 {
		t.Errorf("Expected 1 door event, got %d", doorEvents)
	}
	if startEvents != 0 {
		t.Errorf("Dead-end door fired %d room events", startEvents)
	}
	if !start.Contains(w) || len(start.Walkers()) != 1 {
		t.Error("Dead-end door should not change room occupancy")
	}
}

func TestRoomNeighbors(t *testing.T) {
	hub := NewRoom("Hub")
	a := NewRoom("A")
	b := NewRoom("B")
	hub.ConnectTo(a, "")
	hub.ConnectTo(a, "second door")
	hub.ConnectTo(b, "")
	hub.AddDoor(NewDoor("Nowhere", nil))

	neighbors := hub.Neighbors()
	if len(neighbors) != 2 || neighbors[0] != a || neighbors[1] != b {
		t.Errorf("Neighbors() = %v, want [A B]", neighbors)
	}
}
