package campaign

import (
	"errors"
	"testing"
)

func TestNewAssetHasTickSlot(t *testing.T) {
	a := NewAsset("Test asset")

	if a.Name() != "Test asset" {
		t.Errorf("Name() = %q, want %q", a.Name(), "Test asset")
	}
	if !a.HasEvent(EventTick) {
		t.Error("New asset should have a tick slot")
	}
	if len(a.Handlers(EventTick)) != 0 {
		t.Errorf("Expected empty tick slot, got %d handlers", len(a.Handlers(EventTick)))
	}
}

func TestAssetOnOff(t *testing.T) {
	a := NewAsset("Test asset")
	h := NewHandler(func(Asset, any) {})

	if err := a.On("test", h); err != nil {
		t.Fatalf("On() failed: %v", err)
	}
	if got := a.Handlers("test"); len(got) != 1 || got[0] != h {
		t.Fatalf("Expected handler registered, got %v", got)
	}

	// Same handle twice is a no-op
	if err := a.On("test", h); err != nil {
		t.Fatalf("second On() failed: %v", err)
	}
	if len(a.Handlers("test")) != 1 {
		t.Errorf("Expected 1 handler after duplicate On, got %d", len(a.Handlers("test")))
	}

	a.Off("test", h)
	if len(a.Handlers("test")) != 0 {
		t.Errorf("Expected handler removed, got %d", len(a.Handlers("test")))
	}

	// Unknown type and unknown handler are ignored
	a.Off("missing", h)
	a.Off("test", NewHandler(func(Asset, any) {}))
}

func TestAssetOnInvalidHandler(t *testing.T) {
	a := NewAsset("Test asset")

	if err := a.On("test", nil); !errors.Is(err, ErrInvalidHandler) {
		t.Errorf("On(nil) = %v, want ErrInvalidHandler", err)
	}
	if err := a.On("test", NewHandler(nil)); !errors.Is(err, ErrInvalidHandler) {
		t.Errorf("On(handler with nil callback) = %v, want ErrInvalidHandler", err)
	}
	if _, err := a.OnFunc("test", nil); !errors.Is(err, ErrInvalidHandler) {
		t.Errorf("OnFunc(nil) = %v, want ErrInvalidHandler", err)
	}
	if a.HasEvent("test") {
		t.Error("Failed registration should not create a slot")
	}
}

func TestAssetSameCallbackTwoHandles(t *testing.T) {
	a := NewAsset("Test asset")
	calls := 0
	cb := func(Asset, any) { calls++ }

	h1, err := a.OnFunc("test", cb)
	if err != nil {
		t.Fatalf("OnFunc failed: %v", err)
	}
	if _, err := a.OnFunc("test", cb); err != nil {
		t.Fatalf("OnFunc failed: %v", err)
	}

	a.Emit("test", nil)
	if calls != 2 {
		t.Errorf("Expected callback called twice, got %d", calls)
	}

	a.Off("test", h1)
	a.Emit("test", nil)
	if calls != 3 {
		t.Errorf("Expected one remaining handle to fire, total calls %d", calls)
	}
}

func TestAssetEmit(t *testing.T) {
	a := NewAsset("Test asset")
	var order []string
	var gotCaller Asset
	var gotData any

	a.OnFunc("test", func(caller Asset, data any) {
		order = append(order, "first")
		gotCaller = caller
		gotData = data
	})
	a.OnFunc("test", func(Asset, any) { order = append(order, "second") })

	a.Emit("test", 42)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected registration order, got %v", order)
	}
	if gotCaller != Asset(a) {
		t.Errorf("Expected caller to be the asset, got %v", gotCaller)
	}
	if gotData != 42 {
		t.Errorf("Expected data 42, got %v", gotData)
	}

	// No registrations is a no-op
	a.Emit("nothing", nil)
}

func TestAssetEmitSkipsDisabled(t *testing.T) {
	a := NewAsset("Test asset")
	calls := 0
	h, _ := a.OnFunc("test", func(Asset, any) { calls++ })

	h.Disable()
	a.Emit("test", nil)
	if calls != 0 {
		t.Errorf("Disabled handler fired %d times", calls)
	}

	h.Enable()
	a.Emit("test", nil)
	if calls != 1 {
		t.Errorf("Re-enabled handler should fire once, got %d", calls)
	}
}

func TestAssetEmitSnapshot(t *testing.T) {
	a := NewAsset("Test asset")
	added := 0
	var late *Handler

	a.OnFunc("test", func(caller Asset, _ any) {
		// Registering during emission must not fire in this pass
		late, _ = caller.OnFunc("test", func(Asset, any) { added++ })
	})

	a.Emit("test", nil)
	if added != 0 {
		t.Errorf("Handler added during emission fired %d times in the same pass", added)
	}

	a.Off("test", late)
	a.Emit("test", nil)
	if added != 0 {
		t.Errorf("Removed handler fired, added = %d", added)
	}
}

func TestAssetEmitRemovedDuringPassStillFires(t *testing.T) {
	a := NewAsset("Test asset")
	secondCalls := 0
	var second *Handler

	a.OnFunc("test", func(caller Asset, _ any) {
		caller.Off("test", second)
	})
	second, _ = a.OnFunc("test", func(Asset, any) { secondCalls++ })

	a.Emit("test", nil)
	if secondCalls != 1 {
		t.Errorf("Handler in the snapshot should fire once, got %d", secondCalls)
	}

	a.Emit("test", nil)
	if secondCalls != 1 {
		t.Errorf("Removed handler should not fire on the next pass, got %d", secondCalls)
	}
}

func TestAssetReentrantEmit(t *testing.T) {
	a := NewAsset("Test asset")
	var order []string

	a.OnFunc("outer", func(caller Asset, _ any) {
		order = append(order, "outer-start")
		caller.Emit("inner", nil)
		order = append(order, "outer-end")
	})
	a.OnFunc("inner", func(Asset, any) { order = append(order, "inner") })

	a.Emit("outer", nil)

	expected := []string{"outer-start", "inner", "outer-end"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Step %d = %q, want %q", i, order[i], expected[i])
		}
	}
}

func TestAssetTick(t *testing.T) {
	a := NewAsset("Test asset")
	ticked := false
	a.OnFunc(EventTick, func(Asset, any) { ticked = true })

	a.Tick()

	if !ticked {
		t.Error("Tick() should emit the tick event")
	}
}

func TestHandlerCall(t *testing.T) {
	var got any
	h := NewHandler(func(_ Asset, data any) { got = data })

	h.Call(nil, "direct")

	if got != "direct" {
		t.Errorf("Call() passed %v, want %q", got, "direct")
	}
}
