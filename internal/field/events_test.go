package field

import "testing"

func TestEventBusDrivesField(t *testing.T) {
	bus := NewEventBus()
	f := NewField(800, 600, NewRand(4))
	f.Attach(bus)

	clicks := 0
	bus.Subscribe(EventClick, func(Event) { clicks++ })

	bus.Emit(Event{Type: EventPointerMove, X: 12.5, Y: 99})
	if f.PointerX != 12.5 || f.PointerY != 99 {
		t.Errorf("Expected pointer (12.5, 99), got (%v, %v)", f.PointerX, f.PointerY)
	}

	before := f.Len()
	bus.Emit(Event{Type: EventClick, X: 300, Y: 200})
	if f.Len() != before+BurstCount {
		t.Errorf("Expected %d particles after click, got %d", before+BurstCount, f.Len())
	}
	if clicks != 1 {
		t.Errorf("Expected click subscriber called once, got %d", clicks)
	}

	bus.Emit(Event{Type: EventResize, Width: 300, Height: 200})
	if f.W != 300 || f.H != 200 {
		t.Errorf("Expected surface 300x200, got %vx%v", f.W, f.H)
	}
	if f.Len() != AmbientCount(300, 200) {
		t.Errorf("Expected %d particles after resize, got %d", AmbientCount(300, 200), f.Len())
	}
}

func TestPointerNotResetByResize(t *testing.T) {
	f := NewField(800, 600, NewRand(4))
	f.MovePointer(5000, -20)
	f.Resize(400, 400)
	if f.PointerX != 5000 || f.PointerY != -20 {
		t.Errorf("Pointer changed by resize: (%v, %v)", f.PointerX, f.PointerY)
	}
}
