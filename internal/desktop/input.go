package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"driftfield/internal/field"
)

// bindInput forwards window callbacks onto bus in surface (framebuffer)
// coordinates. Callbacks fire inside glfw.PollEvents on the loop goroutine.
func bindInput(window *glfw.Window, bus *field.EventBus) {
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		bus.Emit(field.Event{Type: field.EventResize, Width: width, Height: height})
	})

	window.SetCursorPosCallback(func(w *glfw.Window, cx, cy float64) {
		x, y := cursorSurfacePos(w, cx, cy)
		bus.Emit(field.Event{Type: field.EventPointerMove, X: x, Y: y})
	})

	// A click completes on release, matching a pointer click on a page.
	window.SetMouseButtonCallback(func(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn != glfw.MouseButtonLeft || action != glfw.Release {
			return
		}
		cx, cy := w.GetCursorPos()
		x, y := cursorSurfacePos(w, cx, cy)
		bus.Emit(field.Event{Type: field.EventClick, X: x, Y: y})
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
}

// cursorSurfacePos converts window-space cursor coordinates to framebuffer
// pixels, which differ on high-DPI displays.
func cursorSurfacePos(window *glfw.Window, cx, cy float64) (float64, float64) {
	winW, winH := window.GetSize()
	fbW, fbH := window.GetFramebufferSize()
	if winW <= 0 || winH <= 0 {
		return cx, cy
	}
	return cx * float64(fbW) / float64(winW), cy * float64(fbH) / float64(winH)
}
