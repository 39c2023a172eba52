package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window and stores it as the internal window.
// Input callbacks are installed lazily as channels are attached.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// Escape always closes the window, so the key callback is permanent and forwards to the
	// key-down/key-up handlers only while they are attached.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if ev, ok := keyEvent(key, action); ok {
			w.emit(ev)
		}
	})

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	w.width, w.height = win.GetFramebufferSize()

	platformSyncCallbacks(w)
	return nil
}

// keyEvent translates a GLFW key action into a key-down or key-up event.
func keyEvent(key glfw.Key, action glfw.Action) (events.Event, bool) {
	k := common.Key(key)
	switch action {
	case glfw.Press, glfw.Repeat:
		return events.Event{Channel: events.ChannelKeyDown, Key: k, Name: k.Name(), Repeat: action == glfw.Repeat}, true
	case glfw.Release:
		return events.Event{Channel: events.ChannelKeyUp, Key: k, Name: k.Name()}, true
	default:
		return events.Event{}, false
	}
}

// charEvent translates a produced character into a key-press event.
func charEvent(char rune) events.Event {
	name := string(char)
	k, _ := common.KeyByName(name)
	return events.Event{Channel: events.ChannelKeyPress, Key: k, Name: name}
}

// platformSyncCallbacks installs GLFW callbacks for attached channels and clears the rest, so a
// detached channel costs nothing per event.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCharCallback
func platformSyncCallbacks(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)

	if w.attached(events.ChannelPointerMove) {
		gw.window.SetCursorPosCallback(func(win *glfw.Window, xpos, ypos float64) {
			// cursor coordinates are in screen units, so normalize against the window size
			sw, sh := win.GetSize()
			w.emit(events.Event{Channel: events.ChannelPointerMove, X: xpos, Y: ypos, Width: sw, Height: sh})
		})
	} else {
		gw.window.SetCursorPosCallback(nil)
	}

	if w.attached(events.ChannelKeyPress) {
		gw.window.SetCharCallback(func(_ *glfw.Window, char rune) {
			w.emit(charEvent(char))
		})
	} else {
		gw.window.SetCharCallback(nil)
	}
}

// platformSetTitle pushes the stored title to the GLFW window.
func platformSetTitle(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	w.internalWindow.(*glfwWindow).window.SetTitle(w.title)
}

// platformPollSize refreshes the stored framebuffer size.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.GetFramebufferSize
func platformPollSize(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	w.width, w.height = w.internalWindow.(*glfwWindow).window.GetFramebufferSize()
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
// Input callbacks fire from inside PollEvents, before the update callback runs.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
