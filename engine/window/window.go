package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-solar/engine/events"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and is the system-level input source for the event registry.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	events.Source

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetTitle replaces the text in the window's title bar.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// FramebufferSize polls the current drawable size in pixels. On high-DPI displays this differs
	// from the window size in screen coordinates.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	FramebufferSize() (int, int)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Pending input is dispatched first, then the update
	// callback runs, once per iteration.
	ProcessMessages()
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and the attached channel handlers.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the last known framebuffer width in pixels.
	width int

	// height is the last known framebuffer height in pixels.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// handlers holds the single attached handler per input channel.
	handlers map[events.Channel]events.Callback
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:     "Solar System",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
		handlers:  make(map[events.Channel]events.Callback),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) Attach(ch events.Channel, handler events.Callback) {
	w.handlers[ch] = handler
	platformSyncCallbacks(w)
}

func (w *engineWindow) Detach(ch events.Channel) {
	if _, ok := w.handlers[ch]; !ok {
		return
	}
	delete(w.handlers, ch)
	platformSyncCallbacks(w)
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w)
}

func (w *engineWindow) FramebufferSize() (int, int) {
	platformPollSize(w)
	return w.width, w.height
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

// attached reports whether any of the channels has a handler.
func (w *engineWindow) attached(channels ...events.Channel) bool {
	for _, ch := range channels {
		if _, ok := w.handlers[ch]; ok {
			return true
		}
	}
	return false
}

// emit delivers ev to the handler of its channel, stamping the viewport size.
func (w *engineWindow) emit(ev events.Event) {
	h, ok := w.handlers[ev.Channel]
	if !ok {
		return
	}
	if ev.Width == 0 && ev.Height == 0 {
		ev.Width, ev.Height = w.width, w.height
	}
	h(ev)
}
