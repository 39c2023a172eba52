package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSizeLimits bounds the window size during resize.
//
// Parameters:
//   - minWidth, minHeight: minimum size in screen coordinates
//   - maxWidth, maxHeight: maximum size in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = maxWidth, maxHeight
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}
