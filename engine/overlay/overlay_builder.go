package overlay

// OverlayOption is a functional option for configuring an Overlay.
type OverlayOption func(*overlayImpl)

// WithTitle sets the leading text of the summary line.
//
// Parameters:
//   - title: the summary prefix, typically the application name
//
// Returns:
//   - OverlayOption: a function that sets the overlay title
func WithTitle(title string) OverlayOption {
	return func(o *overlayImpl) {
		o.title = title
	}
}
