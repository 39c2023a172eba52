package overlay

import "strings"

// Presenter displays the overlay's one-line summary. The window title is the usual presenter.
type Presenter interface {
	SetTitle(title string)
}

type overlayImpl struct {
	title     string
	panels    []Panel
	presenter Presenter
	last      string
}

// Overlay groups the info panels and forwards every state change to all of them.
// After each change the summary is pushed to the Presenter if it differs from the last one shown.
type Overlay interface {
	// Panels returns the grouped panels in display order.
	Panels() []Panel

	// Show makes every panel visible.
	Show()

	// Hide hides every panel.
	Hide()

	// Highlight marks key as active on every panel that holds it.
	//
	// Parameters:
	//   - key: the control's key name
	Highlight(key string)

	// Trivialize returns key to normal on every panel that holds it.
	//
	// Parameters:
	//   - key: the control's key name
	Trivialize(key string)

	// TrivializeAll clears every highlight.
	TrivializeAll()

	// Summary renders the visible panels as one line, e.g.
	// "Solar System | Movement: [W] A S D Z X". Highlighted controls are bracketed.
	Summary() string
}

var _ Overlay = &overlayImpl{}

// NewOverlay creates an Overlay over the given panels and presents its initial summary.
//
// Parameters:
//   - presenter: the summary sink, may be nil
//   - panels: the panels to group
//   - options: functional options
//
// Returns:
//   - Overlay: the newly created overlay
func NewOverlay(presenter Presenter, panels []Panel, options ...OverlayOption) Overlay {
	o := &overlayImpl{
		title:     "Solar System",
		panels:    panels,
		presenter: presenter,
	}
	for _, opt := range options {
		opt(o)
	}
	o.present()
	return o
}

func (o *overlayImpl) Panels() []Panel {
	return o.panels
}

func (o *overlayImpl) Show() {
	for _, p := range o.panels {
		p.Show()
	}
	o.present()
}

func (o *overlayImpl) Hide() {
	for _, p := range o.panels {
		p.Hide()
	}
	o.present()
}

func (o *overlayImpl) Highlight(key string) {
	for _, p := range o.panels {
		p.Highlight(key)
	}
	o.present()
}

func (o *overlayImpl) Trivialize(key string) {
	for _, p := range o.panels {
		p.Trivialize(key)
	}
	o.present()
}

func (o *overlayImpl) TrivializeAll() {
	for _, p := range o.panels {
		p.TrivializeAll()
	}
	o.present()
}

func (o *overlayImpl) Summary() string {
	var b strings.Builder
	b.WriteString(o.title)
	for _, p := range o.panels {
		if !p.Visible() {
			continue
		}
		b.WriteString(" | ")
		b.WriteString(p.Title())
		b.WriteString(":")
		for _, c := range p.Controls() {
			b.WriteByte(' ')
			if p.Highlighted(c.Key) {
				b.WriteString("[" + c.Label + "]")
			} else {
				b.WriteString(c.Label)
			}
		}
	}
	return b.String()
}

func (o *overlayImpl) present() {
	if o.presenter == nil {
		return
	}
	s := o.Summary()
	if s == o.last {
		return
	}
	o.last = s
	o.presenter.SetTitle(s)
}
