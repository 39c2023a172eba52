// Package overlay implements the on-screen info panels that mirror the camera rig's keyboard state.
package overlay

// Control is one key-labeled entry of a panel.
type Control struct {
	Key   string // key name as reported by the window, e.g. "w" or "ArrowUp"
	Label string // text shown for the key, e.g. "W" or "↑"
}

type control struct {
	Control
	highlighted bool
}

type panelImpl struct {
	selector string
	title    string
	controls []control
	visible  bool
}

// Panel is a labeled region with a fixed, ordered set of controls. Each control is either
// highlighted or normal, and the panel as a whole is shown or hidden.
// Lookups by key are linear scans; unknown keys are ignored.
type Panel interface {
	// Selector returns the panel's identifier, e.g. ".info-movement".
	Selector() string

	// Title returns the panel's display title.
	Title() string

	// Controls returns the panel's controls in display order.
	Controls() []Control

	Show()
	Hide()
	Visible() bool

	// Highlight marks the control bound to key as active.
	//
	// Parameters:
	//   - key: the control's key name
	Highlight(key string)

	// Trivialize returns the control bound to key to its normal state.
	//
	// Parameters:
	//   - key: the control's key name
	Trivialize(key string)

	// Highlighted reports whether the control bound to key is active. Unknown keys report false.
	Highlighted(key string) bool

	// TrivializeAll returns every control to its normal state.
	TrivializeAll()
}

var _ Panel = &panelImpl{}

// NewPanel creates a hidden Panel with every control in its normal state.
//
// Parameters:
//   - selector: the panel identifier
//   - title: the display title
//   - controls: the fixed control set, in display order
//
// Returns:
//   - Panel: the newly created panel
func NewPanel(selector, title string, controls []Control) Panel {
	p := &panelImpl{
		selector: selector,
		title:    title,
		controls: make([]control, len(controls)),
	}
	for i, c := range controls {
		p.controls[i] = control{Control: c}
	}
	return p
}

func (p *panelImpl) Selector() string {
	return p.selector
}

func (p *panelImpl) Title() string {
	return p.title
}

func (p *panelImpl) Controls() []Control {
	out := make([]Control, len(p.controls))
	for i, c := range p.controls {
		out[i] = c.Control
	}
	return out
}

func (p *panelImpl) Show() {
	p.visible = true
}

func (p *panelImpl) Hide() {
	p.visible = false
}

func (p *panelImpl) Visible() bool {
	return p.visible
}

func (p *panelImpl) Highlight(key string) {
	if c := p.find(key); c != nil {
		c.highlighted = true
	}
}

func (p *panelImpl) Trivialize(key string) {
	if c := p.find(key); c != nil {
		c.highlighted = false
	}
}

func (p *panelImpl) Highlighted(key string) bool {
	c := p.find(key)
	return c != nil && c.highlighted
}

func (p *panelImpl) TrivializeAll() {
	for i := range p.controls {
		p.controls[i].highlighted = false
	}
}

func (p *panelImpl) find(key string) *control {
	for i := range p.controls {
		if p.controls[i].Key == key {
			return &p.controls[i]
		}
	}
	return nil
}
