package overlay

import (
	"errors"
	"fmt"
)

// ErrPanelNotFound is returned when a required panel is missing from the layout.
var ErrPanelNotFound = errors.New("overlay: panel not found")

// PanelDef describes one panel of a Layout.
type PanelDef struct {
	Selector string
	Title    string
	Controls []Control
}

// Layout is the set of panel definitions available to the overlay.
type Layout []PanelDef

// Panel looks up a panel definition by selector.
//
// Parameters:
//   - selector: the panel identifier
//
// Returns:
//   - PanelDef: the matching definition
//   - error: ErrPanelNotFound wrapped with the selector if the layout has no such panel
func (l Layout) Panel(selector string) (PanelDef, error) {
	for _, def := range l {
		if def.Selector == selector {
			return def, nil
		}
	}
	return PanelDef{}, fmt.Errorf("%w: %q", ErrPanelNotFound, selector)
}

// Build instantiates the panels named by selectors, in that order.
// Every selector must be present in the layout.
//
// Parameters:
//   - selectors: the required panel identifiers
//
// Returns:
//   - []Panel: one hidden panel per selector
//   - error: ErrPanelNotFound if any selector is absent
func (l Layout) Build(selectors ...string) ([]Panel, error) {
	panels := make([]Panel, 0, len(selectors))
	for _, sel := range selectors {
		def, err := l.Panel(sel)
		if err != nil {
			return nil, err
		}
		panels = append(panels, NewPanel(def.Selector, def.Title, def.Controls))
	}
	return panels, nil
}
