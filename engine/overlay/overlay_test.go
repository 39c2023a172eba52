package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titleRecorder struct {
	titles []string
}

func (r *titleRecorder) SetTitle(title string) {
	r.titles = append(r.titles, title)
}

func testLayout() Layout {
	return Layout{
		{
			Selector: ".info-movement",
			Title:    "Movement",
			Controls: []Control{{"w", "W"}, {"s", "S"}, {"a", "A"}},
		},
		{
			Selector: ".info-rotation",
			Title:    "Rotation",
			Controls: []Control{{"q", "Q"}, {"ArrowUp", "↑"}},
		},
	}
}

func TestPanelHighlightAndTrivialize(t *testing.T) {
	p := NewPanel(".info-movement", "Movement", []Control{{"w", "W"}, {"s", "S"}})

	p.Highlight("w")
	assert.True(t, p.Highlighted("w"))
	assert.False(t, p.Highlighted("s"))

	p.Trivialize("w")
	assert.False(t, p.Highlighted("w"))
}

func TestPanelMissingKeyIsSilent(t *testing.T) {
	p := NewPanel(".info-movement", "Movement", []Control{{"w", "W"}})

	assert.NotPanics(t, func() {
		p.Highlight("nope")
		p.Trivialize("nope")
	})
	assert.False(t, p.Highlighted("nope"))
	assert.Equal(t, []Control{{"w", "W"}}, p.Controls())
}

func TestPanelVisibility(t *testing.T) {
	p := NewPanel(".x", "X", nil)
	assert.False(t, p.Visible())
	p.Show()
	assert.True(t, p.Visible())
	p.Hide()
	assert.False(t, p.Visible())
}

func TestLayoutPanel(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantErr  bool
	}{
		{"present", ".info-rotation", false},
		{"absent", ".info-missing", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := testLayout().Panel(tt.selector)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrPanelNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.selector, def.Selector)
		})
	}
}

func TestLayoutBuildFailsOnMissingPanel(t *testing.T) {
	_, err := testLayout().Build(".info-movement", ".info-zoom")
	require.ErrorIs(t, err, ErrPanelNotFound)

	panels, err := testLayout().Build(".info-movement", ".info-rotation")
	require.NoError(t, err)
	require.Len(t, panels, 2)
	assert.Equal(t, ".info-rotation", panels[1].Selector())
}

func TestOverlaySummary(t *testing.T) {
	panels, err := testLayout().Build(".info-movement", ".info-rotation")
	require.NoError(t, err)
	rec := &titleRecorder{}
	o := NewOverlay(rec, panels)

	assert.Equal(t, "Solar System", o.Summary())

	o.Show()
	o.Highlight("w")
	o.Highlight("ArrowUp")
	assert.Equal(t, "Solar System | Movement: [W] S A | Rotation: Q [↑]", o.Summary())

	o.TrivializeAll()
	assert.Equal(t, "Solar System | Movement: W S A | Rotation: Q ↑", o.Summary())
	assert.Equal(t, o.Summary(), rec.titles[len(rec.titles)-1])
}

func TestOverlayPresentsOnlyChanges(t *testing.T) {
	panels, err := testLayout().Build(".info-movement")
	require.NoError(t, err)
	rec := &titleRecorder{}
	o := NewOverlay(rec, panels, WithTitle("Viewer"))

	o.Hide()
	o.Trivialize("w")
	assert.Equal(t, []string{"Viewer"}, rec.titles)

	o.Show()
	assert.Equal(t, []string{"Viewer", "Viewer | Movement: W S A"}, rec.titles)
}

func TestOverlayNilPresenter(t *testing.T) {
	o := NewOverlay(nil, []Panel{NewPanel(".x", "X", []Control{{"x", "X"}})})
	assert.NotPanics(t, func() {
		o.Show()
		o.Highlight("x")
	})
}
