// Package bar implements the bar content model (spec §4.11): what should
// be shown, in what regions, left to right. Pixel rendering is out of
// core scope — a draw collaborator turns a Model into pixels.
package bar

import (
	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/store"
)

// TagState is one tag label's square indicator.
type TagState int

const (
	TagEmpty TagState = iota
	TagOccupied
	TagSelected
	TagUrgent
)

// Tag is one of the nine tag labels on the bar.
type Tag struct {
	Label    string
	State    TagState
	Selected bool
}

// TitleKind distinguishes the three leading-square states of the client
// title area (spec §4.11).
type TitleKind int

const (
	TitleNone TitleKind = iota
	TitleTiled
	TitleFloating
	TitleFixed
)

// Model is everything the bar should show for one monitor, computed fresh
// on every redraw; it holds no drawing state itself.
type Model struct {
	Tags        []Tag
	LayoutSym   string
	StatusText  string // only populated for the selected monitor
	Title       string
	TitleKind   TitleKind
	TagWidths   []int // pixel width budget per tag label, left to right
	LayoutWidth int
}

// Build computes the content model for monitor m. tagWidth is the fixed
// pixel width the draw collaborator reserves per tag label; layoutWidth is
// the reserved width for the layout symbol. statusText is only shown when
// selMon is true (spec §4.11: "on the selected monitor only").
func Build(m *store.Monitor, c *config.Config, selMon bool, statusText string, tagWidth, layoutWidth int) Model {
	model := Model{
		LayoutSym:   m.LtSymbol,
		TagWidths:   make([]int, store.NumViews),
		LayoutWidth: layoutWidth,
	}
	for i := 0; i < store.NumViews; i++ {
		model.TagWidths[i] = tagWidth
		clients := m.ClientsInView(i)
		state := TagEmpty
		urgent := false
		hasFocused := i == m.SelView && m.SelectedView().Sel != nil
		for _, cl := range clients {
			if cl.Urgent {
				urgent = true
			}
		}
		if len(clients) > 0 {
			state = TagOccupied
		}
		if hasFocused {
			state = TagSelected
		}
		if urgent {
			state = TagUrgent
		}
		model.Tags = append(model.Tags, Tag{
			Label:    c.Tags[i],
			State:    state,
			Selected: i == m.SelView,
		})
	}

	if selMon {
		model.StatusText = statusText
	}

	if sel := m.SelectedView().Sel; sel != nil {
		model.Title = sel.Title
		switch {
		case sel.Fixed:
			model.TitleKind = TitleFixed
		case sel.Floating:
			model.TitleKind = TitleFloating
		default:
			model.TitleKind = TitleTiled
		}
	}

	return model
}

// HitTest classifies an X click at x on monitor m's bar into a click
// region (spec §4.8 ButtonPress row), returning the tag index when the
// region is ClickTagBar. statusWidth is the pixel width the draw
// collaborator reserved for the right-aligned status text (0 on a monitor
// that isn't selected, since the status text isn't shown there).
func HitTest(m *store.Monitor, x, tagWidth, layoutWidth, statusWidth int) (config.ClickRegion, int) {
	tagsWidth := tagWidth * store.NumViews
	barWidth := m.ScreenRect.W

	switch {
	case x < tagsWidth:
		return config.ClickTagBar, x / tagWidth
	case x < tagsWidth+layoutWidth:
		return config.ClickLayoutSymbol, 0
	case statusWidth > 0 && x >= barWidth-statusWidth:
		return config.ClickStatusText, 0
	default:
		return config.ClickWinTitle, 0
	}
}
