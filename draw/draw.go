// Package draw paints a bar.Model onto the bar window's pixels. It is the
// one package in the engine that touches image/font libraries; nothing
// upstream of bar.Model depends on how (or whether) it renders.
package draw

import (
	"image"
	stddraw "image/draw"

	"github.com/jezek/xgb/xproto"

	"github.com/jezek/xgbutil/icccm"
	"github.com/jezek/xgbutil/xgraphics"
	"github.com/jezek/xgbutil/xwindow"

	"github.com/BurntSushi/freetype-go/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/bar"
	"github.com/mozzenior/wm/config"
	"github.com/mozzenior/wm/store"
)

// Pixel budgets shared with events.onButtonPress's hit testing, so a click
// always lands on the region that was actually painted there.
const (
	tagWidth    = 24
	layoutWidth = 32
	statusWidth = 120
	fontSize    = 12
)

// Painter owns the X surface, configuration and parsed font used to render
// every monitor's bar.
type Painter struct {
	Surface *store.Surface
	Config  *config.Config
	font    *truetype.Font
}

// New parses the compiled-in font once; a parse failure is logged and
// leaves font nil, in which case Redraw paints the background and tag
// squares but skips text (spec §7: a font problem never blocks tiling).
func New(s *store.Surface, c *config.Config) *Painter {
	p := &Painter{Surface: s, Config: c}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.WithError(err).Warn("draw: parsing built-in font failed, bar text disabled")
		return p
	}
	p.font = f
	return p
}

// CreateBarWindow builds the always-present, override-redirect strip window
// for monitor m (spec §4.11): override-redirect so manage's MapRequest
// handler never tries to tile it as a client window.
func (p *Painter) CreateBarWindow(m *store.Monitor) xproto.Window {
	win, err := xwindow.Generate(p.Surface.X)
	if err != nil {
		log.WithError(err).Error("draw: bar window generation failed")
		return 0
	}

	h := p.Config.BarHeight
	y := m.ScreenRect.Y
	if !m.TopBar {
		y = m.ScreenRect.Y + m.ScreenRect.H - h
	}

	win.Create(p.Surface.X.RootWin(), m.ScreenRect.X, y, m.ScreenRect.W, h, xproto.CwOverrideRedirect, 1)

	icccm.WmClassSet(p.Surface.X, win.Id, &icccm.WmClass{Instance: "wm-bar", Class: "wm-bar"})
	icccm.WmNameSet(p.Surface.X, win.Id, "wm-bar")

	p.Surface.SelectEventMask(win.Id, xproto.EventMaskExposure|xproto.EventMaskButtonPress)
	return win.Id
}

// Redraw rebuilds monitor m's bar.Model and paints it onto its bar window.
// A monitor without a BarWindow is silently skipped. Bar windows are
// created only at startup, so a monitor added by a later reconcile has no
// bar window and is never painted.
func (p *Painter) Redraw(m *store.Monitor, st *store.State, selMon bool) {
	if m.BarWindow == 0 {
		return
	}

	statusText := ""
	if selMon {
		statusText = st.StatusText
	}
	model := bar.Build(m, p.Config, selMon, statusText, tagWidth, layoutWidth)

	w, h := m.ScreenRect.W, p.Config.BarHeight
	if w <= 0 || h <= 0 {
		return
	}

	cv := xgraphics.New(p.Surface.X, image.Rect(0, 0, w, h))
	bg := bgra(p.Config.Colors.NormBg)
	cv.For(func(x, y int) xgraphics.BGRA { return bg })

	x := 0
	for i, t := range model.Tags {
		tw := model.TagWidths[i]
		color := bgra(p.Config.Colors.NormBg)
		fg := bgra(p.Config.Colors.NormFg)
		switch t.State {
		case bar.TagSelected:
			color = bgra(p.Config.Colors.SelBg)
			fg = bgra(p.Config.Colors.SelFg)
		case bar.TagUrgent:
			color = bgra(p.Config.Colors.SelBorder)
		}
		fillRect(cv, color, x, 0, x+tw, h)
		p.text(cv, t.Label, fg, x+tw/2, h/2+fontSize/2)
		x += tw
	}

	fillRect(cv, bgra(p.Config.Colors.NormBg), x, 0, x+model.LayoutWidth, h)
	p.text(cv, model.LayoutSym, bgra(p.Config.Colors.NormFg), x+model.LayoutWidth/2, h/2+fontSize/2)
	x += model.LayoutWidth

	if model.StatusText != "" {
		sx := w - statusWidth
		p.text(cv, model.StatusText, bgra(p.Config.Colors.NormFg), sx+statusWidth/2, h/2+fontSize/2)
	}

	if model.Title != "" {
		p.text(cv, model.Title, bgra(p.Config.Colors.NormFg), (x+w)/2, h/2+fontSize/2)
	}

	cv.XSurfaceSet(m.BarWindow)
	cv.XDraw()
	cv.XPaint(m.BarWindow)
}

func (p *Painter) text(cv *xgraphics.Image, s string, color xgraphics.BGRA, cx, baseline int) {
	if p.font == nil || s == "" {
		return
	}
	tw, _ := xgraphics.Extents(p.font, float64(fontSize), s)
	cv.Text(cx-tw/2, baseline, color, float64(fontSize), p.font, s)
}

func fillRect(cv *xgraphics.Image, color xgraphics.BGRA, x0, y0, x1, y1 int) {
	stddraw.Draw(cv, image.Rect(x0, y0, x1, y1), &image.Uniform{color}, image.Point{}, stddraw.Src)
}

// bgra converts a packed 0xRRGGBB color (the form config.Colors stores) into
// xgraphics's BGRA pixel, fully opaque.
func bgra(c uint32) xgraphics.BGRA {
	return xgraphics.BGRA{
		B: uint8(c),
		G: uint8(c >> 8),
		R: uint8(c >> 16),
		A: 255,
	}
}
