//go:build ebiten

package ui

import (
	"image/color"

	"zona/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type readoutProvider interface {
	Readout() session.Readout
}

// HUD renders the session readout in a panel to the right of the board.
type HUD struct {
	src        readoutProvider
	width      int
	panel      *ebiten.Image
	lastHeight int

	lines  []string
	banner string
	notes  []string
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src readoutProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width}
}

// SetNotes replaces the free-form lines shown under the readout.
func (h *HUD) SetNotes(notes ...string) {
	if h == nil {
		return
	}
	h.notes = append(h.notes[:0], notes...)
}

// Update refreshes the cached readout.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	r := h.src.Readout()
	h.lines = ReadoutLines(r)
	h.banner = Banner(r)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	if h.banner != "" {
		text.Draw(h.panel, h.banner, face, panelPadding, y, color.RGBA{R: 0xff, G: 0xbe, B: 0x0b, A: 255})
		y += lineHeight * 2
	}
	for _, line := range h.lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if len(line) > 0 && line[0] != ' ' {
			col = color.RGBA{R: 0x00, G: 0xd9, B: 0xff, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}
	if len(h.notes) == 0 {
		return
	}
	y += lineHeight
	for _, note := range h.notes {
		text.Draw(h.panel, note, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 12
)
