//go:build ebiten

package ui

import (
	"zona/internal/render"
	"zona/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the area debugging layer on top of the board. Key 1 tints
// every discovered Empty area, key 2 marks areas that hold an enemy.
type Overlay struct {
	painter   *render.GridPainter
	showAreas bool
	showEnemy bool
	layer     []uint8
}

// NewOverlay constructs an overlay for a w x h grid.
func NewOverlay(w, h int) *Overlay {
	return &Overlay{painter: render.NewGridPainter(w, h)}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAreas = !o.showAreas
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showEnemy = !o.showEnemy
	}
}

// Draw renders the enabled layers for s onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, s *session.Session, at render.Placement) {
	if !o.showAreas && !o.showEnemy {
		return
	}
	o.layer = AreaLayer(o.layer, s.Grid(), s.EnemyCells(), o.showAreas, o.showEnemy)
	o.painter.Blit(screen, o.layer, AreaPalette(), at)
}
