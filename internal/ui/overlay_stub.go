//go:build !ebiten

package ui

import (
	"gridcaster/internal/raycast"
	"gridcaster/internal/world"
)

// MinimapSource supplies the player and the renderer whose rays are drawn.
type MinimapSource interface {
	Player() *world.Player
	Renderer() *raycast.Renderer
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(MinimapSource, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
