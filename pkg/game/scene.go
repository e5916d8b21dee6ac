package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the unit the App drives every frame.
// The stage is the only scene; the interface keeps App independent of it.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
