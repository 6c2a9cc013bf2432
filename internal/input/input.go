// internal/input/input.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-sky-chase/pkg/vec"
)

// Snapshot is the per-frame input state. The controller consumes exactly
// these four signals; taking them as one immutable snapshot keeps a frame's
// logic deterministic and testable without a live device.
type Snapshot struct {
	Pointer vec.Vec
	Fire    bool
	Restart bool
	Quit    bool
}

// Poll reads the device state for this frame. Fire and Restart are edge
// triggered so holding a button does not repeat the intent every frame.
func Poll() Snapshot {
	x, y := ebiten.CursorPosition()
	return Snapshot{
		Pointer: vec.Vec{X: float64(x), Y: float64(y)},
		Fire:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
