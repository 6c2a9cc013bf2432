// internal/assets/backgrounds.go
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/internal/event"
)

// Backgrounds holds one scaled background image per level. A level whose
// image failed to load draws the solid-color fallback instead; a missing
// asset is a warning, never fatal.
type Backgrounds struct {
	images   []*ebiten.Image
	fallback *ebiten.Image
	current  int
}

// LoadBackgrounds loads the background named by each level definition from
// dir, scaled to w×h.
func LoadBackgrounds(dir string, w, h int, levels []defs.LevelDefinition) *Backgrounds {
	fallback := ebiten.NewImage(w, h)
	fallback.Fill(config.BackgroundColor)

	b := &Backgrounds{fallback: fallback}
	for _, def := range levels {
		img, err := loadScaled(filepath.Join(dir, def.Background), w, h)
		if err != nil {
			log.Printf("warning: background %s unavailable, using solid fill: %v", def.Background, err)
			img = nil
		}
		b.images = append(b.images, img)
	}
	return b
}

// loadScaled decodes an image file and stretches it to the screen size.
func loadScaled(path string, w, h int) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	raw := ebiten.NewImageFromImage(src)
	scaled := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	sw, sh := raw.Bounds().Dx(), raw.Bounds().Dy()
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	scaled.DrawImage(raw, op)
	return scaled, nil
}

// SetLevel selects the background for a 1-based level, clamped to the last
// loaded image.
func (b *Backgrounds) SetLevel(level int) {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(b.images) {
		idx = len(b.images) - 1
	}
	b.current = idx
}

// Draw blits the current background, or the fallback when the level's
// image never loaded.
func (b *Backgrounds) Draw(screen *ebiten.Image) {
	img := b.fallback
	if b.current >= 0 && b.current < len(b.images) && b.images[b.current] != nil {
		img = b.images[b.current]
	}
	screen.DrawImage(img, nil)
}

// OnEvent keeps the background in step with the level progression.
func (b *Backgrounds) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelAdvanced:
		if level, ok := e.Data.(int); ok {
			b.SetLevel(level)
		}
	case event.GameReset:
		b.SetLevel(1)
	}
}
