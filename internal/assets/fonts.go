// internal/assets/fonts.go
package assets

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace parses the HUD font at path. Any failure falls back to the
// bundled bitmap face so the HUD always renders.
func LoadFace(path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("warning: HUD font %s unavailable, using bitmap face: %v", path, err)
		return basicfont.Face7x13
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("warning: failed to parse HUD font %s, using bitmap face: %v", path, err)
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("warning: failed to build HUD face from %s, using bitmap face: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}
