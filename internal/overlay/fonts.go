package overlay

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontCache parses the bundled typeface once and hands out faces per size.
// Output is always rasterized with this single sans-serif face; original
// font families are only carried through for diagnostics.
type FontCache struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewFontCache() (*FontCache, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled font: %w", err)
	}
	return &FontCache{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns a rendering face at the given pixel size.
func (c *FontCache) Face(size float64) font.Face {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(c.font, &truetype.Options{Size: size})
	c.faces[size] = face
	return face
}
