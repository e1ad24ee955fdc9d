// Package texture procedurally draws the floor and enemy rasters.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

const (
	// FloorSize is the edge length of the floor texture in pixels.
	FloorSize = 512
	// FloorTiles is the number of checker squares along each edge.
	FloorTiles = 8
	// EnemySize is the edge length of the enemy sprite in pixels.
	EnemySize = 64
)

// Palette defines the colors used by the generated textures.
var Palette = struct {
	Light       color.RGBA
	Dark        color.RGBA
	Transparent color.RGBA
}{
	Light:       color.RGBA{255, 255, 255, 255},
	Dark:        color.RGBA{0, 0, 0, 255},
	Transparent: color.RGBA{0, 0, 0, 0},
}

// Checkerboard draws a size×size checkerboard with tiles squares per edge.
// The square at tile (i, j) is dark when (i+j) is even.
func Checkerboard(size, tiles int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{Palette.Light}, image.Point{}, draw.Src)

	tileSize := size / tiles
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			if (i+j)%2 != 0 {
				continue
			}
			r := image.Rect(i*tileSize, j*tileSize, (i+1)*tileSize, (j+1)*tileSize)
			draw.Draw(img, r, &image.Uniform{Palette.Dark}, image.Point{}, draw.Src)
		}
	}

	return img
}

// EnemyDot draws a white disc with a dark ring on a transparent size×size surface.
// At the 64 px default the disc has radius 30 and the ring is 4 px wide centered on radius 28.
func EnemyDot(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{Palette.Transparent}, image.Point{}, draw.Src)

	unit := float64(size) / EnemySize
	center := float64(size) / 2
	fillRadius := 30 * unit
	ringRadius := 28 * unit
	ringHalfWidth := 2 * unit

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// sample at pixel centers
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist2 := dx*dx + dy*dy

			inner := ringRadius - ringHalfWidth
			outer := ringRadius + ringHalfWidth
			switch {
			case dist2 >= inner*inner && dist2 <= outer*outer:
				img.SetRGBA(x, y, Palette.Dark)
			case dist2 <= fillRadius*fillRadius:
				img.SetRGBA(x, y, Palette.Light)
			}
		}
	}

	return img
}

// SavePNG saves an image to a PNG file.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// GenerateAndSave writes floor.png and enemy.png into dir and returns their paths.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := []struct {
		name string
		img  image.Image
	}{
		{"floor.png", Checkerboard(FloorSize, FloorTiles)},
		{"enemy.png", EnemyDot(EnemySize)},
	}

	var written []string
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := SavePNG(out.img, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
