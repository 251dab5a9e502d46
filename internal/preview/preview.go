// Package preview renders fox photos as ANSI half-block cells.
//
// # Overview
//
// Terminals cannot display image files directly, so the preview downscales a
// decoded photo and paints it with the upper-half-block glyph: each cell
// carries two vertical pixels, the top one as the foreground color and the
// bottom one as the background color. The result is a string the UI embeds
// directly in its view.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

const halfBlock = "▀"

// Decode parses downloaded image bytes into an image. JPEG, PNG, GIF, TIFF
// and BMP are supported.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ANSI renders img into at most cols x rows terminal cells, preserving
// aspect ratio. One row of cells covers two pixel rows.
func ANSI(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	fitted := imaging.Fit(img, cols, rows*2, imaging.Lanczos)
	bounds := fitted.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return ""
	}

	var b strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexAt(fitted, x, y)))
			if y+1 < height {
				style = style.Background(lipgloss.Color(hexAt(fitted, x, y+1)))
			}
			b.WriteString(style.Render(halfBlock))
		}
		if y+2 < height {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Cells reports how many cell rows ANSI will produce for an image of the
// given pixel height.
func Cells(pixelHeight int) int {
	return (pixelHeight + 1) / 2
}

func hexAt(img image.Image, x, y int) string {
	bounds := img.Bounds()
	r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
