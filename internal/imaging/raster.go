package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Raster converts a decoded image into terminal cells. Each cell is a
// half-block glyph whose foreground carries the upper pixel and whose
// background carries the lower one, so a cell covers two pixel rows.
const halfBlock = "▀"

// Fit computes the largest width/height (in pixels) that preserves the
// source aspect ratio inside the given bounds. Zero-area inputs yield
// zero so callers can skip rendering entirely.
func Fit(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	w := maxW
	h := srcH * maxW / srcW
	if h > maxH {
		h = maxH
		w = srcW * maxH / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Render rasterizes img into at most cols columns and rows text rows.
// The faint flag dims every cell, signalling that a newer image is
// still loading behind this one.
func Render(img image.Image, cols, rows int, faint bool) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	bounds := img.Bounds()
	// Two pixel rows per text row.
	w, h := Fit(bounds.Dx(), bounds.Dy(), cols, rows*2)
	if w == 0 || h == 0 {
		return ""
	}
	if h%2 != 0 {
		h++
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\n")
		}
		for x := 0; x < w; x++ {
			upper := hexColor(scaled.At(x, y))
			lower := hexColor(scaled.At(x, y+1))
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(upper)).
				Background(lipgloss.Color(lower))
			if faint {
				style = style.Faint(true)
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

// CellSize reports how many text rows and columns Render will use for
// an image of the given pixel dimensions within the given bounds.
func CellSize(srcW, srcH, cols, rows int) (int, int) {
	w, h := Fit(srcW, srcH, cols, rows*2)
	if w == 0 || h == 0 {
		return 0, 0
	}
	if h%2 != 0 {
		h++
	}
	return w, h / 2
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
