package viewer

import (
	"github.com/alexisbeaulieu97/vitrine/internal/imaging"
)

// Rect is a cell-coordinate rectangle used for mouse hit testing.
// Width and height are exclusive, so Contains(X+W, y) is false.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// zoomImageRect computes where the fullscreen image lands. View and
// Update share this math: the view centers the image with it and the
// mouse handler distinguishes image clicks from backdrop clicks.
func (m Model) zoomImageRect() Rect {
	if m.zoomImage == nil || m.width <= 0 || m.height <= zoomChromeRows {
		return Rect{}
	}

	bounds := m.zoomImage.Bounds()
	cols, rows := imaging.CellSize(bounds.Dx(), bounds.Dy(), m.width, m.height-zoomChromeRows)
	if cols == 0 || rows == 0 {
		return Rect{}
	}

	return Rect{
		X: (m.width - cols) / 2,
		Y: (m.height - zoomChromeRows - rows) / 2,
		W: cols,
		H: rows,
	}
}

// browseImageRect computes where the slide image lands in browse view.
func (m Model) browseImageRect() Rect {
	if m.img == nil || m.width <= 0 {
		return Rect{}
	}

	bounds := m.img.Bounds()
	cols, rows := imaging.CellSize(bounds.Dx(), bounds.Dy(), m.width, m.browseImageRows())
	if cols == 0 || rows == 0 {
		return Rect{}
	}

	top := browseHeaderRows
	if m.showError {
		top++
	}

	return Rect{
		X: (m.width - cols) / 2,
		Y: top,
		W: cols,
		H: rows,
	}
}

// Fixed chrome sizes the layout math depends on.
const (
	browseHeaderRows = 2 // title line plus separator blank
	browseFooterRows = 4 // caption, dots, optional search line, help footer
	zoomChromeRows   = 3 // caption, blank, close hint
)

// browseImageRows returns the rows available to the slide image.
func (m Model) browseImageRows() int {
	rows := m.height - browseHeaderRows - browseFooterRows
	if m.showError {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
