// Package geometry maps pointer positions onto minefield cells.
//
// Positions use a y-up convention: the grid origin is its top-left corner
// and rows grow downward, towards smaller y.
package geometry

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

type Layout struct {
	Origin   Vec // top-left corner of the grid
	CellSize Vec
	Rows     int
	Cols     int
}

func (l Layout) Extent() Vec {
	return Vec{float64(l.Cols) * l.CellSize.X, float64(l.Rows) * l.CellSize.Y}
}

// Contains reports whether p lies on the grid. Left and top edges are
// inclusive, right and bottom edges are not.
func (l Layout) Contains(p Vec) bool {
	ext := l.Extent()
	return p.X >= l.Origin.X && p.X < l.Origin.X+ext.X &&
		p.Y <= l.Origin.Y && p.Y > l.Origin.Y-ext.Y
}

func (l Layout) PixelToCell(p Vec) (row, col int, ok bool) {
	if !l.Contains(p) {
		return 0, 0, false
	}
	row = int((l.Origin.Y - p.Y) / l.CellSize.Y)
	col = int((p.X - l.Origin.X) / l.CellSize.X)
	// float error at the far edges
	row = min(row, l.Rows-1)
	col = min(col, l.Cols-1)
	return row, col, true
}

// CellTopLeft is the position of a cell's top-left pixel.
func (l Layout) CellTopLeft(row, col int) Vec {
	return Vec{
		X: l.Origin.X + float64(col)*l.CellSize.X,
		Y: l.Origin.Y - float64(row)*l.CellSize.Y,
	}
}
