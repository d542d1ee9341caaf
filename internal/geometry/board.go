package geometry

var (
	CellSprite   = Vec{16, 16}
	BorderSprite = Vec{8, 8}
	FaceSprite   = Vec{24, 24}
	ScoreSprite  = Vec{11, 20}
	ScoreFrame   = Vec{35, 22}
)

const Scale = 2.0

// Board is the framed window around a grid: a border on each side, a
// three tile header holding the counters and the face, and the grid
// below it.
type Board struct {
	Content Vec // unscaled window size
	Grid    Layout
}

func NewBoard(rows, cols int) Board {
	content := Vec{
		X: 2*BorderSprite.X + float64(cols)*CellSprite.X,
		Y: 6*BorderSprite.Y + float64(rows)*CellSprite.Y,
	}
	return Board{
		Content: content,
		Grid: Layout{
			Origin:   Vec{BorderSprite.X, content.Y - 5*BorderSprite.Y},
			CellSize: CellSprite,
			Rows:     rows,
			Cols:     cols,
		},
	}
}

// Window is the scaled window size.
func (b Board) Window() Vec {
	return Vec{b.Content.X * Scale, b.Content.Y * Scale}
}

// CounterPos is where the first mine counter digit is drawn.
func (b Board) CounterPos() Vec {
	return Vec{BorderSprite.X + 2, b.Content.Y - (BorderSprite.Y + 2)}
}

func (b Board) FacePos() Vec {
	return Vec{b.Content.X/2 - FaceSprite.X/2, b.Content.Y - BorderSprite.Y}
}
