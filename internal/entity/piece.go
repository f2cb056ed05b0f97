package entity

// Piece is an immutable falling block: one shape drawn in one color.
type Piece struct {
	Color Color `json:"color"`
	Shape Shape `json:"shape"`
}

func NewPiece(color Color, shape Shape) Piece {
	return Piece{Color: color, Shape: shape}
}

// Rotate returns the piece turned clockwise once; the receiver is left untouched.
func (that Piece) Rotate() Piece {
	return Piece{Color: that.Color, Shape: that.Shape.Next()}
}

// CellsAt returns the absolute board cells covered by the piece when anchored at origin.
func (that Piece) CellsAt(origin Point) [4]Point {
	cells := that.Shape.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(origin)
	}

	return cells
}
