package entity

const (
	BoardWidth  = 10
	BoardHeight = 20
)

type row [BoardWidth]Color

// Board is the grid of locked cells. It only changes through Lock and ClearLines.
type Board struct {
	cells [BoardHeight]row
}

func NewBoard() *Board {
	return &Board{}
}

func InBounds(p Point) bool {
	return p.X >= 0 && p.X < BoardWidth && p.Y >= 0 && p.Y < BoardHeight
}

// At returns the color locked at p, ColorNone when p is empty or outside the board.
func (that *Board) At(p Point) Color {
	if !InBounds(p) {
		return ColorNone
	}

	return that.cells[p.Y][p.X]
}

// Set writes a single cell. Out-of-range points are ignored.
func (that *Board) Set(p Point, color Color) {
	if !InBounds(p) {
		return
	}

	that.cells[p.Y][p.X] = color
}

// Collision reports whether the piece anchored at origin leaves the board or overlaps a locked cell.
func (that *Board) Collision(piece Piece, origin Point) bool {
	for _, cell := range piece.CellsAt(origin) {
		if !InBounds(cell) || that.cells[cell.Y][cell.X].IsSet() {
			return true
		}
	}

	return false
}

// Lock writes the piece color into its cells. The caller must have checked Collision first.
func (that *Board) Lock(piece Piece, origin Point) {
	for _, cell := range piece.CellsAt(origin) {
		that.cells[cell.Y][cell.X] = piece.Color
	}
}

// ClearLines removes every full row in one bottom-up pass and returns how many were removed.
// Surviving rows keep their order and the freed rows at the top are left empty.
func (that *Board) ClearLines() int {
	write := BoardHeight - 1
	for read := BoardHeight - 1; read >= 0; read-- {
		if that.cells[read].full() {
			continue
		}

		that.cells[write] = that.cells[read]
		write--
	}

	cleared := write + 1
	for y := 0; y <= write; y++ {
		that.cells[y] = row{}
	}

	return cleared
}

func (that *row) full() bool {
	for _, color := range that {
		if !color.IsSet() {
			return false
		}
	}

	return true
}
