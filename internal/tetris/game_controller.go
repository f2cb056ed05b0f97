package tetris

import (
	"github.com/rocketscienceinc/tetris/internal/apperror"
	"github.com/rocketscienceinc/tetris/internal/entity"
)

// SpawnOrigin is where every new piece enters the board.
var SpawnOrigin = entity.Point{X: entity.BoardWidth / 2, Y: 0}

// GameController owns the board, the active piece and the bag. It is not safe for concurrent use.
type GameController struct {
	board  *entity.Board
	bag    *entity.PieceBag
	piece  entity.Piece
	origin entity.Point

	lines  int
	locked int
	over   bool
}

// NewGameController deals the first piece from bag onto board.
// It returns apperror.ErrGameOver together with the controller when that piece cannot spawn.
func NewGameController(board *entity.Board, bag *entity.PieceBag) (*GameController, error) {
	that := &GameController{
		board: board,
		bag:   bag,
		piece: bag.Pop(),
	}

	if err := that.spawn(); err != nil {
		return that, err
	}

	return that, nil
}

func (that *GameController) Piece() entity.Piece {
	return that.piece
}

func (that *GameController) Origin() entity.Point {
	return that.origin
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

// Lines returns how many rows were cleared so far.
func (that *GameController) Lines() int {
	return that.lines
}

// Locked returns how many pieces were locked into the board so far.
func (that *GameController) Locked() int {
	return that.locked
}

func (that *GameController) IsOver() bool {
	return that.over
}

// Move shifts the active piece by (dx, dy) when the target is free and reports whether it moved.
func (that *GameController) Move(dx, dy int) bool {
	if that.over {
		return false
	}

	candidate := that.origin.Add(entity.Point{X: dx, Y: dy})
	if that.board.Collision(that.piece, candidate) {
		return false
	}

	that.origin = candidate

	return true
}

// Rotate turns the active piece in place. There are no wall kicks.
func (that *GameController) Rotate() bool {
	if that.over {
		return false
	}

	rotated := that.piece.Rotate()
	if that.board.Collision(rotated, that.origin) {
		return false
	}

	that.piece = rotated

	return true
}

// Step moves the active piece one row down. A piece that cannot fall is locked,
// full rows are cleared and the next piece is spawned.
func (that *GameController) Step() error {
	if that.over {
		return apperror.ErrGameOver
	}

	if that.Move(0, 1) {
		return nil
	}

	that.board.Lock(that.piece, that.origin)
	that.locked++
	that.lines += that.board.ClearLines()
	that.piece = that.bag.Pop()

	return that.spawn()
}

// HardDrop lets the piece fall as far as it goes and then performs one Step to lock it.
func (that *GameController) HardDrop() error {
	if that.over {
		return apperror.ErrGameOver
	}

	for that.Move(0, 1) {
	}

	return that.Step()
}

// Apply maps an input event onto the controller. Quit is a loop concern and is ignored here.
func (that *GameController) Apply(event entity.Event) error {
	switch event {
	case entity.EventMoveLeft:
		that.Move(-1, 0)
	case entity.EventMoveRight:
		that.Move(1, 0)
	case entity.EventRotateCW:
		that.Rotate()
	case entity.EventHardDrop:
		return that.HardDrop()
	case entity.EventTick:
		return that.Step()
	case entity.EventQuit:
	}

	return nil
}

// Render merges the active piece over the locked cells.
func (that *GameController) Render() entity.Snapshot {
	snapshot := entity.Snapshot{
		Lines:    that.lines,
		GameOver: that.over,
	}

	for y := range entity.BoardHeight {
		for x := range entity.BoardWidth {
			snapshot.Cells[y][x] = that.board.At(entity.Point{X: x, Y: y})
		}
	}

	for _, cell := range that.piece.CellsAt(that.origin) {
		if entity.InBounds(cell) {
			snapshot.Cells[cell.Y][cell.X] = that.piece.Color
		}
	}

	return snapshot
}

// spawn places the active piece at SpawnOrigin. A blocked spawn ends the game for good.
func (that *GameController) spawn() error {
	that.origin = SpawnOrigin

	if that.board.Collision(that.piece, SpawnOrigin) {
		that.over = true
		return apperror.ErrGameOver
	}

	return nil
}
