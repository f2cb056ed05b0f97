package entity

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tetris/internal/apperror"
)

// PieceBag is the shuffled queue of upcoming pieces.
//
// A fill holds one piece per catalog shape, so every rotation state is dealt once
// per round (19 pieces) rather than once per tetromino as in a classic 7-bag.
type PieceBag struct {
	pieces []Piece
	rng    *rand.Rand
}

func NewPieceBag(rng *rand.Rand) *PieceBag {
	bag := &PieceBag{rng: rng}
	bag.Fill()

	return bag
}

// Fill replaces the queue with a shuffled permutation of the catalog, each entry with a random color.
func (that *PieceBag) Fill() {
	shapes := AllShapes()
	that.rng.Shuffle(len(shapes), func(i, j int) {
		shapes[i], shapes[j] = shapes[j], shapes[i]
	})

	that.pieces = make([]Piece, 0, len(shapes))
	for _, shape := range shapes {
		color := Colors[that.rng.IntN(len(Colors))]
		that.pieces = append(that.pieces, NewPiece(color, shape))
	}
}

// Pop removes the front piece and refills the bag as soon as it runs out.
func (that *PieceBag) Pop() Piece {
	if len(that.pieces) == 0 {
		panic(apperror.ErrEmptyBag)
	}

	piece := that.pieces[0]
	that.pieces = that.pieces[1:]

	if len(that.pieces) == 0 {
		that.Fill()
	}

	return piece
}

func (that *PieceBag) Peek() Piece {
	if len(that.pieces) == 0 {
		panic(apperror.ErrEmptyBag)
	}

	return that.pieces[0]
}

func (that *PieceBag) Len() int {
	return len(that.pieces)
}
