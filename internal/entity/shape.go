package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tetris/internal/apperror"
)

// Kind identifies one of the seven tetrominoes.
type Kind string

const (
	KindI Kind = "I"
	KindO Kind = "O"
	KindT Kind = "T"
	KindS Kind = "S"
	KindZ Kind = "Z"
	KindJ Kind = "J"
	KindL Kind = "L"
)

// Shape is one rotation state of a tetromino. It decodes to four cell offsets inside a 4x4 box.
type Shape uint8

const (
	ShapeI0 Shape = iota
	ShapeI1
	ShapeZ0
	ShapeZ1
	ShapeS0
	ShapeS1
	ShapeO
	ShapeT0
	ShapeT1
	ShapeT2
	ShapeT3
	ShapeJ0
	ShapeJ1
	ShapeJ2
	ShapeJ3
	ShapeL0
	ShapeL1
	ShapeL2
	ShapeL3

	shapeCount = iota
)

type shapeDef struct {
	kind  Kind
	cells [4]Point
	next  Shape
}

var catalog = [shapeCount]shapeDef{
	ShapeI0: {KindI, [4]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, ShapeI1},
	ShapeI1: {KindI, [4]Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, ShapeI0},

	ShapeZ0: {KindZ, [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, ShapeZ1},
	ShapeZ1: {KindZ, [4]Point{{1, 0}, {0, 1}, {1, 1}, {0, 2}}, ShapeZ0},

	ShapeS0: {KindS, [4]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, ShapeS1},
	ShapeS1: {KindS, [4]Point{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, ShapeS0},

	ShapeO: {KindO, [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, ShapeO},

	ShapeT0: {KindT, [4]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, ShapeT1},
	ShapeT1: {KindT, [4]Point{{1, 0}, {1, 1}, {2, 1}, {1, 2}}, ShapeT2},
	ShapeT2: {KindT, [4]Point{{0, 1}, {1, 1}, {2, 1}, {1, 2}}, ShapeT3},
	ShapeT3: {KindT, [4]Point{{1, 0}, {0, 1}, {1, 1}, {1, 2}}, ShapeT0},

	ShapeJ0: {KindJ, [4]Point{{1, 0}, {1, 1}, {0, 2}, {1, 2}}, ShapeJ1},
	ShapeJ1: {KindJ, [4]Point{{0, 1}, {1, 1}, {2, 1}, {2, 2}}, ShapeJ2},
	ShapeJ2: {KindJ, [4]Point{{1, 0}, {2, 0}, {1, 1}, {1, 2}}, ShapeJ3},
	ShapeJ3: {KindJ, [4]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, ShapeJ0},

	ShapeL0: {KindL, [4]Point{{1, 0}, {1, 1}, {1, 2}, {2, 2}}, ShapeL1},
	ShapeL1: {KindL, [4]Point{{0, 1}, {1, 1}, {2, 1}, {0, 2}}, ShapeL2},
	ShapeL2: {KindL, [4]Point{{0, 0}, {1, 0}, {1, 1}, {1, 2}}, ShapeL3},
	ShapeL3: {KindL, [4]Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, ShapeL0},
}

// AllShapes returns every catalog shape in canonical order.
func AllShapes() []Shape {
	shapes := make([]Shape, shapeCount)
	for i := range shapes {
		shapes[i] = Shape(i)
	}

	return shapes
}

func (that Shape) Valid() bool {
	return int(that) < shapeCount
}

// Cells returns the four offsets occupied by the shape.
func (that Shape) Cells() [4]Point {
	return that.def().cells
}

// Next returns the shape reached by one clockwise rotation.
func (that Shape) Next() Shape {
	return that.def().next
}

func (that Shape) Kind() Kind {
	return that.def().kind
}

// def panics on a code outside the catalog: callers only ever hold shapes taken from it.
func (that Shape) def() shapeDef {
	if !that.Valid() {
		panic(fmt.Errorf("%w: %d", apperror.ErrUnknownShape, uint8(that)))
	}

	return catalog[that]
}
