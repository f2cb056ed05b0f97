package entity

// Point is a board coordinate. The origin is the top-left cell and y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Point) Add(other Point) Point {
	return Point{X: that.X + other.X, Y: that.Y + other.Y}
}
