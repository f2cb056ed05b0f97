package entity

import "strings"

const bottomRule = "----------------------"

// Snapshot is what the display adapter draws: every cell of the board with the active piece merged in.
type Snapshot struct {
	Cells    [BoardHeight][BoardWidth]Color `json:"cells"`
	Lines    int                            `json:"lines"`
	GameOver bool                           `json:"game_over"`
}

func (that *Snapshot) At(p Point) Color {
	if !InBounds(p) {
		return ColorNone
	}

	return that.Cells[p.Y][p.X]
}

// String renders the board as text: two characters per cell between '|' borders and a bottom rule.
func (that *Snapshot) String() string {
	var buf strings.Builder

	for y := range that.Cells {
		buf.WriteByte('|')
		for _, color := range that.Cells[y] {
			letter := color.Letter()
			buf.WriteByte(letter)
			buf.WriteByte(letter)
		}
		buf.WriteString("|\n")
	}
	buf.WriteString(bottomRule)

	return buf.String()
}
