package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tetris/internal/entity"
)

var specialKeys = map[tcell.Key]entity.Event{
	tcell.KeyLeft:   entity.EventMoveLeft,
	tcell.KeyRight:  entity.EventMoveRight,
	tcell.KeyUp:     entity.EventRotateCW,
	tcell.KeyDown:   entity.EventHardDrop,
	tcell.KeyCtrlC:  entity.EventQuit,
	tcell.KeyEscape: entity.EventQuit,
}

var runeKeys = map[rune]entity.Event{
	'a': entity.EventMoveLeft,
	'd': entity.EventMoveRight,
	'w': entity.EventRotateCW,
	's': entity.EventHardDrop,
	'z': entity.EventQuit,
	'q': entity.EventQuit,
}

// KeyToEvent decodes a key press. Keys without a binding report false and are dropped.
func KeyToEvent(key *tcell.EventKey) (entity.Event, bool) {
	if key.Key() == tcell.KeyRune {
		event, ok := runeKeys[key.Rune()]
		return event, ok
	}

	event, ok := specialKeys[key.Key()]

	return event, ok
}
