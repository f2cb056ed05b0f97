package entity

// Event is an abstract input delivered to the game loop. Raw key decoding happens in the transport.
type Event int

const (
	EventMoveLeft Event = iota + 1
	EventMoveRight
	EventRotateCW
	EventHardDrop
	EventTick
	EventQuit
)

var eventNames = map[Event]string{
	EventMoveLeft:  "move_left",
	EventMoveRight: "move_right",
	EventRotateCW:  "rotate_cw",
	EventHardDrop:  "hard_drop",
	EventTick:      "tick",
	EventQuit:      "quit",
}

func (that Event) String() string {
	if name, ok := eventNames[that]; ok {
		return name
	}

	return "unknown"
}
