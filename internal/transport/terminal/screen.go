// Package terminal adapts a tcell screen to the game: it decodes keys into events,
// emits ticks and draws snapshots. It holds no game state.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tetris/internal/entity"
	"golang.org/x/sync/errgroup"
)

const (
	cellWidth  = 2
	boardLeft  = 1
	boardRight = boardLeft + entity.BoardWidth*cellWidth
	statusRow  = entity.BoardHeight + 1

	blockRune = '█'
)

var palette = map[entity.Color]tcell.Color{
	entity.ColorRed:    tcell.ColorRed,
	entity.ColorOrange: tcell.ColorOrange,
	entity.ColorYellow: tcell.ColorYellow,
	entity.ColorGreen:  tcell.ColorGreen,
	entity.ColorBlue:   tcell.ColorBlue,
	entity.ColorPurple: tcell.ColorPurple,
	entity.ColorBrown:  tcell.ColorBrown,
}

type Screen struct {
	logger *slog.Logger
	screen tcell.Screen
}

// New initializes screen and switches the terminal to raw mode. Close restores it.
func New(logger *slog.Logger, screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	screen.HideCursor()
	screen.Clear()

	return &Screen{
		logger: logger.With("component", "terminal"),
		screen: screen,
	}, nil
}

func (that *Screen) Close() {
	that.screen.Fini()
}

// Events merges key presses and periodic ticks into one stream.
// The channel is closed once both producers stopped, which happens after ctx is done and Close was called.
func (that *Screen) Events(ctx context.Context, tick time.Duration) <-chan entity.Event {
	events := make(chan entity.Event)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		that.pollKeys(groupCtx, events)
		return nil
	})
	group.Go(func() error {
		produceTicks(groupCtx, tick, events)
		return nil
	})

	go func() {
		_ = group.Wait()
		close(events)
	}()

	return events
}

func (that *Screen) pollKeys(ctx context.Context, events chan<- entity.Event) {
	for {
		// nil once the screen is finalized
		raw := that.screen.PollEvent()
		if raw == nil || ctx.Err() != nil {
			return
		}

		switch ev := raw.(type) {
		case *tcell.EventResize:
			that.logger.Debug("screen resized")
			that.screen.Sync()
		case *tcell.EventKey:
			event, ok := KeyToEvent(ev)
			if !ok {
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

func produceTicks(ctx context.Context, tick time.Duration, events chan<- entity.Event) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case events <- entity.EventTick:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Draw paints the bordered board and a status line, then flushes the screen.
func (that *Screen) Draw(snapshot entity.Snapshot) error {
	that.screen.Clear()

	border := tcell.StyleDefault
	for y := range entity.BoardHeight {
		that.screen.SetContent(0, y, '|', nil, border)
		that.screen.SetContent(boardRight, y, '|', nil, border)

		for x := range entity.BoardWidth {
			that.drawCell(x, y, snapshot.Cells[y][x])
		}
	}

	for x := 0; x <= boardRight; x++ {
		that.screen.SetContent(x, entity.BoardHeight, '-', nil, border)
	}

	status := fmt.Sprintf("lines: %d", snapshot.Lines)
	if snapshot.GameOver {
		status += "  GAME OVER"
	}
	that.drawText(0, statusRow, status)

	that.screen.Show()

	return nil
}

func (that *Screen) drawCell(x, y int, color entity.Color) {
	glyph := ' '
	style := tcell.StyleDefault

	if fg, ok := palette[color]; ok {
		glyph = blockRune
		style = style.Foreground(fg)
	}

	column := boardLeft + x*cellWidth
	for i := range cellWidth {
		that.screen.SetContent(column+i, y, glyph, nil, style)
	}
}

func (that *Screen) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
