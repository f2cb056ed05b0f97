package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutcomeQuit     = "quit"
	OutcomeGameOver = "game_over"
)

// Session records one played game from the first spawn to quit or game over.
type Session struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Outcome    string    `json:"outcome,omitempty"`
	Lines      int       `json:"lines"`
	Pieces     int       `json:"pieces"`
	Board      *Snapshot `json:"board,omitempty"`
}

func NewSession(startedAt time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
	}
}

// Finish stamps the outcome, the locked piece count and the final board onto the session.
func (that *Session) Finish(finishedAt time.Time, outcome string, pieces int, snapshot Snapshot) {
	that.FinishedAt = finishedAt
	that.Outcome = outcome
	that.Lines = snapshot.Lines
	that.Pieces = pieces
	that.Board = &snapshot
}

func (that *Session) IsGameOver() bool {
	return that.Outcome == OutcomeGameOver
}
