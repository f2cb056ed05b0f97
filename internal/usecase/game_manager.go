package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tetris/internal/apperror"
	"github.com/rocketscienceinc/tetris/internal/entity"
	"github.com/rocketscienceinc/tetris/internal/tetris"
)

type display interface {
	Draw(snapshot entity.Snapshot) error
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
}

// GameManager is the single consumer of the merged input/tick stream. Only it touches engine state.
type GameManager struct {
	logger      *slog.Logger
	display     display
	sessionRepo sessionRepo
	rng         *rand.Rand
	now         func() time.Time
}

// NewGameManager - sessionRepo may be nil, finished sessions are then only logged.
func NewGameManager(logger *slog.Logger, display display, sessionRepo sessionRepo, rng *rand.Rand) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		display:     display,
		sessionRepo: sessionRepo,
		rng:         rng,
		now:         time.Now,
	}
}

// Play runs one game until Quit, game over, a closed event stream or ctx cancellation.
func (that *GameManager) Play(ctx context.Context, events <-chan entity.Event) (*entity.Session, error) {
	log := that.logger.With("method", "Play")

	session := entity.NewSession(that.now())
	log = log.With("session_id", session.ID)

	controller, err := tetris.NewGameController(entity.NewBoard(), entity.NewPieceBag(that.rng))
	if err != nil && !errors.Is(err, apperror.ErrGameOver) {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started")

	outcome, err := that.loop(ctx, log, controller, events)
	if err != nil {
		return nil, err
	}

	session.Finish(that.now(), outcome, controller.Locked(), controller.Render())

	log.Info("game finished", "outcome", session.Outcome, "lines", session.Lines, "pieces", session.Pieces)

	if err = that.saveSession(ctx, session); err != nil {
		return session, err
	}

	return session, nil
}

func (that *GameManager) loop(
	ctx context.Context,
	log *slog.Logger,
	controller *tetris.GameController,
	events <-chan entity.Event,
) (string, error) {
	if err := that.draw(controller); err != nil {
		return "", err
	}

	if controller.IsOver() {
		awaitDismiss(ctx, events)
		return entity.OutcomeGameOver, nil
	}

	for {
		select {
		case <-ctx.Done():
			return entity.OutcomeQuit, nil
		case event, ok := <-events:
			if !ok || event == entity.EventQuit {
				return entity.OutcomeQuit, nil
			}

			log.Debug("event", "event", event.String())

			applyErr := controller.Apply(event)
			if err := that.draw(controller); err != nil {
				return "", err
			}

			if errors.Is(applyErr, apperror.ErrGameOver) {
				log.Debug("game over, waiting for a key")
				awaitDismiss(ctx, events)

				return entity.OutcomeGameOver, nil
			}
		}
	}
}

// awaitDismiss keeps the final frame up until a key arrives, the stream closes or ctx is done. Ticks are skipped.
func awaitDismiss(ctx context.Context, events <-chan entity.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok || event != entity.EventTick {
				return
			}
		}
	}
}

func (that *GameManager) draw(controller *tetris.GameController) error {
	if err := that.display.Draw(controller.Render()); err != nil {
		return fmt.Errorf("failed to draw board: %w", err)
	}

	return nil
}

func (that *GameManager) saveSession(ctx context.Context, session *entity.Session) error {
	if that.sessionRepo == nil {
		return nil
	}

	// ctx is usually canceled already when the game ended on a signal
	ctx = context.WithoutCancel(ctx)

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		that.logger.Error("failed to save session", "session_id", session.ID, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
