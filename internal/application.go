package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tetris/internal/config"
	"github.com/rocketscienceinc/tetris/internal/entity"
	"github.com/rocketscienceinc/tetris/internal/repository"
	"github.com/rocketscienceinc/tetris/internal/repository/storage"
	"github.com/rocketscienceinc/tetris/internal/transport/terminal"
	"github.com/rocketscienceinc/tetris/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game in the terminal and returns the finished session.
func RunApp(logger *slog.Logger, conf *config.Config) (*entity.Session, error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var sessionRepo repository.SessionRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		sessionRepo = repository.NewSessionRepository(redisStorage.Connection)
	}

	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create terminal screen: %w", err)
	}

	screen, err := terminal.New(logger, tcellScreen)
	if err != nil {
		return nil, fmt.Errorf("could not open terminal: %w", err)
	}
	defer screen.Close()

	// stops the producers before the screen is finalized
	defer cancel()

	manager := usecase.NewGameManager(logger, screen, sessionRepo, newRand(conf.Seed))

	log.Info("Starting game", "tick_interval", conf.TickInterval, "persist_sessions", conf.Redis.Enabled)

	session, err := manager.Play(ctx, screen.Events(ctx, conf.TickInterval))
	if err != nil {
		return session, fmt.Errorf("game failed: %w", err)
	}

	return session, nil
}

// newRand - seed 0 means a fresh random seed per run.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(seed, seed))
}
