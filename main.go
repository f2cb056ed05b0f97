package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tetris/internal"
	"github.com/rocketscienceinc/tetris/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logFile := openLogFile(conf)
	defer logFile.Close()

	logger := initLogger(conf, logFile)

	session, err := app.RunApp(logger, conf)
	if err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}

	fmt.Fprintf(os.Stdout, "%s\n%s: %d lines, %d pieces\n", session.Board, session.Outcome, session.Lines, session.Pieces)
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// open log file, stdout belongs to the game screen.
func openLogFile(conf *config.Config) *os.File {
	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file
}

// initialize logger.
func initLogger(conf *config.Config, file *os.File) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
}
