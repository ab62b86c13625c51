package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"pong/internal/client"
	"pong/internal/config"
	"pong/internal/terminal"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pong:", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := openLog(config.Config.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slog.Level(config.Config.LogLevel),
	}))
	slog.SetDefault(logger)

	screen, err := terminal.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := client.NewGame(terminal.NewCanvas(screen), logger)
	events := make(chan client.Event)
	host := terminal.NewHost(screen, config.Config.TickInterval(), config.Config.ReleaseAfter())
	go host.Run(ctx, events)

	err = game.Run(ctx, events)
	cancel()
	screen.Fini()
	if err != nil {
		return err
	}

	fmt.Printf("Final score: %d : %d\n", game.State.Left.Score, game.State.Right.Score)
	return nil
}

func openLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	return f, nil
}
