package main

import (
	"log/slog"
	"os"

	"pong/internal/client"
	"pong/internal/config"
	"pong/internal/window"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	slog.SetLogLoggerLevel(slog.Level(config.Config.LogLevel))

	host := window.NewHost(func(c *window.Canvas) *client.Game {
		return client.NewGame(c, slog.Default())
	})
	if err := window.Run(host, config.Config.WindowScale, config.Config.TickRate); err != nil {
		slog.Error("window closed with error", slog.Any("error", err))
		os.Exit(1)
	}
}
