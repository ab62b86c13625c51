package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
)

const defaultPath = "config.json"

var Config = Default()

// Configuration holds host settings only. Arena size and speeds are compiled in.
type Configuration struct {
	LogLevel       int `json:"logLevel"`
	TickRate       int `json:"tickRate"`
	WindowScale    int `json:"windowScale"`
	ReleaseAfterMs int `json:"releaseAfterMs"`
	// LogFile receives the terminal host's logs, which would otherwise garble the screen.
	LogFile string `json:"logFile"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:       int(slog.LevelInfo),
		TickRate:       60,
		WindowScale:    2,
		ReleaseAfterMs: 700,
		LogFile:        "pong.log",
	}
}

// TickInterval is the time between two update ticks.
func (c Configuration) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c Configuration) ReleaseAfter() time.Duration {
	return time.Duration(c.ReleaseAfterMs) * time.Millisecond
}

// Read parses the JSON file at path on top of the defaults.
func Read(path string) (Configuration, error) {
	c := Default()

	cf, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "reading config %s", path)
	}
	if err := json.Unmarshal(cf, &c); err != nil {
		return Default(), errors.Wrapf(err, "parsing config %s", path)
	}

	return c.sanitize(), nil
}

// LoadConfig sets Config from path, or from config.json when path is empty. Any failure
// leaves the defaults in place.
func LoadConfig(path string) {
	if path == "" {
		path = defaultPath
	}

	c, err := Read(path)
	if err != nil {
		slog.Info("failed to read configuration, using default config instead", slog.Any("error", err))
	}

	Config = c
}

func (c Configuration) sanitize() Configuration {
	d := Default()
	if c.TickRate <= 0 || c.TickRate > 1000 {
		slog.Warn("tickRate out of range, using default", slog.Int("tickRate", c.TickRate))
		c.TickRate = d.TickRate
	}
	if c.WindowScale <= 0 {
		slog.Warn("windowScale out of range, using default", slog.Int("windowScale", c.WindowScale))
		c.WindowScale = d.WindowScale
	}
	if c.ReleaseAfterMs <= 0 {
		slog.Warn("releaseAfterMs out of range, using default", slog.Int("releaseAfterMs", c.ReleaseAfterMs))
		c.ReleaseAfterMs = d.ReleaseAfterMs
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
	return c
}
