package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/config"
	"LocalPaint/internal/host"
	"LocalPaint/internal/logging"
	"LocalPaint/internal/render"
	"LocalPaint/internal/ui"
)

func main() {
	configPath := pflag.StringP("config", "c", os.Getenv("LOCALPAINT_CONFIG"), "path to a TOML config file")
	logLevel := pflag.String("log-level", "", "override log level (debug, info, warn, error)")
	logFormat := pflag.String("log-format", "", "override log format (text, json)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	if err := setupLogging(cfg.Log); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	logger := logging.For("main")

	painter, err := render.NewPainter()
	if err != nil {
		log.Fatalf("Failed to create painter: %v", err)
	}
	defer painter.Close()

	h, err := newHost(cfg)
	if err != nil {
		log.Fatalf("Failed to create paint session: %v", err)
	}

	logger.Info("starting", "action", h.Action().String(), "config", *configPath)
	ui.RunApp(h, painter, cfg)
}

func setupLogging(c config.Log) error {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	l, err := logging.New(os.Stderr, level, c.Format)
	if err != nil {
		return err
	}
	logging.SetLogger(l)
	return nil
}

func newHost(cfg config.Config) (*host.Host, error) {
	action, err := cfg.Action()
	if err != nil {
		return nil, err
	}
	background, err := cfg.Background()
	if err != nil {
		return nil, err
	}

	surface := canvas.NewSurface()
	surface.SetBackground(background)

	opts := host.DefaultOptions()
	opts.Action = action
	opts.Opacity = cfg.Defaults.Opacity
	opts.Scale = cfg.Defaults.Scale
	return host.New(surface, opts), nil
}
