// Package main is the entry point for the vcmux virtual console
// multiplexer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/app"
	"github.com/dshills/vcmux/internal/config"
	"github.com/dshills/vcmux/internal/render/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	deviceDir  string
	consoles   int
	headless   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.deviceDir != "" {
		cfg.Input.DeviceDir = opts.deviceDir
	}
	if cfg.Log.Level != "" {
		if _, set := os.LookupEnv("PSLOG_LEVEL"); !set {
			os.Setenv("PSLOG_LEVEL", cfg.Log.Level)
		}
	}

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	logger.Info("vcmux starting", "version", version, "commit", commit)

	logSrc, err := app.NewNodeLogSource(cfg.Log.Device)
	if err != nil {
		logger.Warn("log feed disabled", "err", err)
	}

	muxOpts := app.Options{
		Config:        cfg,
		Log:           logger,
		LogSource:     logSrc,
		BatterySource: app.NewNodeBatterySource(cfg.Battery.Device),
	}

	// The terminal is built before the multiplexer it draws, so its
	// display source is bound afterwards.
	var term *backend.Terminal
	if !opts.headless {
		term, err = backend.NewTerminal(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		if err := term.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
			return 1
		}
		defer term.Fini()
		muxOpts.Renderer = term
	}

	mux, err := app.New(muxOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	if term != nil {
		term.SetSource(mux.DisplaySource())
	}

	for i := 0; i < opts.consoles; i++ {
		if _, err := mux.Open(fmt.Sprintf("vc%d", i)); err != nil {
			logger.Error("opening console failed", "index", i, "err", err)
			return 1
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	if opts.configPath != "" {
		go func() {
			_ = config.Watch(ctx, opts.configPath, func(config.Config) {
				logger.Info("config changed; restart to apply input settings")
			}, logger)
		}()
	}

	if err := mux.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("vcmux failed", "err", err)
		return 1
	}
	logger.Info("vcmux stopped")
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.deviceDir, "devices", "", "Keyboard device directory (overrides config)")
	flag.IntVar(&opts.consoles, "consoles", 1, "Number of consoles to open at startup")
	flag.BoolVar(&opts.headless, "headless", false, "Run without taking over the terminal")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vcmux - virtual console multiplexer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vcmux [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vcmux                       Host consoles on this terminal\n")
		fmt.Fprintf(os.Stderr, "  vcmux -c vcmux.toml         Use a config file\n")
		fmt.Fprintf(os.Stderr, "  vcmux -consoles 3           Open three consoles at startup\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vcmux %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
