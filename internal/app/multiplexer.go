package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/config"
	"github.com/dshills/vcmux/internal/console"
	"github.com/dshills/vcmux/internal/input/devwatch"
	"github.com/dshills/vcmux/internal/input/key"
	"github.com/dshills/vcmux/internal/input/repeat"
	"github.com/dshills/vcmux/internal/input/router"
	"github.com/dshills/vcmux/internal/power"
	"github.com/dshills/vcmux/internal/producer"
	"github.com/dshills/vcmux/internal/render"
	"github.com/dshills/vcmux/internal/term"
)

// Options configures a Multiplexer.
type Options struct {
	// Config is the loaded configuration.
	Config config.Config

	// Renderer receives flush requests. Defaults to render.Nop.
	Renderer render.Renderer

	// Gateway handles the reboot chord. Defaults to a NodeGateway on
	// the configured control node.
	Gateway power.Gateway

	// LogSource feeds the log console. Nil disables the feed.
	LogSource producer.LogSource

	// BatterySource feeds the status-line battery readout. Nil
	// disables polling.
	BatterySource producer.BatterySource

	// Prober decides which device nodes are keyboards. Defaults to
	// devwatch.NodeProber.
	Prober devwatch.Prober

	// Log is the structured logger.
	Log pslog.Logger
}

// Multiplexer owns the console registry and the background machinery
// around it.
type Multiplexer struct {
	cfg config.Config
	reg *console.Registry
	r   render.Renderer
	km  *key.Keymap
	ctl *router.Controls
	log pslog.Logger

	prober    devwatch.Prober
	logSource producer.LogSource
	battery   producer.BatterySource
}

// New builds a multiplexer from options. The configured keymap file is
// loaded here; a bad keymap is a startup error, not a fallback.
func New(opts Options) (*Multiplexer, error) {
	r := opts.Renderer
	if r == nil {
		r = render.Nop{}
	}

	km := key.QWERTY()
	if path := opts.Config.Input.KeymapPath; path != "" {
		loaded, err := key.LoadKeymap(path)
		if err != nil {
			return nil, fmt.Errorf("loading keymap: %w", err)
		}
		km = loaded
	}

	gw := opts.Gateway
	if gw == nil {
		gw = &power.NodeGateway{Path: opts.Config.Power.ControlNode}
	}

	prober := opts.Prober
	if prober == nil {
		prober = devwatch.NodeProber{}
	}

	reg := console.NewRegistry(r, opts.Log)
	m := &Multiplexer{
		cfg:       opts.Config,
		reg:       reg,
		r:         r,
		km:        km,
		ctl:       router.NewControls(reg, gw, opts.Log),
		log:       opts.Log,
		prober:    prober,
		logSource: opts.LogSource,
		battery:   opts.BatterySource,
	}
	return m, nil
}

// Registry exposes the console registry.
func (m *Multiplexer) Registry() *console.Registry { return m.reg }

// Open creates a console and registers it. The first console opened
// becomes active.
func (m *Multiplexer) Open(title string) (*Handle, error) {
	cols, rows := m.r.Size()
	rows--
	if rows < 1 {
		rows = 1
	}
	s := console.NewSession(console.SessionConfig{
		Title:    title,
		Engine:   term.NewGrid(cols, rows),
		Keymap:   m.km,
		Renderer: m.r,
	})
	m.reg.Add(s)
	return &Handle{m: m, s: s}, nil
}

// Run starts the device watcher and the producers, then blocks until
// the context is cancelled. The log console is opened here so the feed
// has somewhere to land even before any client connects.
func (m *Multiplexer) Run(ctx context.Context) error {
	if m.logSource != nil {
		h, err := m.Open("log")
		if err != nil {
			return err
		}
		go producer.NewLogReader(m.logSource, h, m.log).Run()
	}
	if m.battery != nil {
		go producer.NewBatteryPoller(m.battery, m.reg, m.r, m.cfg.BatteryInterval(), m.log).Run()
	}

	w := devwatch.New(m.cfg.Input.DeviceDir, m.prober, m.spawnRouter, m.log)
	return w.Run(ctx)
}

// spawnRouter runs one keyboard's input loop. Called on its own
// goroutine by the device watcher.
func (m *Multiplexer) spawnRouter(name string, src router.Source) {
	log := m.log
	if log != nil {
		log = log.With("device", name)
	}

	var timer *repeat.Timer
	if m.cfg.Input.KeyRepeat {
		timer = repeat.NewTimer(m.cfg.RepeatDelay(), m.cfg.RepeatFloor())
	}

	router.New(router.Config{
		Source:   src,
		Registry: m.reg,
		Controls: m.ctl,
		Timer:    timer,
		Log:      log,
	}).Run()

	if c, ok := src.(io.Closer); ok {
		_ = c.Close()
	}
	if log != nil {
		log.Info("keyboard detached")
	}
}

// DisplaySource adapts the registry for a hosted render backend.
func (m *Multiplexer) DisplaySource() *DisplaySource {
	return &DisplaySource{reg: m.reg}
}

// DisplaySource pulls the active console's cells and the status line
// for a renderer backend.
type DisplaySource struct {
	reg *console.Registry
}

// ActiveRow copies one row of the active console into dst.
func (d *DisplaySource) ActiveRow(y int, dst []term.Cell) int {
	s := d.reg.Active()
	if s == nil {
		return 0
	}
	return s.Snapshot(y, dst)
}

// Status returns the composed status line.
func (d *DisplaySource) Status(width int) string {
	return d.reg.StatusLine(width)
}

// Fullscreen reports whether the active console owns the status row.
func (d *DisplaySource) Fullscreen() bool {
	s := d.reg.Active()
	return s != nil && s.Fullscreen()
}

// NewNodeLogSource opens a platform log node as a record source, or
// nil when the path is empty.
func NewNodeLogSource(path string) (producer.LogSource, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log device %s: %w", path, err)
	}
	return &nodeLogSource{f: f}, nil
}

// nodeLogSource reads newline-separated payload from a log node.
// Timestamps and thread identity are not on this wire; records carry
// zeroes and the reader formats them as such.
type nodeLogSource struct {
	f   *os.File
	buf []byte
}

func (s *nodeLogSource) ReadRecord() (producer.Record, error) {
	if s.buf == nil {
		s.buf = make([]byte, 4096)
	}
	n, err := s.f.Read(s.buf)
	if err != nil {
		return producer.Record{}, err
	}
	line := make([]byte, n)
	copy(line, s.buf[:n])
	return producer.Record{Line: line}, nil
}

// NewNodeBatterySource reads battery state strings from a node, or nil
// when the path is empty. The node is re-read from the start on every
// poll.
func NewNodeBatterySource(path string) producer.BatterySource {
	if path == "" {
		return nil
	}
	return &nodeBatterySource{path: path}
}

type nodeBatterySource struct {
	path string
}

func (s *nodeBatterySource) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("reading battery node %s: %w", s.path, err)
	}
	for i, b := range data {
		if b == '\n' {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}
