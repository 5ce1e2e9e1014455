package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/vcmux/internal/config"
	"github.com/dshills/vcmux/internal/console"
	"github.com/dshills/vcmux/internal/producer"
	"github.com/dshills/vcmux/internal/term"
)

func newTestMux(t *testing.T) *Multiplexer {
	t.Helper()
	m, err := New(Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// gridText renders one console row as a trimmed string.
func gridText(t *testing.T, h *Handle, y int) string {
	t.Helper()
	cols, _ := h.s.Size()
	cells := make([]term.Cell, cols)
	n := h.s.Snapshot(y, cells)
	out := make([]byte, 0, n)
	for _, c := range cells[:n] {
		if c.Ch == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Ch)
	}
	return strings.TrimRight(string(out), " ")
}

func TestOpenFirstBecomesActive(t *testing.T) {
	m := newTestMux(t)

	h0, err := m.Open("shell")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h1, err := m.Open("debug")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if !h0.Session().Active() {
		t.Error("first console not active")
	}
	if h1.Session().Active() {
		t.Error("second console active")
	}
	if m.Registry().Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Registry().Count())
	}
}

func TestHandleReadWrite(t *testing.T) {
	m := newTestMux(t)
	h, _ := m.Open("shell")

	buf := make([]byte, 8)
	if _, err := h.Read(buf); !errors.Is(err, console.ErrWouldBlock) {
		t.Errorf("Read on empty queue = %v, want ErrWouldBlock", err)
	}

	if !m.Registry().PushToActive([]byte("ls")) {
		t.Fatal("PushToActive failed")
	}
	n, err := h.Read(buf)
	if err != nil || string(buf[:n]) != "ls" {
		t.Errorf("Read = %q, %v, want %q", buf[:n], err, "ls")
	}

	if _, err := h.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := gridText(t, h, 0); got != "hello" {
		t.Errorf("row 0 = %q, want %q", got, "hello")
	}
}

func TestControlDimensions(t *testing.T) {
	m := newTestMux(t)
	h, _ := m.Open("shell")

	res, err := h.Control(OpGetDimensions, nil)
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	// Nop renderer surface is 80x25; one row goes to the status line.
	if dim := res.(Dimensions); dim != (Dimensions{Cols: 80, Rows: 24}) {
		t.Errorf("dimensions = %+v, want 80x24", dim)
	}
}

func TestControlSetActive(t *testing.T) {
	m := newTestMux(t)
	m.Open("shell")
	h1, _ := m.Open("debug")

	if _, err := h1.Control(OpSetActive, nil); err != nil {
		t.Fatalf("Control: %v", err)
	}
	if idx, _ := m.Registry().ActiveIndex(); idx != 1 {
		t.Errorf("active index = %d, want 1", idx)
	}
}

func TestControlFlushRegionValidation(t *testing.T) {
	m := newTestMux(t)
	h, _ := m.Open("shell")

	tests := []struct {
		name string
		arg  any
		want error
	}{
		{name: "wrong type", arg: "whole screen", want: ErrInvalidArgs},
		{name: "negative origin", arg: Region{X: -1, Y: 0, W: 1, H: 1}, want: ErrInvalidArgs},
		{name: "past the edge", arg: Region{X: 79, Y: 0, W: 2, H: 1}, want: ErrInvalidArgs},
		{name: "full band", arg: Region{X: 0, Y: 0, W: 80, H: 24}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Control(OpFlushRegion, tt.arg)
			if !errors.Is(err, tt.want) {
				t.Errorf("Control = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestControlFullscreen(t *testing.T) {
	m := newTestMux(t)
	h, _ := m.Open("shell")

	if _, err := h.Control(OpSetFullscreen, true); err != nil {
		t.Fatalf("Control: %v", err)
	}
	if !h.Session().Fullscreen() {
		t.Error("session not fullscreen")
	}
	if _, err := h.Control(OpSetFullscreen, 1); !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("Control with int arg = %v, want ErrInvalidArgs", err)
	}
}

func TestControlFramebuffer(t *testing.T) {
	m := newTestMux(t)
	h, _ := m.Open("shell")
	h.Write([]byte("fb"))

	if _, err := h.Control(OpGetFramebuffer, make([]term.Cell, 10)); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short buffer = %v, want ErrBufferTooSmall", err)
	}

	buf := make([]term.Cell, 80*24)
	res, err := h.Control(OpGetFramebuffer, buf)
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if dim := res.(Dimensions); dim != (Dimensions{Cols: 80, Rows: 24}) {
		t.Errorf("dimensions = %+v, want 80x24", dim)
	}
	if buf[0].Ch != 'f' || buf[1].Ch != 'b' {
		t.Errorf("framebuffer row 0 = %c%c, want fb", buf[0].Ch, buf[1].Ch)
	}
}

func TestControlUnknownOp(t *testing.T) {
	m := newTestMux(t)
	h, _ := m.Open("shell")

	if _, err := h.Control(ControlOp(99), nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("Control = %v, want ErrNotSupported", err)
	}
}

func TestCloseRemovesAndReselects(t *testing.T) {
	m := newTestMux(t)
	h0, _ := m.Open("shell")
	h1, _ := m.Open("debug")

	if err := h0.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !h1.Session().Active() {
		t.Error("remaining console did not become active")
	}
	if err := h0.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if _, err := h0.Read(make([]byte, 1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Read after Close = %v, want ErrClosed", err)
	}
	if _, err := h0.Control(OpGetDimensions, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Control after Close = %v, want ErrClosed", err)
	}
}

func TestDisplaySource(t *testing.T) {
	m := newTestMux(t)
	src := m.DisplaySource()

	if n := src.ActiveRow(0, make([]term.Cell, 80)); n != 0 {
		t.Errorf("ActiveRow with no consoles = %d, want 0", n)
	}
	if src.Fullscreen() {
		t.Error("Fullscreen with no consoles = true")
	}

	h, _ := m.Open("shell")
	h.Write([]byte("top"))

	cells := make([]term.Cell, 80)
	if n := src.ActiveRow(0, cells); n == 0 || cells[0].Ch != 't' {
		t.Errorf("ActiveRow = %d, cells[0] = %q", n, cells[0].Ch)
	}
	if status := src.Status(80); !strings.Contains(status, "[0] shell") {
		t.Errorf("status = %q, want it to contain the console fragment", status)
	}
}

func TestRunLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Input.DeviceDir = t.TempDir()

	logSrc := &scriptLogSource{lines: []string{"booted"}}
	m, err := New(Options{Config: cfg, LogSource: logSrc})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	deadline := time.After(3 * time.Second)
	for m.Registry().Count() == 0 {
		select {
		case <-deadline:
			t.Fatal("log console never appeared")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

type scriptLogSource struct {
	lines []string
}

func (s *scriptLogSource) ReadRecord() (producer.Record, error) {
	if len(s.lines) == 0 {
		return producer.Record{}, errors.New("log drained")
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return producer.Record{Line: []byte(line)}, nil
}
