package devwatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/vcmux/internal/input/router"
)

// stubSource is a Source that never produces data; the tests only
// check which devices get spawned.
type stubSource struct{}

func (stubSource) WaitReadable(time.Duration) (bool, error) { return false, errors.New("stub") }
func (stubSource) Read([]byte) (int, error)                 { return 0, errors.New("stub") }

// nameProber accepts nodes whose base name starts with "kbd".
type nameProber struct{}

func (nameProber) Probe(path string) (router.Source, bool, error) {
	if !strings.HasPrefix(filepath.Base(path), "kbd") {
		return nil, false, nil
	}
	return stubSource{}, true, nil
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

func waitSpawn(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case name := <-ch:
		return name
	case <-time.After(3 * time.Second):
		t.Fatal("no device spawned")
		return ""
	}
}

func TestWatcherScansExistingNodes(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "kbd000"))
	touch(t, filepath.Join(dir, "mouse000"))

	spawned := make(chan string, 8)
	w := New(dir, nameProber{}, func(name string, src router.Source) {
		spawned <- name
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if name := waitSpawn(t, spawned); name != "kbd000" {
		t.Errorf("spawned device = %q, want %q", name, "kbd000")
	}
	select {
	case name := <-spawned:
		t.Errorf("unexpected extra spawn %q", name)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
}

func TestWatcherSpawnsCreatedNode(t *testing.T) {
	dir := t.TempDir()

	spawned := make(chan string, 8)
	w := New(dir, nameProber{}, func(name string, src router.Source) {
		spawned <- name
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watch a moment to establish before creating the node.
	time.Sleep(100 * time.Millisecond)
	touch(t, filepath.Join(dir, "kbd001"))

	if name := waitSpawn(t, spawned); name != "kbd001" {
		t.Errorf("spawned device = %q, want %q", name, "kbd001")
	}
}

func TestWatcherIgnoresRejectedNodes(t *testing.T) {
	dir := t.TempDir()

	spawned := make(chan string, 8)
	w := New(dir, nameProber{}, func(name string, src router.Source) {
		spawned <- name
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	touch(t, filepath.Join(dir, "mouse001"))
	touch(t, filepath.Join(dir, "kbd002"))

	// Only the keyboard shows up, proving the mouse was skipped.
	if name := waitSpawn(t, spawned); name != "kbd002" {
		t.Errorf("spawned device = %q, want %q", name, "kbd002")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := New("/nonexistent/input", nameProber{}, func(string, router.Source) {}, nil)
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run on a missing directory succeeded")
	}
}
