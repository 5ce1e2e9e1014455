package devwatch

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dshills/vcmux/internal/input/report"
	"github.com/dshills/vcmux/internal/input/router"
)

// FileSource adapts a device node to the router's report source
// contract. WaitReadable performs the actual read under a deadline and
// buffers the report; Read hands it out. Owned by one router goroutine.
type FileSource struct {
	f   *os.File
	buf [report.Size]byte
	n   int
}

// NewFileSource wraps an open device node.
func NewFileSource(f *os.File) *FileSource {
	return &FileSource{f: f}
}

// WaitReadable blocks until a report arrives or the timeout elapses.
// A negative timeout blocks indefinitely.
func (s *FileSource) WaitReadable(timeout time.Duration) (bool, error) {
	if timeout < 0 {
		_ = s.f.SetReadDeadline(time.Time{})
	} else {
		_ = s.f.SetReadDeadline(time.Now().Add(timeout))
	}

	n, err := s.f.Read(s.buf[:])
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return false, nil
		}
		return false, err
	}
	s.n = n
	return true, nil
}

// Read copies out the report buffered by the last WaitReadable.
func (s *FileSource) Read(buf []byte) (int, error) {
	n := copy(buf, s.buf[:s.n])
	s.n = 0
	return n, nil
}

// Close releases the device node.
func (s *FileSource) Close() error {
	return s.f.Close()
}

// NodeProber opens input nodes directly. Every node that opens is
// treated as a keyboard; non-keyboard devices simply never produce a
// well-formed report and their reads glitch harmlessly.
type NodeProber struct{}

// Probe implements Prober.
func (NodeProber) Probe(path string) (router.Source, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("opening input device %s: %w", path, err)
	}
	return NewFileSource(f), true, nil
}

var _ router.Source = (*FileSource)(nil)
var _ Prober = NodeProber{}
