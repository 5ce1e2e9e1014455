package producer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"pkt.systems/pslog"
)

// Record is one log entry from the platform log.
type Record struct {
	// Timestamp is time since boot.
	Timestamp time.Duration

	// PID and TID identify the emitting thread.
	PID, TID uint64

	// Line is the message body, with or without a trailing newline.
	Line []byte
}

// LogSource produces log records. ReadRecord blocks until a record is
// available; any error is fatal to the reader.
type LogSource interface {
	ReadRecord() (Record, error)
}

// LogReader copies platform log records onto a console, one colored
// line per record.
type LogReader struct {
	src LogSource
	out io.Writer
	log pslog.Logger
}

// NewLogReader creates a reader feeding out, normally the log
// console's write path.
func NewLogReader(src LogSource, out io.Writer, log pslog.Logger) *LogReader {
	return &LogReader{src: src, out: out, log: log}
}

// Run pumps records until the source fails. The failure is announced
// on the console itself, so it is visible without the structured log.
func (lr *LogReader) Run() {
	for {
		rec, err := lr.src.ReadRecord()
		if err != nil {
			fmt.Fprint(lr.out, "<<LOG ERROR>>\n")
			if lr.log != nil {
				lr.log.Warn("log source failed", "err", err)
			}
			return
		}
		lr.writeRecord(rec)
	}
}

// writeRecord prints one record with the timestamp in green and the
// pid.tid pair in red and cyan, matching the kernel console format.
func (lr *LogReader) writeRecord(rec Record) {
	sec := rec.Timestamp / time.Second
	msec := rec.Timestamp % time.Second / time.Millisecond
	fmt.Fprintf(lr.out, "\033[32m%05d.%03d\033[39m] \033[31m%05d.\033[36m%05d\033[39m> ",
		sec, msec, rec.PID, rec.TID)
	lr.out.Write(rec.Line)
	if !bytes.HasSuffix(rec.Line, []byte{'\n'}) {
		lr.out.Write([]byte{'\n'})
	}
}
