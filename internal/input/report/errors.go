package report

import "errors"

// ErrBadReport is returned for reports that are not exactly Size bytes.
// The router treats these as transient glitches and skips them.
var ErrBadReport = errors.New("malformed keyboard report")
