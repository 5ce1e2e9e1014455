package power

import (
	"fmt"
	"os"
)

// Opcode selects a power management operation.
type Opcode string

// OpReboot requests a system reboot.
const OpReboot Opcode = "reboot"

// Gateway sends one-shot requests to the power manager.
type Gateway interface {
	// Request issues the operation. Fire-and-forget; callers do not
	// retry on failure.
	Request(op Opcode, args []byte) error
}

// NodeGateway writes requests to a control node, the way a device
// manager control file consumes plain-text commands.
type NodeGateway struct {
	// Path is the control node to write to.
	Path string
}

// Request implements Gateway.
func (g *NodeGateway) Request(op Opcode, args []byte) error {
	f, err := os.OpenFile(g.Path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening power node %s: %w", g.Path, err)
	}
	defer f.Close()

	msg := []byte(op)
	if len(args) > 0 {
		msg = append(msg, ' ')
		msg = append(msg, args...)
	}
	if _, err := f.Write(msg); err != nil {
		return fmt.Errorf("power request %q: %w", op, err)
	}
	return nil
}
