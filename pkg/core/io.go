package core

import (
	"fmt"

	"github.com/coreemu/i8080/pkg/reg"
)

// Input implements IN port: fetch the port byte, then read one byte from
// the configured input source into Acc. A read error (e.g. the input
// source hitting EOF) is an ordinary runtime condition, not a decode-table
// "can't happen" case — it is returned as a wrapped error rather than
// panicking, per §7's "no panics cross an exported API boundary".
func (c *Console) Input() error {
	port := c.FetchInstruction()
	if c.In == nil {
		panic("core: IN executed with no InputPort configured")
	}
	v, err := c.In.ReadPort(port)
	if err != nil {
		return fmt.Errorf("core: IN port %#02x: %w", port, err)
	}
	c.Regs.Load8(reg.Acc, v)
	return nil
}

// Output implements OUT port: fetch the port byte, then write Acc to the
// configured output sink.
func (c *Console) Output() error {
	port := c.FetchInstruction()
	if c.Out == nil {
		panic("core: OUT executed with no OutputPort configured")
	}
	if err := c.Out.WritePort(port, c.Regs.Read8(reg.Acc)); err != nil {
		return fmt.Errorf("core: OUT port %#02x: %w", port, err)
	}
	return nil
}
