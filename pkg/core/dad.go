package core

import (
	"github.com/coreemu/i8080/pkg/flags"
	"github.com/coreemu/i8080/pkg/reg"
)

// DoubleAdd implements DAD pair: HL += pair (16-bit, wrapping), setting
// only Carry from the bit-15 carry-out. Every other flag is left as-is —
// DAD is the one ALU-adjacent opcode in the 8080 set that doesn't route
// through the 8-bit Adder at all.
func (c *Console) DoubleAdd(pair reg.Code16) {
	hl := uint32(c.Regs.Read16(reg.HL))
	rhs := uint32(c.Regs.Read16(pair))
	sum := hl + rhs
	c.Regs.Load16(reg.HL, uint16(sum))

	view := c.Regs.Masked(reg.Flag, byte(flags.Carry))
	if sum > 0xFFFF {
		view.Load(0xFF)
	} else {
		view.Load(0)
	}
}
