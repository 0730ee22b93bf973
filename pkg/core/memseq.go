package core

import (
	"github.com/coreemu/i8080/pkg/reg"
)

// Fetch copies memory[addr_bus] onto the data bus. Together with Store,
// this is the CPU's only legal path to memory (§4.3).
func (c *Console) Fetch() {
	c.Buses.Data = c.Mem.Read(c.Buses.Addr)
}

// Store copies the data bus into memory[addr_bus].
func (c *Console) Store() {
	c.Mem.Write(c.Buses.Addr, c.Buses.Data)
}

// FetchInstruction copies PC to the address bus, fetches the byte there,
// then increments PC modulo 65536. Every opcode byte, immediate byte, and
// operand byte of a multi-byte instruction goes through this verb.
func (c *Console) FetchInstruction() byte {
	c.Buses.Read16ToAddress(c.Regs, reg.PC)
	c.Fetch()
	c.Regs.Increment16(reg.PC)
	return c.Buses.Data
}
