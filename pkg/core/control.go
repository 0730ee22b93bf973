package core

import "github.com/coreemu/i8080/pkg/reg"

// JumpImmediate implements JMP / Jcc: fetch the target address into WZ,
// and if cond is satisfied, load it into PC. WZ is always fetched —
// even on a not-taken conditional jump — since the opcode is a fixed
// three bytes on real hardware regardless of outcome.
func (c *Console) JumpImmediate(cond Condition) {
	c.fetchWZ()
	if c.satisfies(cond) {
		c.Regs.Load16(reg.PC, c.Regs.Read16(reg.WZ))
	}
}

// CallImmediate implements CALL / Ccc: fetch the target address into WZ;
// if cond is satisfied, push the return address (the current PC, which
// already points past this three-byte instruction) and jump to WZ.
func (c *Console) CallImmediate(cond Condition) {
	c.fetchWZ()
	if !c.satisfies(cond) {
		return
	}
	c.PushReg16(reg.PC)
	c.Regs.Load16(reg.PC, c.Regs.Read16(reg.WZ))
}

// Return implements RET / Rcc: if cond is satisfied, pop the return
// address off the stack into PC.
func (c *Console) Return(cond Condition) {
	if !c.satisfies(cond) {
		return
	}
	c.PopReg16(reg.PC)
}

// Restart implements RST n: an unconditional call to address n*8.
func (c *Console) Restart(n byte) {
	target := uint16(n&7) * 8
	c.PushReg16(reg.PC)
	c.Regs.Load16(reg.PC, target)
}

// JumpToHL implements PCHL: PC←HL, unconditionally, with no stack push.
func (c *Console) JumpToHL() {
	c.Regs.Load16(reg.PC, c.Regs.Read16(reg.HL))
}

// LoadSPFromHL implements SPHL: SP←HL.
func (c *Console) LoadSPFromHL() {
	c.Regs.Load16(reg.SP, c.Regs.Read16(reg.HL))
}

// Halt implements HLT: stop the run loop.
func (c *Console) Halt() {
	c.Halted = true
}

// EnableInterrupt, DisableInterrupt and NoOp are out-of-scope collaborator
// stubs (§1): interrupt controllers live outside the core, so EI/DI are
// no-ops here, and NOP is trivially a no-op.
func (c *Console) EnableInterrupt()  {}
func (c *Console) DisableInterrupt() {}
func (c *Console) NoOp()             {}
