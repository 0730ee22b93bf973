package core

import (
	"github.com/coreemu/i8080/pkg/alu"
	"github.com/coreemu/i8080/pkg/flags"
	"github.com/coreemu/i8080/pkg/reg"
)

// applyToAcc runs op against Acc and rhs, writes the result back into Acc
// via the data bus, and scrambles the resulting flags into F. Shared by
// every alu_with_* micro-sequence except Cmp, which discards the result.
func (c *Console) applyToAcc(op alu.Op, rhs byte) {
	res, status := op.Apply(c.Regs.Read8(reg.Acc), rhs)
	c.Buses.Data = res
	c.Buses.LoadFromData(c.Regs, reg.Acc)
	c.writeFlags(status)
}

// cmpAcc runs op against Acc and rhs and writes only the flags.
func (c *Console) cmpAcc(op alu.Op, rhs byte) {
	_, status := op.Apply(c.Regs.Read8(reg.Acc), rhs)
	c.writeFlags(status)
}

// AluWithReg implements the op=2 register-operand ALU instructions:
// route src into Tmp, invoke op against Acc, write back (or discard, for
// Cmp), write flags.
func (c *Console) AluWithReg(selector byte, src reg.Code8) {
	c.Buses.ReadToData(c.Regs, src)
	c.Buses.LoadFromData(c.Regs, reg.Tmp)
	rhs := c.Regs.Read8(reg.Tmp)
	c.dispatchAlu(selector, rhs)
}

// AluWithMem implements the op=2 src=6 memory-operand ALU instructions:
// address←HL, fetch into Tmp, invoke op against Acc.
func (c *Console) AluWithMem(selector byte) {
	c.Buses.Read16ToAddress(c.Regs, reg.HL)
	c.Fetch()
	c.Buses.LoadFromData(c.Regs, reg.Tmp)
	rhs := c.Regs.Read8(reg.Tmp)
	c.dispatchAlu(selector, rhs)
}

// AluWithImmediate implements the op=3 src=6 immediate ALU instructions:
// fetch the operand byte into Tmp, invoke op against Acc.
func (c *Console) AluWithImmediate(selector byte) {
	v := c.FetchInstruction()
	c.Regs.Load8(reg.Tmp, v)
	c.dispatchAlu(selector, v)
}

// dispatchAlu resolves selector to its ALU operator and either applies it
// to Acc (writing the result back) or, for Cmp, only updates the flags.
func (c *Console) dispatchAlu(selector byte, rhs byte) {
	op := aluOp(selector)
	if selector&7 == 7 {
		c.cmpAcc(op, rhs)
		return
	}
	c.applyToAcc(op, rhs)
}

func incDecOp(decrement bool) alu.Op {
	if decrement {
		return alu.NewDecrement()
	}
	return alu.NewIncrement()
}

// IncDecReg implements INR/DCR reg: apply Inc/Dec to the register,
// writing back through the data bus, then scramble flags — but preserve
// Carry, since INR/DCR never touch it (alu.IncDec already strips Carry
// from its own result; the prior Carry bit is carried forward here
// rather than cleared).
func (c *Console) IncDecReg(decrement bool, target reg.Code8) {
	op := incDecOp(decrement)
	prevCarry := c.scrambledFlags().Has(flags.Carry)
	res, status := op.Apply(0, c.Regs.Read8(target))
	c.Buses.Data = res
	c.Buses.LoadFromData(c.Regs, target)
	if prevCarry {
		status = status.With(flags.Carry)
	}
	c.writeFlags(status)
}

// IncDecMem implements INR/DCR M: the same Inc/Dec-with-Carry-preserved
// sequence as IncDecReg, but against memory at HL instead of a register.
func (c *Console) IncDecMem(decrement bool) {
	op := incDecOp(decrement)
	c.Buses.Read16ToAddress(c.Regs, reg.HL)
	c.Fetch()
	prevCarry := c.scrambledFlags().Has(flags.Carry)
	res, status := op.Apply(0, c.Buses.Data)
	c.Buses.Data = res
	c.Buses.Read16ToAddress(c.Regs, reg.HL)
	c.Store()
	if prevCarry {
		status = status.With(flags.Carry)
	}
	c.writeFlags(status)
}

// RotateAcc implements RLC/RRC/RAL/RAR: rotate the accumulator in place
// and update only Carry, the single flag a rotate touches.
func (c *Console) RotateAcc(rotateRight, throughCarry bool) {
	r := alu.NewRotateLeft()
	if rotateRight {
		r = alu.NewRotateRight()
	}
	if throughCarry {
		r = r.WithThroughCarry().WithCarry(c.scrambledFlags().Has(flags.Carry))
	}
	res, status := r.Apply(0, c.Regs.Read8(reg.Acc))
	c.Regs.Load8(reg.Acc, res)

	view := c.Regs.Masked(reg.Flag, byte(flags.Carry))
	if status.Has(flags.Carry) {
		view.Load(0xFF)
	} else {
		view.Load(0)
	}
}

// DecimalAdjustAcc implements DAA.
func (c *Console) DecimalAdjustAcc() {
	f := c.scrambledFlags()
	adj := alu.NewDecimalAdjuster(f.Has(flags.Carry), f.Has(flags.AuxiliaryCarry))
	res, status := adj.Apply(0, c.Regs.Read8(reg.Acc))
	c.Regs.Load8(reg.Acc, res)
	c.writeFlags(status)
}

// ComplementAcc implements CMA: bitwise-not the accumulator. CMA touches
// no flags at all, per the manual.
func (c *Console) ComplementAcc() {
	res, _ := alu.NewNot().Apply(0, c.Regs.Read8(reg.Acc))
	c.Regs.Load8(reg.Acc, res)
}

// SetCarry implements STC: a masked view on Flag with the Carry mask,
// loaded all-ones to force the bit to 1, leaving every other flag alone.
func (c *Console) SetCarry() {
	c.Regs.Masked(reg.Flag, byte(flags.Carry)).Load(0xFF)
}

// ComplementCarry implements CMC: a masked view on Flag with the Carry
// mask, loaded with its own complement to toggle the bit.
func (c *Console) ComplementCarry() {
	view := c.Regs.Masked(reg.Flag, byte(flags.Carry))
	view.Load(^view.Read())
}
