package core

import "github.com/coreemu/i8080/pkg/reg"

// pushPopPairOf maps a 2-bit register-pair field to its Code16 in the
// PUSH/POP context, where field 3 names PSW rather than SP.
func pushPopPairOf(field byte) reg.Code16 {
	if field&3 == 3 {
		return reg.PSW
	}
	return pairOf(field)
}

// Execute performs one fetch-decode-execute cycle: it latches the next
// opcode byte into Inst, splits it into (op, dst, src) per §4.5, and
// dispatches to the named micro-sequence. The only error an opcode can
// produce is an IN/OUT port failure (§7); every other path is total.
func (c *Console) Execute() error {
	opcode := c.FetchInstruction()
	c.Regs.Load8(reg.Inst, opcode)

	op := opcode >> 6
	dst := (opcode >> 3) & 7
	src := opcode & 7

	switch op {
	case 1:
		c.execMove(dst, src)
	case 2:
		c.execAlu(dst, src)
	case 0:
		c.execMisc(dst, src)
	case 3:
		return c.execControl(dst, src)
	default:
		panic("core: unreachable opcode group")
	}
	return nil
}

// execMove implements the op=1 MOV matrix (§4.5).
func (c *Console) execMove(dst, src byte) {
	switch {
	case dst == 6 && src == 6:
		c.Halt()
	case src == 6:
		c.MoveHLMemToReg(registerOf(dst))
	case dst == 6:
		c.StoreRegToHLMem(registerOf(src))
	default:
		c.MoveRegToReg(registerOf(dst), registerOf(src))
	}
}

// execAlu implements the op=2 register/memory ALU block (§4.5): dst
// selects the operation, src=6 means the memory operand at HL.
func (c *Console) execAlu(dst, src byte) {
	if src == 6 {
		c.AluWithMem(dst)
		return
	}
	c.AluWithReg(dst, registerOf(src))
}

// execMisc implements the op=0 block. The table below is the same
// regularity the 8080's own opcode map exhibits: for a fixed src, dst
// selects either a uniform family (rotates, INR/DCR/MVI by register) or
// an even/odd split between two related verbs (LXI/DAD, STAX/LDAX,
// INX/DCX, SHLD/LHLD/STA/LDA).
func (c *Console) execMisc(dst, src byte) {
	switch src {
	case 0:
		c.NoOp()
	case 1:
		pair := pairOf(dst >> 1)
		if dst&1 == 0 {
			c.MoveReg16Immediate(pair)
		} else {
			c.DoubleAdd(pair)
		}
	case 2:
		c.execMiscIndirectOrDirect(dst)
	case 3:
		pair := pairOf(dst >> 1)
		if dst&1 == 0 {
			c.Regs.Increment16(pair)
		} else {
			c.Regs.Decrement16(pair)
		}
	case 4:
		if dst == 6 {
			c.IncDecMem(false)
		} else {
			c.IncDecReg(false, registerOf(dst))
		}
	case 5:
		if dst == 6 {
			c.IncDecMem(true)
		} else {
			c.IncDecReg(true, registerOf(dst))
		}
	case 6:
		if dst == 6 {
			c.StoreHLImmediate()
		} else {
			c.MoveRegImmediate(registerOf(dst))
		}
	case 7:
		c.execAccumulatorMisc(dst)
	default:
		panic("core: unreachable op=0 src field")
	}
}

// execMiscIndirectOrDirect implements op=0 src=2: STAX/LDAX for dst 0..3
// (BC/DE, even/odd), SHLD/LHLD/STA/LDA for dst 4..7.
func (c *Console) execMiscIndirectOrDirect(dst byte) {
	switch dst {
	case 0:
		c.StoreIndirect(reg.Acc, reg.BC)
	case 1:
		c.MoveIndirect(reg.Acc, reg.BC)
	case 2:
		c.StoreIndirect(reg.Acc, reg.DE)
	case 3:
		c.MoveIndirect(reg.Acc, reg.DE)
	case 4:
		c.StoreReg16Direct(reg.HL)
	case 5:
		c.MoveReg16Direct(reg.HL)
	case 6:
		c.StoreRegDirect(reg.Acc)
	case 7:
		c.MoveRegDirect(reg.Acc)
	default:
		panic("core: unreachable op=0 src=2 dst field")
	}
}

// execAccumulatorMisc implements op=0 src=7: the accumulator-only rotate
// and flag/DAA/CMA opcodes, selected directly by dst.
func (c *Console) execAccumulatorMisc(dst byte) {
	switch dst {
	case 0:
		c.RotateAcc(false, false) // RLC
	case 1:
		c.RotateAcc(true, false) // RRC
	case 2:
		c.RotateAcc(false, true) // RAL
	case 3:
		c.RotateAcc(true, true) // RAR
	case 4:
		c.DecimalAdjustAcc()
	case 5:
		c.ComplementAcc()
	case 6:
		c.SetCarry()
	case 7:
		c.ComplementCarry()
	default:
		panic("core: unreachable op=0 src=7 dst field")
	}
}

// execControl implements the op=3 control block (§4.5). It is the only
// dispatch path that can return a non-nil error, since IN/OUT (src=3,
// dst=2/3) are the only opcodes with an external failure surface.
func (c *Console) execControl(dst, src byte) error {
	switch src {
	case 0:
		c.Return(conditionOf(dst))
	case 1:
		c.execControlSrc1(dst)
	case 2:
		c.JumpImmediate(conditionOf(dst))
	case 3:
		return c.execControlSrc3(dst)
	case 4:
		c.CallImmediate(conditionOf(dst))
	case 5:
		if dst&1 == 0 {
			c.PushReg16(pushPopPairOf(dst >> 1))
		} else {
			c.CallImmediate(Anytime)
		}
	case 6:
		c.AluWithImmediate(dst)
	case 7:
		c.Restart(dst)
	default:
		panic("core: unreachable op=3 src field")
	}
	return nil
}

// execControlSrc1 implements op=3 src=1: POP for even dst; for odd dst,
// RET (0xC9 and its undocumented alias 0xD9), PCHL (0xE9), SPHL (0xF9).
func (c *Console) execControlSrc1(dst byte) {
	if dst&1 == 0 {
		c.PopReg16(pushPopPairOf(dst >> 1))
		return
	}
	switch dst {
	case 1, 3:
		c.Return(Anytime)
	case 5:
		c.JumpToHL()
	case 7:
		c.LoadSPFromHL()
	default:
		panic("core: unreachable op=3 src=1 dst field")
	}
}

// execControlSrc3 implements op=3 src=3: JMP (0xC3 and its undocumented
// alias 0xCB) for dst 0/1, OUT/IN/XTHL/XCHG/DI/EI for dst 2..7.
func (c *Console) execControlSrc3(dst byte) error {
	switch dst {
	case 0, 1:
		c.JumpImmediate(Anytime)
	case 2:
		return c.Output()
	case 3:
		return c.Input()
	case 4:
		c.ExchangeStackTopWithHL()
	case 5:
		c.ExchangeHLDE()
	case 6:
		c.DisableInterrupt()
	case 7:
		c.EnableInterrupt()
	default:
		panic("core: unreachable op=3 src=3 dst field")
	}
	return nil
}
