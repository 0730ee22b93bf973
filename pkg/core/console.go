// Package core wires the register file, buses, and memory into a Console
// and implements the 8080 fetch-decode-execute loop: the micro-sequences
// of §4.4, the opcode decoder of §4.5, and the run loop of §4.6. It is
// the top package in the dependency graph — everything below it (bits,
// flags, reg, bus, mem, alu) is a leaf the Console composes.
package core

import (
	"github.com/coreemu/i8080/pkg/alu"
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/bus"
	"github.com/coreemu/i8080/pkg/flags"
	"github.com/coreemu/i8080/pkg/mem"
	"github.com/coreemu/i8080/pkg/reg"
)

// InputPort supplies the byte source behind the IN opcode. The core calls
// it once per IN and treats a non-nil error as a fatal stop — the core
// has no retry or recovery policy; see the host CLI for how it's wrapped.
type InputPort interface {
	ReadPort(port bits.Byte) (bits.Byte, error)
}

// OutputPort receives the byte sink behind the OUT opcode.
type OutputPort interface {
	WritePort(port bits.Byte, v bits.Byte) error
}

// Console is the CPU + memory aggregate: the shared buses, the register
// file, the 64 KiB memory, and the halted flag. It is the sole owner of
// all of this state — nothing outside core mutates it directly.
type Console struct {
	Buses  bus.Buses
	Mem    *mem.Memory
	Regs   *reg.File
	Halted bool

	In  InputPort
	Out OutputPort
}

// NewConsole returns a Console with zeroed memory, a zeroed register
// file, and every register at its power-on value of 0 (PC=0, SP=0).
// in/out may be nil; IN/OUT opcodes against a nil port panic, matching
// the spec's stance that routing is strictly an external concern the
// core assumes is configured before the relevant opcode runs.
func NewConsole(in InputPort, out OutputPort) *Console {
	return &Console{
		Mem:  mem.New(),
		Regs: reg.NewFile(),
		In:   in,
		Out:  out,
	}
}

// Flash seeds memory with a program image, starting at offset.
func (c *Console) Flash(program []byte, offset bits.Word) {
	c.Mem.Flash(program, offset)
}

// aluOp resolves the op=2/op=3 ALU-selector field (dst, 0..7) to the
// operator it names, in the fixed order the decoder table specifies:
// Add, Adc, Sub, Sbb, And, Xor, Or, Cmp.
func aluOp(selector bits.Byte) alu.Op {
	switch selector & 7 {
	case 0:
		return alu.NewAdder()
	case 1:
		return alu.NewCarriedAdder()
	case 2:
		return alu.NewSubber()
	case 3:
		return alu.NewBorrowedSubber()
	case 4:
		return alu.NewAnd()
	case 5:
		return alu.NewXor()
	case 6:
		return alu.NewOr()
	case 7:
		return alu.NewSubber() // CMP: same op as SUB, result discarded by the caller
	default:
		panic("core: unreachable ALU selector")
	}
}

// registerOf maps a 3-bit ddd/sss field to its Code8, per the decoder's
// register-code table. Field value 6 (the HL-memory operand) is never
// passed here; callers branch on it before calling registerOf.
func registerOf(field bits.Byte) reg.Code8 {
	switch field & 7 {
	case 0:
		return reg.B
	case 1:
		return reg.C
	case 2:
		return reg.D
	case 3:
		return reg.E
	case 4:
		return reg.H
	case 5:
		return reg.L
	case 7:
		return reg.Acc
	default:
		panic("core: registerOf called with the HL-memory field (6)")
	}
}

// pairOf maps a 2-bit register-pair field to its Code16, per the §4.5
// table's BC/DE/HL/SP mapping (push/pop's PSW substitution is handled by
// the caller, which never routes field 3 through this function there).
func pairOf(field bits.Byte) reg.Code16 {
	switch field & 3 {
	case 0:
		return reg.BC
	case 1:
		return reg.DE
	case 2:
		return reg.HL
	case 3:
		return reg.SP
	default:
		panic("core: unreachable register-pair field")
	}
}

// scrambledFlags returns the Flag register's current value as a Set,
// via Collect — the read-side counterpart of writeFlags.
func (c *Console) scrambledFlags() flags.Set {
	return flags.Collect(c.Regs.Read8(reg.Flag))
}

// writeFlags scrambles a Set into the F register's bit-exact layout.
func (c *Console) writeFlags(s flags.Set) {
	c.Regs.Load8(reg.Flag, flags.Scramble(s))
}
