package core

import "github.com/coreemu/i8080/pkg/flags"

// Condition names a jump/call/return predicate derived from the flag
// register. Anytime is the unconditional predicate used by JMP/CALL/RET
// and the control-block opcodes that never test a flag.
type Condition uint8

const (
	Anytime Condition = iota
	OnZero
	OnNonZero
	OnCarry
	OnNonCarry
	OnParityEven
	OnParityOdd
	OnMinus
	OnPlus
)

// conditionOf maps the 3-bit dst field of an op=3 RET/JMP/CALL opcode to
// its Condition, in the 8080's standard cc ordering: NZ,Z,NC,C,PO,PE,P,M.
func conditionOf(field byte) Condition {
	switch field & 7 {
	case 0:
		return OnNonZero
	case 1:
		return OnZero
	case 2:
		return OnNonCarry
	case 3:
		return OnCarry
	case 4:
		return OnParityOdd
	case 5:
		return OnParityEven
	case 6:
		return OnPlus
	case 7:
		return OnMinus
	default:
		panic("core: unreachable condition field")
	}
}

// satisfies reports whether cond holds against the current flag set.
func (c *Console) satisfies(cond Condition) bool {
	f := c.scrambledFlags()
	switch cond {
	case Anytime:
		return true
	case OnZero:
		return f.Has(flags.Zero)
	case OnNonZero:
		return !f.Has(flags.Zero)
	case OnCarry:
		return f.Has(flags.Carry)
	case OnNonCarry:
		return !f.Has(flags.Carry)
	case OnParityEven:
		return f.Has(flags.Parity)
	case OnParityOdd:
		return !f.Has(flags.Parity)
	case OnMinus:
		return f.Has(flags.Sign)
	case OnPlus:
		return !f.Has(flags.Sign)
	default:
		panic("core: unreachable jump condition")
	}
}
