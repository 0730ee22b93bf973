package alu

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
)

// DecimalAdjuster implements DAA: correct the accumulator's low and high
// nibbles after a BCD add/subtract so the result is again two valid
// decimal digits. It acts on rhs only; lhs is ignored.
type DecimalAdjuster struct {
	Carry     bool
	Auxiliary bool
}

// NewDecimalAdjuster builds the DAA operator from the current Carry and
// AuxiliaryCarry flags (the flags left behind by the preceding ADD/ADC/SUB
// on the accumulator).
func NewDecimalAdjuster(carry, auxiliary bool) DecimalAdjuster {
	return DecimalAdjuster{Carry: carry, Auxiliary: auxiliary}
}

// Apply implements the Op contract; lhs is ignored.
func (d DecimalAdjuster) Apply(_, rhs bits.Byte) (bits.Byte, flags.Set) {
	lsb := uint16(rhs) & 0xF
	if d.Auxiliary || lsb >= 10 {
		lsb += 6
	}

	msb := uint16(rhs) >> 4
	if lsb >= 0x10 {
		msb++
	}

	if d.Carry || msb >= 10 {
		msb += 6
	}

	res := bits.Byte((msb<<4)&0xF0 | (lsb & 0xF))

	status := flags.SetByResult(res)
	if lsb >= 0x10 {
		status = status.With(flags.AuxiliaryCarry)
	}
	if msb >= 0x10 || d.Carry {
		status = status.With(flags.Carry)
	}
	return res, status
}
