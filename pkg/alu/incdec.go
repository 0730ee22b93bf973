package alu

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
)

// IncDec implements INR/DCR (and their memory cousins at the micro-sequence
// layer): increment or decrement rhs by one, ignoring lhs.
// It is built on top of Adder rather than reimplementing the half-carry
// arithmetic, since INR/DCR's Zero/Sign/Parity/AuxiliaryCarry behavior is
// exactly a +1/-1 Adder call — the one difference is that INR/DCR never
// touch the Carry flag, so Carry is stripped from the Adder's result.
type IncDec struct {
	Decrement bool
}

// NewIncrement returns the INR operator.
func NewIncrement() IncDec { return IncDec{Decrement: false} }

// NewDecrement returns the DCR operator.
func NewDecrement() IncDec { return IncDec{Decrement: true} }

// Apply implements the Op contract; lhs is ignored.
func (d IncDec) Apply(_, rhs bits.Byte) (bits.Byte, flags.Set) {
	var op Adder
	if d.Decrement {
		op = NewSubber()
	} else {
		op = NewAdder()
	}
	res, status := op.Apply(rhs, 1)
	return res, status.Without(flags.Carry)
}
