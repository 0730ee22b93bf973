package alu

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
)

// Adder implements ADD/ADC/SUB/SBB as one parameterized operator: Neg
// complements rhs before adding (turning addition into subtraction), and
// Cin feeds in a carry/borrow bit — the same neg/cin factoring the 8080's
// own adder circuit uses for all four arithmetic opcodes.
type Adder struct {
	Neg bool
	Cin bool
}

// NewAdder returns the plain ADD operator: lhs + rhs.
func NewAdder() Adder { return Adder{Neg: false, Cin: false} }

// NewSubber returns the plain SUB operator: lhs - rhs.
func NewSubber() Adder { return Adder{Neg: true, Cin: true} }

// NewCarriedAdder returns the ADC operator: lhs + rhs + carry.
func NewCarriedAdder() Adder { return Adder{Neg: false, Cin: true} }

// NewBorrowedSubber returns the SBB operator: lhs - rhs - borrow.
func NewBorrowedSubber() Adder { return Adder{Neg: true, Cin: false} }

// Apply implements the Op contract.
func (a Adder) Apply(lhs, rhs bits.Byte) (bits.Byte, flags.Set) {
	rhsPrime := rhs
	if a.Neg {
		rhsPrime = ^rhs
	}

	cin := uint16(0)
	if a.Cin {
		cin = 1
	}

	auxCarry := (uint16(lhs)&0xF)+(uint16(rhsPrime)&0xF)+cin >= 0x10

	rhsSecond, carry1 := rhsPrime, false
	if a.Cin {
		rhsSecond = rhsPrime + 1
		carry1 = rhsPrime == 0xFF
	}

	sum := uint16(lhs) + uint16(rhsSecond)
	res := bits.Byte(sum)
	carry2 := sum > 0xFF

	status := flags.SetByResult(res)
	if carry1 || carry2 {
		status = status.With(flags.Carry)
	}
	if auxCarry {
		status = status.With(flags.AuxiliaryCarry)
	}

	if a.Neg {
		// Subtraction reports Carry as a borrow and AuxiliaryCarry as a
		// half-borrow: both outputs are the complement of the add-path
		// result, per the spec's neg/cin adder.
		status = flags.Set(uint8(status) ^ uint8(flags.Carry) ^ uint8(flags.AuxiliaryCarry))
	}

	return res, status
}
