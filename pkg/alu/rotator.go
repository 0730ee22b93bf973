package alu

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
)

// Rotator implements the accumulator rotates RLC/RRC/RAL/RAR. Rotate-right
// is defined by bit-reversing the
// input, performing a rotate-left, then bit-reversing the output, per the
// spec — this lets one shift-left-and-wrap implementation serve both
// directions instead of duplicating the bit arithmetic.
type Rotator struct {
	RotateRight  bool
	ThroughCarry bool
	CarryIn      bool
}

// NewRotateLeft returns the plain rotate-left operator.
func NewRotateLeft() Rotator { return Rotator{} }

// NewRotateRight returns the plain rotate-right operator.
func NewRotateRight() Rotator { return Rotator{RotateRight: true} }

// WithThroughCarry returns a copy of r configured to rotate through the
// carry flag rather than wrapping the shifted-out bit back in directly.
func (r Rotator) WithThroughCarry() Rotator {
	r.ThroughCarry = true
	return r
}

// WithCarry returns a copy of r carrying the current Carry flag value,
// consulted only when ThroughCarry is set.
func (r Rotator) WithCarry(carry bool) Rotator {
	r.CarryIn = carry
	return r
}

// Apply implements the Op contract; lhs is ignored, the rotate acts on rhs.
func (r Rotator) Apply(_, rhs bits.Byte) (bits.Byte, flags.Set) {
	v := rhs
	if r.RotateRight {
		v = bits.ReverseBits(v)
	}

	carryOut := bits.Bit(v, 7)
	bit0 := carryOut
	if r.ThroughCarry {
		bit0 = r.CarryIn
	}

	res := (v << 1) | boolBit(bit0)
	if r.RotateRight {
		res = bits.ReverseBits(res)
	}

	var status flags.Set
	if carryOut {
		status = status.With(flags.Carry)
	}
	return res, status
}

func boolBit(b bool) bits.Byte {
	if b {
		return 1
	}
	return 0
}
