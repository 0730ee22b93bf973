package alu

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
)

// logicalKind selects which bitwise operation a Logical value performs.
type logicalKind uint8

const (
	kindAnd logicalKind = iota
	kindOr
	kindXor
	kindNot
)

// Logical implements AND/OR/XOR/NOT. Every variant reports only
// set_by_result(res): none of these operations touch Carry or
// AuxiliaryCarry.
type Logical struct {
	kind logicalKind
}

// NewAnd returns the AND operator.
func NewAnd() Logical { return Logical{kind: kindAnd} }

// NewOr returns the OR operator.
func NewOr() Logical { return Logical{kind: kindOr} }

// NewXor returns the XOR operator.
func NewXor() Logical { return Logical{kind: kindXor} }

// NewNot returns the NOT operator, which ignores lhs.
func NewNot() Logical { return Logical{kind: kindNot} }

// Apply implements the Op contract.
func (l Logical) Apply(lhs, rhs bits.Byte) (bits.Byte, flags.Set) {
	var res bits.Byte
	switch l.kind {
	case kindAnd:
		res = lhs & rhs
	case kindOr:
		res = lhs | rhs
	case kindXor:
		res = lhs ^ rhs
	case kindNot:
		res = ^rhs
	}
	return res, flags.SetByResult(res)
}
