// Package alu implements the 8080's arithmetic/logic unit as a family of
// small, stateless operator values rather than the teacher's flat
// switch-on-opcode dispatch (pkg/cpu/exec.go in the retrieval pack computes
// flags inline per opcode case). Each Op is a pure function of (lhs, rhs)
// to (result, flags.Set); the decoder and micro-sequence layer select
// which Op to construct, then call it uniformly.
package alu

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
)

// Op is the uniform ALU contract: a pure operator over two bytes that
// returns a result byte plus a complete flag set. Flags not meaningful to
// the operation are simply absent — Op never preserves flags across calls.
type Op interface {
	Apply(lhs, rhs bits.Byte) (bits.Byte, flags.Set)
}
