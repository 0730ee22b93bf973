// Package reg implements the 8080 register file: named 8-bit cells,
// big-endian 16-bit pair views over them, and a masked view used by the
// flag set/complement micro-sequences. Grounded on the teacher's flat
// register-struct idiom (cpu.State in the retrieval pack) but keyed by a
// RegisterCode8 enum instead of named struct fields, per the spec's
// keyed-register-file design.
package reg

// Code8 names one of the CPU's 8-bit register cells.
type Code8 uint8

const (
	Acc  Code8 = iota // A
	Flag              // F
	B
	C
	D
	E
	H
	L
	Tmp  // internal scratch latch used by move micro-sequences
	Inst // latched opcode byte
	W    // internal scratch, high half of WZ
	Z    // internal scratch, low half of WZ
	PcH
	PcL
	SpH
	SpL

	code8Count
)

// Code16 names a big-endian register pair composed of two Code8 cells.
type Code16 uint8

const (
	PSW Code16 = iota // (Acc, Flag)
	BC                // (B, C)
	DE                // (D, E)
	HL                // (H, L)
	WZ                // (W, Z)
	SP                // (SpH, SpL)
	PC                // (PcH, PcL)
)

// Halves reports the (high, low) Code8 pair backing a Code16, for callers
// (e.g. the micro-sequences in pkg/core that need a pair's hi/lo cells
// independently, such as LHLD's low-byte-first fetch order) that need the
// split without going through Read16/Load16.
func (p Code16) Halves() (hi, lo Code8) {
	return p.halves()
}

// halves reports the (high, low) Code8 pair backing a Code16.
func (p Code16) halves() (hi, lo Code8) {
	switch p {
	case PSW:
		return Acc, Flag
	case BC:
		return B, C
	case DE:
		return D, E
	case HL:
		return H, L
	case WZ:
		return W, Z
	case SP:
		return SpH, SpL
	case PC:
		return PcH, PcL
	default:
		panic("reg: unknown Code16")
	}
}

// String names a Code16 for diagnostics.
func (p Code16) String() string {
	switch p {
	case PSW:
		return "PSW"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case WZ:
		return "WZ"
	case SP:
		return "SP"
	case PC:
		return "PC"
	default:
		return "?"
	}
}
