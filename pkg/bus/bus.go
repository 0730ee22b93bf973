// Package bus implements the 8080's shared data and address buses: two
// scalar cells that every register adapter and the memory read and write
// through. The spec's source models these as interior-mutable shared
// cells so several adapters can "hold a wire"; in Go the sharing has no
// observable effect beyond micro-sequence choreography, so Buses is just
// two fields mutated through pointer-receiver methods — the same
// simplification the teacher's CPU_Z80 struct makes by holding its A/F/B/C
// etc as plain fields rather than indirecting through shared cells.
package bus

import (
	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/reg"
)

// Buses holds the 8-bit data bus and 16-bit address bus. Between
// instructions their contents are scratch and carry no persistent meaning.
type Buses struct {
	Data bits.Byte
	Addr bits.Word
}

// ReadToData copies a register's value onto the data bus.
func (b *Buses) ReadToData(f *reg.File, code reg.Code8) {
	b.Data = f.Read8(code)
}

// LoadFromData copies the data bus's value into a register.
func (b *Buses) LoadFromData(f *reg.File, code reg.Code8) {
	f.Load8(code, b.Data)
}

// Read16ToAddress copies a register pair's value onto the address bus.
func (b *Buses) Read16ToAddress(f *reg.File, pair reg.Code16) {
	b.Addr = f.Read16(pair)
}
