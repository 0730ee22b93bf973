// Package mem implements the 8080's 64 KiB byte-addressable memory: plain
// array storage with the two verbs the CPU is allowed to touch it through
// (Fetch/Store are wired at the Buses level, see pkg/core) plus the bulk
// Flash helper used to load a program image.
package mem

import "github.com/coreemu/i8080/pkg/bits"

// Size is the full 8080 address space: 65536 bytes.
const Size = 1 << 16

// Memory is a flat 64 KiB byte array addressed by a 16-bit word. Bounds
// are structurally impossible: every address is a bits.Word, and the
// backing array is exactly Size bytes, so Read/Write never need a bounds
// check or an error return.
type Memory struct {
	data [Size]bits.Byte
}

// New returns a zeroed 64 KiB memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr.
func (m *Memory) Read(addr bits.Word) bits.Byte {
	return m.data[addr]
}

// Write stores v at addr.
func (m *Memory) Write(addr bits.Word, v bits.Byte) {
	m.data[addr] = v
}

// Flash copies program into memory starting at offset, wrapping addresses
// modulo 65536. Out-of-scope collaborators (loaders, the host CLI) use
// this to seed a program image through Console.Flash; instruction
// execution never calls it.
func (m *Memory) Flash(program []byte, offset bits.Word) {
	for i, b := range program {
		addr := bits.Word((int(offset) + i) % Size)
		m.data[addr] = b
	}
}
