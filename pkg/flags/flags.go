// Package flags implements the 8080 status-flag set and its bit-exact
// mapping onto the F register byte, following the same precomputed-table
// idiom the teacher's Z80 flag tables use (pkg/cpu/flags.go in the
// retrieval pack), but over the 8080's own flag layout: S Z 0 A 0 P 1 C.
package flags

import "github.com/coreemu/i8080/pkg/bits"

// StatusFlag identifies a single 8080 status flag. Each constant is already
// the bit position it occupies in the F register, so Set (a bitset of
// StatusFlag values) and the F-register byte share a representation and
// scramble/collect become trivial masks rather than a translation table.
type StatusFlag uint8

const (
	Carry          StatusFlag = 1 << 0
	Parity         StatusFlag = 1 << 2
	AuxiliaryCarry StatusFlag = 1 << 4
	Zero           StatusFlag = 1 << 6
	Sign           StatusFlag = 1 << 7

	// Overflow appears on the surface of some intermediate 8080 designs but
	// is not an 8080 flag: no ALU operation in this core ever adds it to a
	// Set, and flagDecode has no entry for it. Reserved for API symmetry
	// with chips (Z80) that do define it.
	Overflow StatusFlag = 0
)

// constBit is the F register bit that is always 1, regardless of ALU result.
const constBit = 1 << 1

// knownMask covers every bit scramble/collect actually round-trips.
const knownMask = byte(Carry | Parity | AuxiliaryCarry | Zero | Sign)

// Set is a set of StatusFlag values, represented as a bitset over the same
// bit positions as the F register.
type Set uint8

// Flags in canonical (manual) iteration order, MSB to LSB.
var canonicalOrder = []StatusFlag{Sign, Zero, AuxiliaryCarry, Parity, Carry}

// Union returns the set of flags present in s or o.
func (s Set) Union(o Set) Set { return s | o }

// Intersection returns the set of flags present in both s and o.
func (s Set) Intersection(o Set) Set { return s & o }

// SymmetricDifference returns the set of flags present in exactly one of s, o.
func (s Set) SymmetricDifference(o Set) Set { return s ^ o }

// Complement returns the set of known flags absent from s.
func (s Set) Complement() Set { return Set(knownMask) &^ s }

// With returns s with f added.
func (s Set) With(f StatusFlag) Set { return s | Set(f) }

// Without returns s with f removed.
func (s Set) Without(f StatusFlag) Set { return s &^ Set(f) }

// Has reports whether f is a member of s.
func (s Set) Has(f StatusFlag) bool { return f != 0 && s&Set(f) != 0 }

// Flags returns the members of s in canonical (manual) order. Set equality
// never depends on this order — it exists only for display/iteration.
func (s Set) Flags() []StatusFlag {
	out := make([]StatusFlag, 0, len(canonicalOrder))
	for _, f := range canonicalOrder {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// flagDecode is the one-to-one flag->byte-mask mapping named by the spec.
func flagDecode(f StatusFlag) byte {
	return byte(f)
}

// Scramble encodes a Set into the 8080 F register byte: the constant bit 1
// is always set, and bits 3/5 are always clear because no known flag ever
// occupies them.
func Scramble(s Set) byte {
	return byte(s)&knownMask | constBit
}

// Collect decodes an F register byte back into a Set, keeping only the bits
// that match a known flag mask.
func Collect(b byte) Set {
	return Set(b) & Set(knownMask)
}

// byResultTable[r] is set_by_result(r) precomputed for every byte value,
// mirroring the teacher's init()-populated Sz53Table/parityTable pattern.
var byResultTable [256]Set

func init() {
	for i := 0; i < 256; i++ {
		r := bits.Byte(i)
		var s Set
		if r == 0 {
			s = s.With(Zero)
		}
		if r >= 0x80 {
			s = s.With(Sign)
		}
		if bits.EvenParity(r) {
			s = s.With(Parity)
		}
		byResultTable[i] = s
	}
}

// SetByResult returns {Zero if r==0} ∪ {Sign if r>=0x80} ∪ {Parity if
// popcount(r) is even}, as used by every ALU operation that derives flags
// from its result byte.
func SetByResult(r bits.Byte) Set {
	return byResultTable[r]
}
