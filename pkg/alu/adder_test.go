package alu

import (
	"testing"

	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/flags"
	"github.com/coreemu/i8080/internal/exhaustive"
)

func TestAdderConcreteScenarios(t *testing.T) {
	cases := []struct {
		name     string
		op       Adder
		lhs, rhs bits.Byte
		wantRes  bits.Byte
		wantSet  flags.Set
	}{
		{"10+3", NewAdder(), 10, 3, 13, flags.SetByResult(13)},
		{"103+191", NewAdder(), 103, 191, 38, flags.SetByResult(38).With(flags.Carry).With(flags.AuxiliaryCarry)},
		{"1+255", NewAdder(), 1, 255, 0, flags.SetByResult(0).With(flags.Carry).With(flags.AuxiliaryCarry)},
		{"0x19+0x28", NewAdder(), 0x19, 0x28, 0x41, flags.SetByResult(0x41).With(flags.AuxiliaryCarry)},
		{"subber 16-19", NewSubber(), 16, 19, 253, flags.SetByResult(253).With(flags.Carry).With(flags.AuxiliaryCarry)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, status := c.op.Apply(c.lhs, c.rhs)
			if res != c.wantRes {
				t.Fatalf("result = %#02x, want %#02x", res, c.wantRes)
			}
			if status != c.wantSet {
				t.Fatalf("status = %08b, want %08b", status, c.wantSet)
			}
		})
	}
}

func TestAdderWrapsModulo256(t *testing.T) {
	failures := exhaustive.Pairs(0, func(lhs, rhs byte) string {
		res, _ := NewAdder().Apply(lhs, rhs)
		want := bits.Byte(uint16(lhs) + uint16(rhs))
		if res != want {
			return "ADD did not wrap modulo 256"
		}
		return ""
	})
	if len(failures) != 0 {
		t.Fatalf("%d failures, first: %s", len(failures), failures[0])
	}
}

func TestSubberWrapsModulo256(t *testing.T) {
	failures := exhaustive.Pairs(0, func(lhs, rhs byte) string {
		res, _ := NewSubber().Apply(lhs, rhs)
		want := bits.Byte(uint16(lhs) - uint16(rhs) + 0x100)
		if res != want {
			return "SUB did not wrap modulo 256"
		}
		return ""
	})
	if len(failures) != 0 {
		t.Fatalf("%d failures, first: %s", len(failures), failures[0])
	}
}

func TestAdderCarryMatchesOverflow(t *testing.T) {
	failures := exhaustive.Pairs(0, func(lhs, rhs byte) string {
		_, status := NewAdder().Apply(lhs, rhs)
		want := uint16(lhs)+uint16(rhs) > 0xFF
		if status.Has(flags.Carry) != want {
			return "Carry did not match true-sum overflow"
		}
		return ""
	})
	if len(failures) != 0 {
		t.Fatalf("%d failures, first: %s", len(failures), failures[0])
	}
}

func TestSubberCarryMatchesBorrow(t *testing.T) {
	failures := exhaustive.Pairs(0, func(lhs, rhs byte) string {
		_, status := NewSubber().Apply(lhs, rhs)
		want := uint16(lhs) < uint16(rhs)
		if status.Has(flags.Carry) != want {
			return "Carry did not match borrow-out"
		}
		return ""
	})
	if len(failures) != 0 {
		t.Fatalf("%d failures, first: %s", len(failures), failures[0])
	}
}

func TestCarriedAdderAddsCarryIn(t *testing.T) {
	res, status := NewCarriedAdder().Apply(0xFD, 0x01)
	if res != 0xFF {
		t.Fatalf("ADC 0xFD+0x01+1 = %#02x, want 0xff", res)
	}
	if status.Has(flags.Carry) {
		t.Fatalf("ADC 0xFD+0x01+1 should not carry out, got %08b", status)
	}

	res, status = NewCarriedAdder().Apply(0xFF, 0x00)
	if res != 0x00 {
		t.Fatalf("ADC 0xFF+0x00+1 = %#02x, want 0x00", res)
	}
	if !status.Has(flags.Carry) {
		t.Fatalf("ADC 0xFF+0x00+1 should carry out, got %08b", status)
	}
}

func TestBorrowedSubberSubtractsBorrowIn(t *testing.T) {
	res, status := NewBorrowedSubber().Apply(0x05, 0x05)
	if res != 0xFF {
		t.Fatalf("SBB 0x05-0x05-1 = %#02x, want 0xff", res)
	}
	if !status.Has(flags.Carry) {
		t.Fatalf("SBB 0x05-0x05-1 should borrow, got %08b", status)
	}

	res, status = NewBorrowedSubber().Apply(0x05, 0x04)
	if res != 0x00 {
		t.Fatalf("SBB 0x05-0x04-1 = %#02x, want 0x00", res)
	}
	if status.Has(flags.Carry) {
		t.Fatalf("SBB 0x05-0x04-1 should not borrow, got %08b", status)
	}
}
