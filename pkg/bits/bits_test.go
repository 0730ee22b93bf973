package bits

import "testing"

func TestHighLowJoinRoundTrip(t *testing.T) {
	for _, w := range []Word{0x0000, 0x1234, 0xFFFF, 0x00FF, 0xFF00} {
		hi, lo := HighLow(w)
		if got := JoinBytes(hi, lo); got != w {
			t.Errorf("JoinBytes(HighLow(%#04x)) = %#04x, want %#04x", w, got, w)
		}
	}
}

func TestPopcountAndParity(t *testing.T) {
	tests := []struct {
		b      Byte
		count  int
		parity bool
	}{
		{0x00, 0, true},
		{0x01, 1, false},
		{0xFF, 8, true},
		{0x0F, 4, true},
		{0x07, 3, false},
	}
	for _, tc := range tests {
		if got := Popcount(tc.b); got != tc.count {
			t.Errorf("Popcount(%#02x) = %d, want %d", tc.b, got, tc.count)
		}
		if got := EvenParity(tc.b); got != tc.parity {
			t.Errorf("EvenParity(%#02x) = %v, want %v", tc.b, got, tc.parity)
		}
	}
}

func TestReverseBitsInvolution(t *testing.T) {
	for b := 0; b < 256; b++ {
		v := Byte(b)
		if got := ReverseBits(ReverseBits(v)); got != v {
			t.Errorf("ReverseBits(ReverseBits(%#02x)) = %#02x, want %#02x", v, got, v)
		}
	}
	if ReverseBits(0b0000_0001) != 0b1000_0000 {
		t.Errorf("ReverseBits(0x01) = %#08b, want 0x80", ReverseBits(0x01))
	}
}

func TestSetBit(t *testing.T) {
	if got := SetBit(0x00, 3, true); got != 0x08 {
		t.Errorf("SetBit(0,3,true) = %#02x, want 0x08", got)
	}
	if got := SetBit(0xFF, 3, false); got != 0xF7 {
		t.Errorf("SetBit(0xFF,3,false) = %#02x, want 0xF7", got)
	}
}
