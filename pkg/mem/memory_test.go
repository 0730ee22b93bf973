package mem

import "testing"

func TestReadWrite(t *testing.T) {
	m := New()
	m.Write(0x1234, 0xAB)
	if got := m.Read(0x1234); got != 0xAB {
		t.Errorf("Read(0x1234) = %#02x, want 0xAB", got)
	}
}

func TestFlashNoWrap(t *testing.T) {
	m := New()
	prog := []byte{0x3E, 0x01, 0x76}
	m.Flash(prog, 0x0000)
	for i, b := range prog {
		if got := m.Read(uint16(i)); got != b {
			t.Errorf("Read(%d) = %#02x, want %#02x", i, got, b)
		}
	}
}

func TestFlashWraps(t *testing.T) {
	m := New()
	prog := []byte{0x11, 0x22, 0x33}
	m.Flash(prog, 0xFFFF)
	if got := m.Read(0xFFFF); got != 0x11 {
		t.Errorf("Read(0xFFFF) = %#02x, want 0x11", got)
	}
	if got := m.Read(0x0000); got != 0x22 {
		t.Errorf("Read(0x0000) = %#02x, want 0x22 (wrapped)", got)
	}
	if got := m.Read(0x0001); got != 0x33 {
		t.Errorf("Read(0x0001) = %#02x, want 0x33 (wrapped)", got)
	}
}

func TestFullAddressSpaceAddressable(t *testing.T) {
	m := New()
	m.Write(0x0000, 1)
	m.Write(0xFFFF, 2)
	if m.Read(0x0000) != 1 || m.Read(0xFFFF) != 2 {
		t.Fatal("boundary addresses not addressable")
	}
}
