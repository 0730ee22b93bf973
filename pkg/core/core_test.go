package core

import (
	"testing"

	"github.com/coreemu/i8080/pkg/flags"
	"github.com/coreemu/i8080/pkg/reg"
)

// assemble is a tiny helper for writing concrete-scenario programs
// inline, byte by byte, the way the teacher's own exec_test.go builds
// small instruction sequences by hand rather than via a real assembler.
func assemble(bytes ...byte) []byte { return bytes }

func newTestConsole() *Console {
	return NewConsole(nil, nil)
}

func TestLxiMovStaHltScenario(t *testing.T) {
	// LXI B, 0x1234; MOV A,B; STA 0x0010; HLT
	prog := assemble(
		0x01, 0x12, 0x34, // LXI B,0x1234 (high byte first)
		0x78,             // MOV A,B
		0x32, 0x10, 0x00, // STA 0x0010
		0x76, // HLT
	)
	c := newTestConsole()
	c.Flash(prog, 0)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := c.Mem.Read(0x0010); got != 0x12 {
		t.Fatalf("memory[0x0010] = %#02x, want 0x12", got)
	}
	if !c.Halted {
		t.Fatalf("console should be halted after HLT")
	}
}

func TestMviAdiHltScenario(t *testing.T) {
	// MVI A, 0x3C; ADI 0xC4; HLT
	prog := assemble(
		0x3E, 0x3C, // MVI A,0x3c
		0xC6, 0xC4, // ADI 0xc4
		0x76, // HLT
	)
	c := newTestConsole()
	c.Flash(prog, 0)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := c.Regs.Read8(reg.Acc); got != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", got)
	}
	f := flags.Collect(c.Regs.Read8(reg.Flag))
	for _, want := range []flags.StatusFlag{flags.Carry, flags.Zero, flags.Parity, flags.AuxiliaryCarry} {
		if !f.Has(want) {
			t.Fatalf("flags %08b missing expected flag %v", f, want)
		}
	}
}

func TestCallThenRetRestoresPC(t *testing.T) {
	// At 0x0000: CALL 0x0100; HLT (0x0003 is the return address)
	// At 0x0100: RET
	prog := make([]byte, 0x0101)
	prog[0x0000] = 0xCD
	prog[0x0001] = 0x00
	prog[0x0002] = 0x01
	prog[0x0003] = 0x76 // HLT, landed on after RET
	prog[0x0100] = 0xC9 // RET

	c := newTestConsole()
	c.Flash(prog, 0)
	c.Regs.Load16(reg.SP, 0xFFFE)

	if err := c.Execute(); err != nil { // CALL 0x0100
		t.Fatalf("Execute: %v", err)
	}
	if pc := c.Regs.Read16(reg.PC); pc != 0x0100 {
		t.Fatalf("PC after CALL = %#04x, want 0x0100", pc)
	}
	if sp := c.Regs.Read16(reg.SP); sp != 0xFFFC {
		t.Fatalf("SP after CALL = %#04x, want 0xfffc", sp)
	}

	if err := c.Execute(); err != nil { // RET
		t.Fatalf("Execute: %v", err)
	}
	if pc := c.Regs.Read16(reg.PC); pc != 0x0003 {
		t.Fatalf("PC after RET = %#04x, want 0x0003", pc)
	}
	if sp := c.Regs.Read16(reg.SP); sp != 0xFFFE {
		t.Fatalf("SP after RET = %#04x, want 0xfffe", sp)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c := newTestConsole()
	c.Regs.Load16(reg.SP, 0x2000)
	c.Regs.Load16(reg.BC, 0xBEEF)

	c.PushReg16(reg.BC)
	c.Regs.Load16(reg.BC, 0)
	c.PopReg16(reg.BC)

	if got := c.Regs.Read16(reg.BC); got != 0xBEEF {
		t.Fatalf("BC after push/pop = %#04x, want 0xbeef", got)
	}
	if sp := c.Regs.Read16(reg.SP); sp != 0x2000 {
		t.Fatalf("SP after push/pop = %#04x, want 0x2000 (balanced)", sp)
	}
}

func TestPopOrderMatchesManualLowThenHigh(t *testing.T) {
	c := newTestConsole()
	c.Regs.Load16(reg.SP, 0x2000)
	c.Mem.Write(0x2000, 0x34) // low byte popped first
	c.Mem.Write(0x2001, 0x12) // high byte popped second

	c.PopReg16(reg.HL)

	if got := c.Regs.Read16(reg.HL); got != 0x1234 {
		t.Fatalf("HL after POP = %#04x, want 0x1234", got)
	}
	if sp := c.Regs.Read16(reg.SP); sp != 0x2002 {
		t.Fatalf("SP after POP = %#04x, want 0x2002", sp)
	}
}

func TestDoubleAddSetsCarryOnOverflow(t *testing.T) {
	c := newTestConsole()
	c.Regs.Load16(reg.HL, 0xFFFF)
	c.Regs.Load16(reg.BC, 0x0002)

	c.DoubleAdd(reg.BC)

	if got := c.Regs.Read16(reg.HL); got != 0x0001 {
		t.Fatalf("HL after DAD overflow = %#04x, want 0x0001", got)
	}
	if !flags.Collect(c.Regs.Read8(reg.Flag)).Has(flags.Carry) {
		t.Fatalf("DAD overflow should set Carry")
	}
}

func TestConditionalJumpNotTakenStillConsumesOperand(t *testing.T) {
	prog := assemble(
		0xC2, 0x00, 0x01, // JNZ 0x0100
		0x76, // HLT
	)
	c := newTestConsole()
	c.Flash(prog, 0)
	c.Regs.Load8(reg.Flag, flags.Scramble(flags.Set(0).With(flags.Zero))) // Z set => JNZ not taken

	if err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pc := c.Regs.Read16(reg.PC); pc != 0x0003 {
		t.Fatalf("PC after not-taken JNZ = %#04x, want 0x0003", pc)
	}
}

func TestRestartPushesReturnAddressAndJumps(t *testing.T) {
	c := newTestConsole()
	c.Regs.Load16(reg.SP, 0x2000)
	c.Regs.Load16(reg.PC, 0x0050)

	c.Restart(3)

	if pc := c.Regs.Read16(reg.PC); pc != 0x18 {
		t.Fatalf("PC after RST 3 = %#04x, want 0x0018", pc)
	}
	if sp := c.Regs.Read16(reg.SP); sp != 0x1FFE {
		t.Fatalf("SP after RST = %#04x, want 0x1ffe", sp)
	}
	if c.Mem.Read(0x1FFE) != 0x50 || c.Mem.Read(0x1FFF) != 0x00 {
		t.Fatalf("pushed return address bytes wrong")
	}
}

func TestXchgSwapsHLAndDE(t *testing.T) {
	c := newTestConsole()
	c.Regs.Load16(reg.HL, 0x1122)
	c.Regs.Load16(reg.DE, 0x3344)

	c.ExchangeHLDE()

	if got := c.Regs.Read16(reg.HL); got != 0x3344 {
		t.Fatalf("HL after XCHG = %#04x, want 0x3344", got)
	}
	if got := c.Regs.Read16(reg.DE); got != 0x1122 {
		t.Fatalf("DE after XCHG = %#04x, want 0x1122", got)
	}
}
