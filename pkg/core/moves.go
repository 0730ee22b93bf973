package core

import (
	"github.com/coreemu/i8080/pkg/reg"
)

// MoveRegToReg implements MOV dst,src: src → data bus → Tmp → data bus →
// dst. The Tmp bounce mirrors the 8080 microcode's latched scratch hop
// rather than a direct Go assignment between cells.
func (c *Console) MoveRegToReg(dst, src reg.Code8) {
	c.Buses.ReadToData(c.Regs, src)
	c.Buses.LoadFromData(c.Regs, reg.Tmp)
	c.Buses.ReadToData(c.Regs, reg.Tmp)
	c.Buses.LoadFromData(c.Regs, dst)
}

// MoveRegImmediate implements MVI dst,data: fetch the next byte, load it
// into dst.
func (c *Console) MoveRegImmediate(dst reg.Code8) {
	v := c.FetchInstruction()
	c.Regs.Load8(dst, v)
}

// MoveHLMemToReg implements MOV dst,M: address←HL, fetch, load into dst.
func (c *Console) MoveHLMemToReg(dst reg.Code8) {
	c.Buses.Read16ToAddress(c.Regs, reg.HL)
	c.Fetch()
	c.Buses.LoadFromData(c.Regs, dst)
}

// StoreRegToHLMem implements MOV M,src: src → data bus → Tmp → data bus,
// address←HL, store.
func (c *Console) StoreRegToHLMem(src reg.Code8) {
	c.Buses.ReadToData(c.Regs, src)
	c.Buses.LoadFromData(c.Regs, reg.Tmp)
	c.Buses.ReadToData(c.Regs, reg.Tmp)
	c.Buses.Read16ToAddress(c.Regs, reg.HL)
	c.Store()
}

// StoreHLImmediate implements MVI M,data: fetch the immediate into Tmp,
// route it to the data bus, address←HL, store.
func (c *Console) StoreHLImmediate() {
	v := c.FetchInstruction()
	c.Regs.Load8(reg.Tmp, v)
	c.Buses.ReadToData(c.Regs, reg.Tmp)
	c.Buses.Read16ToAddress(c.Regs, reg.HL)
	c.Store()
}

// fetchWZ fetches two instruction-stream bytes into W,Z: the first byte
// into Z (low), the second into W (high) — little-endian order, per the
// 8080's direct-addressing encoding.
func (c *Console) fetchWZ() {
	z := c.FetchInstruction()
	w := c.FetchInstruction()
	c.Regs.Load8(reg.Z, z)
	c.Regs.Load8(reg.W, w)
}

// MoveRegDirect implements LDA-style direct loads: fetch WZ, address←WZ,
// fetch, load into dst.
func (c *Console) MoveRegDirect(dst reg.Code8) {
	c.fetchWZ()
	c.Buses.Read16ToAddress(c.Regs, reg.WZ)
	c.Fetch()
	c.Buses.LoadFromData(c.Regs, dst)
}

// StoreRegDirect implements STA-style direct stores: fetch WZ,
// address←WZ, store from src.
func (c *Console) StoreRegDirect(src reg.Code8) {
	c.fetchWZ()
	c.Buses.Read16ToAddress(c.Regs, reg.WZ)
	c.Buses.ReadToData(c.Regs, src)
	c.Store()
}

// MoveReg16Direct implements LHLD-style direct 16-bit loads: fetch WZ,
// address←WZ, fetch into the pair's low half, increment WZ, address←WZ,
// fetch into the pair's high half — the manual's L-then-H order (see
// DESIGN.md Open Question #3).
func (c *Console) MoveReg16Direct(pair reg.Code16) {
	hi, lo := pair.Halves()

	c.fetchWZ()
	c.Buses.Read16ToAddress(c.Regs, reg.WZ)
	c.Fetch()
	c.Buses.LoadFromData(c.Regs, lo)

	c.Regs.Increment16(reg.WZ)
	c.Buses.Read16ToAddress(c.Regs, reg.WZ)
	c.Fetch()
	c.Buses.LoadFromData(c.Regs, hi)
}

// StoreReg16Direct implements SHLD-style direct 16-bit stores: symmetric
// with MoveReg16Direct, low half first then high half.
func (c *Console) StoreReg16Direct(pair reg.Code16) {
	hi, lo := pair.Halves()

	c.fetchWZ()
	c.Buses.Read16ToAddress(c.Regs, reg.WZ)
	c.Buses.ReadToData(c.Regs, lo)
	c.Store()

	c.Regs.Increment16(reg.WZ)
	c.Buses.Read16ToAddress(c.Regs, reg.WZ)
	c.Buses.ReadToData(c.Regs, hi)
	c.Store()
}

// MoveIndirect implements LDAX-style indirect loads: address←pair, fetch,
// load into dst.
func (c *Console) MoveIndirect(dst reg.Code8, pair reg.Code16) {
	c.Buses.Read16ToAddress(c.Regs, pair)
	c.Fetch()
	c.Buses.LoadFromData(c.Regs, dst)
}

// StoreIndirect implements STAX-style indirect stores: address←pair,
// store from src.
func (c *Console) StoreIndirect(src reg.Code8, pair reg.Code16) {
	c.Buses.Read16ToAddress(c.Regs, pair)
	c.Buses.ReadToData(c.Regs, src)
	c.Store()
}

// MoveReg16Immediate implements LXI pair,data16: fetch two bytes, high
// byte first into the pair's high half, then low byte into its low half.
func (c *Console) MoveReg16Immediate(pair reg.Code16) {
	hi, lo := pair.Halves()
	h := c.FetchInstruction()
	l := c.FetchInstruction()
	c.Regs.Load8(hi, h)
	c.Regs.Load8(lo, l)
}

// ExchangeHLDE implements XCHG: swap HL and DE.
func (c *Console) ExchangeHLDE() {
	c.Regs.Exchange16(reg.HL, reg.DE)
}

// ExchangeStackTopWithHL implements XTHL: swap HL with the word at the
// current stack top, in place.
func (c *Console) ExchangeStackTopWithHL() {
	c.Buses.Read16ToAddress(c.Regs, reg.SP)
	lowAddr := c.Buses.Addr
	c.Fetch()
	stackLow := c.Buses.Data

	c.Buses.Addr = lowAddr + 1
	c.Fetch()
	stackHigh := c.Buses.Data

	hlLow := c.Regs.Read8(reg.L)
	hlHigh := c.Regs.Read8(reg.H)

	c.Buses.Addr = lowAddr
	c.Buses.Data = hlLow
	c.Store()
	c.Buses.Addr = lowAddr + 1
	c.Buses.Data = hlHigh
	c.Store()

	c.Regs.Load8(reg.L, stackLow)
	c.Regs.Load8(reg.H, stackHigh)
}
