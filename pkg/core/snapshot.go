package core

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/coreemu/i8080/pkg/reg"
)

// Snapshot is a gob-encodable capture of everything that makes a Console
// run reproducible: the full register file, the memory image, and the
// halted flag. Adapted from the teacher's pkg/result.Checkpoint, which
// used encoding/gob to save/resume a long-running search; here the same
// technique saves/resumes a long-running program instead.
type Snapshot struct {
	Registers [16]byte // indexed by reg.Code8
	Memory    []byte   // full 65536-byte image
	Halted    bool
}

func init() {
	gob.Register(Snapshot{})
}

// Snapshot captures the Console's current state.
func (c *Console) Snapshot() Snapshot {
	var regs [16]byte
	for code := reg.Acc; int(code) < len(regs); code++ {
		regs[code] = c.Regs.Read8(code)
	}

	mem := make([]byte, 1<<16)
	for addr := 0; addr < len(mem); addr++ {
		mem[addr] = c.Mem.Read(uint16(addr))
	}

	return Snapshot{Registers: regs, Memory: mem, Halted: c.Halted}
}

// Restore overwrites the Console's register file, memory and halted flag
// from a previously captured Snapshot. The buses are left untouched —
// like the spec's own invariant, they carry no persistent meaning between
// instructions, so a snapshot taken between instructions never needs to
// record them.
func (c *Console) Restore(s Snapshot) {
	for code := reg.Acc; int(code) < len(s.Registers); code++ {
		c.Regs.Load8(code, s.Registers[code])
	}
	for addr := 0; addr < len(s.Memory) && addr < (1<<16); addr++ {
		c.Mem.Write(uint16(addr), s.Memory[addr])
	}
	c.Halted = s.Halted
}

// SaveSnapshot writes a Console's state to path.
func SaveSnapshot(path string, c *Console) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("core: save snapshot: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(c.Snapshot()); err != nil {
		return fmt.Errorf("core: encode snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot from path and restores it into c.
func LoadSnapshot(path string, c *Console) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("core: load snapshot: %w", err)
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return fmt.Errorf("core: decode snapshot: %w", err)
	}
	c.Restore(s)
	return nil
}
