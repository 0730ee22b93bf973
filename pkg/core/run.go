package core

// Run clears Halted and executes instructions until HLT sets it, or until
// an instruction returns an error (an IN/OUT port failure — the only
// error Execute ever produces). The core has no cancellation primitive of
// its own (§5) — an embedder that wants to cap runtime steps Execute
// itself in a loop instead of calling Run, checking whatever external
// condition it needs between calls.
func (c *Console) Run() error {
	c.Halted = false
	for !c.Halted {
		if err := c.Execute(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes exactly one instruction and reports whether the machine
// is now halted, or the error an IN/OUT port failure produced. It is
// Execute under a name that reads naturally from a step-limited or
// single-stepping host loop.
func (c *Console) Step() (bool, error) {
	if err := c.Execute(); err != nil {
		return c.Halted, err
	}
	return c.Halted, nil
}
