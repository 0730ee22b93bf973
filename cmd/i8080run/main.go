// Command i8080run is the host binary around the i8080 core: it flashes a
// program image into memory, runs it (optionally up to a step limit), and routes the
// IN/OUT opcodes to the process's stdio. Built as a spf13/cobra command
// tree the same way the teacher's cmd/z80opt/main.go is, right down to
// plain fmt.Printf/os.Stderr diagnostics rather than a logging library.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreemu/i8080/pkg/bits"
	"github.com/coreemu/i8080/pkg/core"
	"github.com/coreemu/i8080/pkg/reg"
)

// stdioPorts routes every IN to stdin and every OUT to stdout, ignoring
// the port number — the core treats port routing as strictly an external
// concern (§6).
type stdioPorts struct {
	in  *bufio.Reader
	out *bufio.Writer
}

func (p *stdioPorts) ReadPort(_ bits.Byte) (bits.Byte, error) {
	return p.in.ReadByte()
}

func (p *stdioPorts) WritePort(_ bits.Byte, v bits.Byte) error {
	defer p.out.Flush()
	return p.out.WriteByte(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i8080run",
		Short: "Run Intel 8080 programs against the i8080 core",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var loadAddr uint16
	var startPC uint16
	var maxSteps int
	var snapshotOut string
	var resumeFrom string

	cmd := &cobra.Command{
		Use:   "run [program]",
		Short: "Flash a binary image into memory and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("i8080run: read program: %w", err)
			}

			ports := &stdioPorts{in: bufio.NewReader(os.Stdin), out: bufio.NewWriter(os.Stdout)}
			c := core.NewConsole(ports, ports)

			if resumeFrom != "" {
				if err := core.LoadSnapshot(resumeFrom, c); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "i8080run: resumed from %s\n", resumeFrom)
			}

			c.Flash(program, loadAddr)
			if cmd.Flags().Changed("start-pc") {
				c.Regs.Load16(reg.PC, startPC)
			} else if resumeFrom == "" {
				c.Regs.Load16(reg.PC, loadAddr)
			}

			steps := 0
			c.Halted = false
			for !c.Halted {
				if maxSteps > 0 && steps >= maxSteps {
					fmt.Fprintf(os.Stderr, "i8080run: step limit %d reached, stopping\n", maxSteps)
					break
				}
				if err := c.Execute(); err != nil {
					fmt.Fprintf(os.Stderr, "i8080run: stopped after %d steps, halted=%v, PC=%#04x\n",
						steps, c.Halted, c.Regs.Read16(reg.PC))
					return err
				}
				steps++
			}

			fmt.Fprintf(os.Stderr, "i8080run: stopped after %d steps, halted=%v, PC=%#04x\n",
				steps, c.Halted, c.Regs.Read16(reg.PC))

			if snapshotOut != "" {
				if err := core.SaveSnapshot(snapshotOut, c); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "i8080run: snapshot written to %s\n", snapshotOut)
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0, "Memory address to flash the program at")
	cmd.Flags().Uint16Var(&startPC, "start-pc", 0, "Initial PC (defaults to load-addr if unset, or to the snapshot's PC with --resume)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Maximum instructions to execute (0 = unlimited)")
	cmd.Flags().StringVar(&snapshotOut, "snapshot", "", "Write a resumable snapshot to this path on exit")
	cmd.Flags().StringVar(&resumeFrom, "resume", "", "Resume execution from a previously saved snapshot")
	return cmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [snapshot]",
		Short: "Print register state from a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := core.NewConsole(nil, nil)
			if err := core.LoadSnapshot(args[0], c); err != nil {
				return err
			}
			fmt.Printf("A=%#02x F=%#02x BC=%#04x DE=%#04x HL=%#04x SP=%#04x PC=%#04x halted=%v\n",
				c.Regs.Read8(reg.Acc), c.Regs.Read8(reg.Flag),
				c.Regs.Read16(reg.BC), c.Regs.Read16(reg.DE), c.Regs.Read16(reg.HL),
				c.Regs.Read16(reg.SP), c.Regs.Read16(reg.PC), c.Halted)
			return nil
		},
	}
	return cmd
}
