// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/golmc/golmc/cpu"
	"github.com/golmc/golmc/internal"
	"github.com/golmc/golmc/io"
)

const (
	STEP_LIMIT = 100000 // Default step budget for bounded runs
)

var _emulator_defines = map[string]string{
	"STEP_LIMIT": fmt.Sprintf("%v", STEP_LIMIT),
}

// Emulator state. Machine + program + tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose machine logging.
	*cpu.Cpu              // The machine itself.
	Program  *cpu.Program // The installed program.

	Tape io.Tape // Value tape bridging the inbox and outbox.

	input []int // Input image, replayed on Reset.
}

// NewEmulator creates an emulator with an empty program installed.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Tape.Defines(),
	)
}

// Load installs the program image and input values on a freshly reset
// machine. The input is retained, so a later Reset replays it.
func (emu *Emulator) Load(input []int) {
	emu.input = slices.Clone(input)
	emu.Reset()
}

// Reset reloads the installed program and its input from scratch.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Program.Image(), emu.input)
}

// Tick performs one machine step; done reports that the machine has
// halted.
func (emu *Emulator) Tick() (done bool) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Step()
	done = !emu.Running()

	return
}

// Run steps the machine until it halts, without any bound.
func (emu *Emulator) Run() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Run()
}

// RunSteps steps the machine at most limit times, returning
// ErrStepLimit when the budget is spent with the machine still
// running. Running a halted machine is a no-op.
func (emu *Emulator) RunSteps(limit int) (err error) {
	emu.Cpu.Verbose = emu.Verbose
	for range limit {
		if !emu.Step() {
			return
		}
	}
	if emu.Running() {
		err = ErrStepLimit{Limit: limit}
	}

	return
}

// LineNo returns the source line of the instruction at the program
// counter, or zero when no source maps there.
func (emu *Emulator) LineNo() (lineno int) {
	if op := emu.Program.Debug(emu.ReadPC()); op != nil {
		lineno = op.LineNo
	}

	return
}

// Dump renders the operator panel: the memory grid, the registers with
// the next instruction, and both queues.
func (emu *Emulator) Dump() string {
	var panel strings.Builder

	for addr := range cpu.MEMORY_SIZE {
		if addr > 0 && addr%10 == 0 {
			panel.WriteString("\n")
		}
		fmt.Fprintf(&panel, "%2d[%3d] ", addr, emu.ReadMemory(addr))
	}
	panel.WriteString("\n")

	next := cpu.Disassemble(emu.ReadMemory(emu.ReadPC()))
	fmt.Fprintf(&panel, "PC[%2d] Acc[%3d] %v\n", emu.ReadPC(), emu.ReadAccumulator(), next)
	fmt.Fprintf(&panel, "Inbox: %v\n", emu.Inbox())
	fmt.Fprintf(&panel, "Outbox: %v\n", emu.Outbox())

	return panel.String()
}

// Listing disassembles the memory range [start, end], one address per
// line.
func (emu *Emulator) Listing(start int, end int) string {
	var listing strings.Builder
	for addr := start; addr <= end; addr++ {
		fmt.Fprintf(&listing, "%2d: %v\n", addr, cpu.Disassemble(emu.ReadMemory(addr)))
	}
	return listing.String()
}

// SourceListing renders the installed program: each address, its
// assembled word, and the source tokens that produced it.
func (emu *Emulator) SourceListing() string {
	var listing strings.Builder
	for _, op := range emu.Program.Opcodes {
		fmt.Fprintf(&listing, "%2d: %03d  %v\n", op.Addr, op.Word, strings.Join(op.Words, " "))
	}
	return listing.String()
}
