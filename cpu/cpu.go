package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"ADDR_LIMIT":  fmt.Sprintf("%v", ADDR_LIMIT),
	"WORD_LIMIT":  fmt.Sprintf("%v", WORD_LIMIT),
	"OP_HLT":      fmt.Sprintf("%v", int(HLT)),
	"OP_ADD":      fmt.Sprintf("%v", int(ADD)),
	"OP_SUB":      fmt.Sprintf("%v", int(SUB)),
	"OP_STA":      fmt.Sprintf("%v", int(STA)),
	"OP_LDA":      fmt.Sprintf("%v", int(LDA)),
	"OP_BRA":      fmt.Sprintf("%v", int(BRA)),
	"OP_BRZ":      fmt.Sprintf("%v", int(BRZ)),
	"OP_INP":      fmt.Sprintf("%v", int(INP)),
	"OP_OUT":      fmt.Sprintf("%v", int(OUT)),
}

// Cpu is one Little Man Computer: a hundred-cell memory, a single
// accumulator, a program counter, and the inbox/outbox queues. All
// machine state lives behind the accessor methods, which enforce the
// value and address ranges on every access.
type Cpu struct {
	Verbose bool // If set, logs each executed instruction.

	memory      [MEMORY_SIZE]int
	accumulator int
	pc          int
	inbox       Queue
	outbox      Queue
	running     bool
}

// NewCpu creates a machine in its reset state, ready to run.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset returns every component to its initial state: memory zeroed,
// accumulator and program counter zero, both queues empty, and the
// machine running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.memory[:])
	cpu.accumulator = 0
	cpu.pc = 0
	cpu.inbox.Reset()
	cpu.outbox.Reset()
	cpu.running = true
}

// Load resets the machine, stores program at consecutive addresses
// from zero, and fills the inbox from input. Program words past the
// last address or outside the cell range are dropped by WriteMemory;
// the loader neither grows memory nor reports them.
func (cpu *Cpu) Load(program []int, input []int) {
	cpu.Reset()
	for addr, word := range program {
		cpu.WriteMemory(addr, word)
	}
	cpu.inbox.Replace(input)
}

// ReadMemory returns the value at addr, or zero when addr is outside
// the address range. It never fails.
func (cpu *Cpu) ReadMemory(addr int) (value int) {
	if addr >= 0 && addr <= ADDR_LIMIT {
		value = cpu.memory[addr]
	}

	return
}

// WriteMemory stores value at addr, and reports whether the write
// landed. A write with an out-of-range address or value is dropped and
// the cell keeps its prior value.
func (cpu *Cpu) WriteMemory(addr int, value int) (ok bool) {
	ok = addr >= 0 && addr <= ADDR_LIMIT && value >= 0 && value <= WORD_LIMIT
	if ok {
		cpu.memory[addr] = value
	}

	return
}

// ReadAccumulator returns the accumulator value.
func (cpu *Cpu) ReadAccumulator() int {
	return cpu.accumulator
}

// WriteAccumulator sets the accumulator, and reports whether the write
// landed. A value outside [0, WORD_LIMIT] is dropped and the prior
// value retained: the machine has no wraparound and no overflow flag.
func (cpu *Cpu) WriteAccumulator(value int) (ok bool) {
	ok = value >= 0 && value <= WORD_LIMIT
	if ok {
		cpu.accumulator = value
	}

	return
}

// ReadPC returns the program counter.
func (cpu *Cpu) ReadPC() int {
	return cpu.pc
}

// WritePC sets the program counter, and reports whether the write
// landed. A value outside the address range is dropped.
func (cpu *Cpu) WritePC(value int) (ok bool) {
	ok = value >= 0 && value <= ADDR_LIMIT
	if ok {
		cpu.pc = value
	}

	return
}

// DequeueInput removes and returns the oldest inbox value. An empty
// inbox yields zero; the machine never blocks on input.
func (cpu *Cpu) DequeueInput() (value int) {
	value, _ = cpu.inbox.Pop()

	return
}

// EnqueueInput appends a pending input value to the inbox.
func (cpu *Cpu) EnqueueInput(value int) {
	cpu.inbox.Push(value)
}

// EnqueueOutput appends value to the outbox. The outbox is unbounded
// and holds whatever OUT forwards from the accumulator.
func (cpu *Cpu) EnqueueOutput(value int) {
	cpu.outbox.Push(value)
}

// Inbox returns a copy of the pending input values, oldest first.
func (cpu *Cpu) Inbox() []int {
	return cpu.inbox.Values()
}

// Outbox returns a copy of the emitted output values, oldest first.
func (cpu *Cpu) Outbox() []int {
	return cpu.outbox.Values()
}

// Running reports whether the machine will execute further steps.
func (cpu *Cpu) Running() bool {
	return cpu.running
}

// Fetch reads the instruction word at the program counter and advances
// the counter. Advancing past the last address is dropped by WritePC,
// so a program that runs off the end refetches the final cell.
func (cpu *Cpu) Fetch() (word int) {
	pc := cpu.ReadPC()
	word = cpu.ReadMemory(pc)
	cpu.WritePC(pc + 1)

	return
}

// Execute applies one decoded instruction to the machine. Arithmetic
// past either end of the value range is dropped by WriteAccumulator,
// keeping the prior value. An op outside the instruction table is a
// no-op: the fetch's counter advance is its only effect.
func (cpu *Cpu) Execute(op Op, operand int) {
	switch op {
	case HLT:
		cpu.running = false
	case ADD:
		cpu.WriteAccumulator(cpu.ReadAccumulator() + cpu.ReadMemory(operand))
	case SUB:
		cpu.WriteAccumulator(cpu.ReadAccumulator() - cpu.ReadMemory(operand))
	case STA:
		cpu.WriteMemory(operand, cpu.ReadAccumulator())
	case LDA:
		cpu.WriteAccumulator(cpu.ReadMemory(operand))
	case BRA:
		cpu.WritePC(operand)
	case BRZ:
		if cpu.ReadAccumulator() == 0 {
			cpu.WritePC(operand)
		}
	case INP:
		cpu.WriteAccumulator(cpu.DequeueInput())
	case OUT:
		cpu.EnqueueOutput(cpu.ReadAccumulator())
	}
}

// Step runs one fetch, decode, execute cycle and reports whether a
// cycle ran. Once the machine has halted, Step does nothing and
// returns false.
func (cpu *Cpu) Step() (stepped bool) {
	if !cpu.running {
		return
	}

	pc := cpu.ReadPC()
	word := cpu.Fetch()
	if cpu.Verbose {
		log.Printf("%2d: %v", pc, Disassemble(word))
	}

	op, operand := Decode(word)
	cpu.Execute(op, operand)
	return true
}

// Run steps the machine until it halts. A program with no reachable
// HLT runs forever; callers needing bounded execution put a step
// budget around Step.
func (cpu *Cpu) Run() {
	for cpu.Step() {
	}
}
