package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzExecute(f *testing.F) {
	f.Add(0, 0, 0)
	f.Add(700, 42, 3)
	f.Add(205, 12, 7)
	f.Add(950, 999, 11)
	f.Add(-250, 500, 13)
	f.Add(399, 0, 17)

	f.Fuzz(func(t *testing.T, word int, acc int, seed int) {
		assert := assert.New(t)

		mod := func(n int) int {
			return ((n % (WORD_LIMIT + 1)) + WORD_LIMIT + 1) % (WORD_LIMIT + 1)
		}

		cpu := NewCpu()
		program := make([]int, MEMORY_SIZE)
		for n := range program {
			program[n] = mod(seed + n*37)
		}
		cpu.Load(program, []int{mod(seed)})

		if acc >= 0 && acc <= WORD_LIMIT {
			assert.True(cpu.WriteAccumulator(acc))
		}

		outlen := len(cpu.Outbox())

		op, operand := Decode(word)
		cpu.Execute(op, operand)

		word_str := fmt.Sprintf("%v (%v %v) acc:%v seed:%v", word, op, operand, acc, seed)

		// The register and memory ranges hold after any instruction,
		// even one decoded from a word no assembler would emit.
		assert.GreaterOrEqual(cpu.ReadAccumulator(), 0, word_str)
		assert.LessOrEqual(cpu.ReadAccumulator(), WORD_LIMIT, word_str)
		assert.GreaterOrEqual(cpu.ReadPC(), 0, word_str)
		assert.LessOrEqual(cpu.ReadPC(), ADDR_LIMIT, word_str)
		for addr := range MEMORY_SIZE {
			value := cpu.ReadMemory(addr)
			assert.GreaterOrEqual(value, 0, "memory %v %v", addr, word_str)
			assert.LessOrEqual(value, WORD_LIMIT, "memory %v %v", addr, word_str)
		}

		// Only HLT stops the machine.
		assert.Equal(op != HLT, cpu.Running(), word_str)

		// Only OUT emits.
		wantlen := outlen
		if op == OUT {
			wantlen += 1
		}
		assert.Equal(wantlen, len(cpu.Outbox()), word_str)
	})
}

func FuzzAssemble(f *testing.F) {
	f.Add("LDA 5")
	f.Add("DAT 999")
	f.Add("HLT")
	f.Add("FOO 1")
	f.Add("LDA seven")
	f.Add("")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		word, err := Assemble(line)
		if err != nil {
			assert.Zero(word)
			return
		}

		// Anything that assembles is a loadable cell value, and
		// disassembles back to an equivalent line.
		assert.GreaterOrEqual(word, 0)
		assert.LessOrEqual(word, WORD_LIMIT)

		again, err := Assemble(Disassemble(word))
		assert.NoError(err)
		assert.Equal(word, again)
	})
}
