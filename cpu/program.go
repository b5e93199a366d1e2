package cpu

import (
	"iter"
)

// Opcode is one assembled source line: a single instruction word plus
// the source context that produced it.
type Opcode struct {
	LineNo    int      // Source line number, counting from 1.
	Addr      int      // Memory address the word loads at.
	Words     []string // Source tokens, after equate expansion.
	Word      int      // Assembled instruction word.
	LinkLabel string   // Label reference, resolved by the link pass.
}

// Program is an assembled program, ready to load at address zero.
type Program struct {
	Opcodes []Opcode
}

// Words iterates the (address, word) pairs of the program in load
// order.
func (prog *Program) Words() iter.Seq2[int, int] {
	return func(yield func(addr int, word int) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Addr, op.Word) {
				return
			}
		}
	}
}

// Image returns the loadable memory image, one word per consecutive
// address from zero.
func (prog *Program) Image() (image []int) {
	image = make([]int, 0, len(prog.Opcodes))
	for _, word := range prog.Words() {
		image = append(image, word)
	}

	return
}

// Debug returns the source record assembled at addr, or nil when the
// address holds no assembled word.
func (prog *Program) Debug(addr int) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Addr == addr {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}
