package cpu

import (
	"strconv"
	"strings"
)

// Op is an instruction opcode, the hundreds digit of an instruction
// word.
type Op int

const (
	HLT = Op(0) // Halt the machine.
	ADD = Op(1) // Add memory[operand] to the accumulator.
	SUB = Op(2) // Subtract memory[operand] from the accumulator.
	STA = Op(3) // Store the accumulator at memory[operand].
	LDA = Op(4) // Load the accumulator from memory[operand].
	BRA = Op(5) // Branch to operand.
	BRZ = Op(6) // Branch to operand if the accumulator is zero.
	INP = Op(7) // Load the accumulator from the inbox.
	OUT = Op(8) // Append the accumulator to the outbox.
)

// datName is the pseudo-mnemonic for raw data cells. It has no opcode
// of its own; a DAT line stores its operand as a bare cell value.
const datName = "DAT"

// opName indexes mnemonics by opcode.
var opName = [...]string{
	HLT: "HLT",
	ADD: "ADD",
	SUB: "SUB",
	STA: "STA",
	LDA: "LDA",
	BRA: "BRA",
	BRZ: "BRZ",
	INP: "INP",
	OUT: "OUT",
}

// opOf maps mnemonics back to opcodes. Matching is case sensitive.
var opOf = map[string]Op{
	"HLT": HLT,
	"ADD": ADD,
	"SUB": SUB,
	"STA": STA,
	"LDA": LDA,
	"BRA": BRA,
	"BRZ": BRZ,
	"INP": INP,
	"OUT": OUT,
}

// Valid reports whether op is one of the nine machine opcodes.
func (op Op) Valid() bool {
	return op >= HLT && op <= OUT
}

func (op Op) String() string {
	if op.Valid() {
		return opName[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Decode splits an instruction word into its opcode and operand. It is
// a pure function: no machine state is read or changed. Raw data words
// decode to an Op that fails Valid.
func Decode(word int) (op Op, operand int) {
	return Op(word / 100), word % 100
}

// MakeWord combines an opcode and operand into an instruction word.
func MakeWord(op Op, operand int) int {
	return int(op)*100 + operand
}

// Assemble converts one "MNEMONIC" or "MNEMONIC OPERAND" line into an
// instruction word. The operand defaults to 0 when absent, and must be
// a decimal literal within the address range. DAT lines instead store
// their operand as a raw cell value, up to WORD_LIMIT.
func Assemble(line string) (word int, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		err = ErrMnemonicMissing
		return
	}
	if len(fields) > 2 {
		err = ErrOperandExtra
		return
	}

	var operand int
	if len(fields) == 2 {
		operand, err = parseOperand(fields[1])
		if err != nil {
			return
		}
	}

	if fields[0] == datName {
		if operand > WORD_LIMIT {
			err = ErrOperandRange
			return
		}
		word = operand
		return
	}

	op, ok := opOf[fields[0]]
	if !ok {
		err = ErrMnemonicUnknown(fields[0])
		return
	}
	if operand > ADDR_LIMIT {
		err = ErrOperandRange
		return
	}
	word = MakeWord(op, operand)
	return
}

// parseOperand parses a non-negative decimal operand literal.
func parseOperand(token string) (operand int, err error) {
	operand, aerr := strconv.Atoi(token)
	if aerr != nil {
		err = ErrOperandSyntax(token)
		return
	}
	if operand < 0 {
		err = ErrOperandRange
	}
	return
}

// Disassemble renders an instruction word as "MNEMONIC operand" text.
// Words without a machine opcode, raw data cells included, render as
// "DAT word", so a listing of arbitrary memory never fails.
func Disassemble(word int) string {
	if word >= 0 && word <= WORD_LIMIT {
		if op, operand := Decode(word); op.Valid() {
			return op.String() + " " + strconv.Itoa(operand)
		}
	}
	return datName + " " + strconv.Itoa(word)
}
