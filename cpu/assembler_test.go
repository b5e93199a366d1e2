package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("100", asm.Equate["MEMORY_SIZE"])
	assert.Equal("99", asm.Equate["ADDR_LIMIT"])
	assert.Equal("999", asm.Equate["WORD_LIMIT"])
	assert.Equal("8", asm.Equate["OP_OUT"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; add two numbers",
		"",
		"\tLDA a",
		"\tADD b ; second operand",
		"\tOUT",
		"\tHLT",
		"a: DAT 3",
		"b: DAT 4",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]int{404, 105, 800, 0, 3, 4}, prog.Image())
	assert.Equal(4, asm.Label["a"])
	assert.Equal(5, asm.Label["b"])

	op := prog.Debug(0)
	assert.NotNil(op)
	assert.Equal(3, op.LineNo)
	assert.Equal([]string{"LDA", "a"}, op.Words)
	assert.Equal("a", op.LinkLabel)
	assert.Equal(404, op.Word)

	assert.Nil(prog.Debug(6))
	assert.Nil(prog.Debug(-1))
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"start:",
		"\tINP",
		"loop: BRZ done",
		"\tOUT",
		"\tSUB one",
		"\tBRA loop",
		"done: HLT",
		"one: DAT 1",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]int{700, 605, 800, 206, 501, 0, 1}, prog.Image())
	assert.Equal(0, asm.Label["start"])
	assert.Equal(1, asm.Label["loop"])
	assert.Equal(5, asm.Label["done"])
	assert.Equal(6, asm.Label["one"])
}

func TestAssemblerEquates(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".equ one 1",
		".equ count 3",
		"\tLDA count",
		"\tSUB one",
		"\tSTA $(MEMORY_SIZE - 1)",
		"\tDAT $(OP_LDA * 100 + count)",
		"\tDAT LINENO",
		"\tHLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]int{403, 201, 399, 403, 7, 0}, prog.Image())
	assert.Equal("1", asm.Equate["one"])
	assert.Equal("3", asm.Equate["count"])
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("START", "7")

	prog, err := asm.Parse(strings.NewReader("\tBRA START"))
	assert.NoError(err)

	assert.Equal([]int{507}, prog.Image())
	assert.Equal("7", asm.Equate["START"])
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("a: DAT 1"))
	assert.NoError(err)

	// A second parse starts from scratch.
	prog, err := asm.Parse(strings.NewReader("b: DAT 2\n\tLDA b"))
	assert.NoError(err)
	assert.NotContains(asm.Label, "a")
	assert.Equal([]int{2, 400}, prog.Image())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"\tFOO 1", 1, ErrMnemonicUnknown("FOO")},
		{"\tlda 7", 1, ErrMnemonicUnknown("lda")},
		{"\tLDA 100", 1, ErrOperandRange},
		{"\tLDA -1", 1, ErrOperandRange},
		{"\tLDA 1 2", 1, ErrOperandExtra},
		{"\tDAT 1000", 1, ErrOperandRange},
		{".equ broken", 1, ErrEquateSyntax},
		{".equ a 1\n.equ a 2\n", 2, ErrEquateDuplicate},
		{".equ MEMORY_SIZE 64", 1, ErrEquateDuplicate},
		{"a: DAT 1\na: DAT 2\n", 2, ErrLabelDuplicate},
		{"\tBRA nowhere", 1, ErrLabelMissing("nowhere")},
		{"\tHLT\n\tBRA nowhere\n", 2, ErrLabelMissing("nowhere")},
		{"\tDAT $(1 // 0)", 1, nil},
		{"\tDAT $('a')", 1, ErrExpression("'a'")},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.prog)
		}
	}
}
