// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler builds a Program from Little Man Computer source. Each
// source line holds at most one instruction, optionally preceded by
// label definitions ("name:") and followed by a ';' comment. Operands
// are decimal literals or label references, ".equ NAME VALUE" lines
// define equates, and $() spans evaluate as compile-time expressions
// over the integer equates.
type Assembler struct {
	Verbose bool     // If set, logs each line as it assembles.
	Opcode  []Opcode // Assembled records, in address order.

	predefine map[string]string // Equates from the embedding system.
	Label     map[string]int    // Map of labels to memory addresses.
	Equate    map[string]string // Map of equates.
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Predefine adds an equate definition before parsing, overriding the
// machine defines.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// addr is the next memory address to assemble into.
func (asm *Assembler) addr() int {
	return len(asm.Opcode)
}

// parenEval does one compile-time $() evaluation. The integer equates
// are in scope as variables; the result must itself be an integer.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	predefined := starlark.StringDict{}
	for equ, str := range asm.Equate {
		num, aerr := strconv.Atoi(str)
		if aerr != nil {
			continue
		}
		predefined[equ] = starlark.MakeInt(num)
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, "equate", "rc = "+expr+"\n", predefined)
	if err != nil {
		return
	}

	num, ok := globals["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	value64, ok := num.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}

	value = int(value64)
	return
}

// parseLine expands one source line into codec tokens: $() spans are
// evaluated, .equ lines consumed, equates substituted, and label
// definitions recorded against the next address.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, eerr := asm.parenEval(str[2 : len(str)-1])
		if eerr != nil {
			err = eerr
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ NAME VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		if _, ok := asm.Equate[words[1]]; ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		if equate, ok := asm.Equate[word]; ok {
			words[n] = equate
		}
	}

	// Label definitions prefix the instruction, and may stack.
	for strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if _, ok := asm.Label[label]; ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.addr()
		words = words[1:]
		if len(words) == 0 {
			break
		}
	}

	return
}

// parseWords assembles one expanded line into an instruction word.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	opcode := Opcode{
		LineNo: lineno,
		Addr:   asm.addr(),
		Words:  slices.Clone(words),
	}

	if len(words) > 2 {
		err = ErrOperandExtra
		return
	}

	// A non-numeric operand is a label reference, resolved by the link
	// pass; until then the word assembles with a zero operand.
	line := words[0]
	if len(words) == 2 {
		if _, aerr := strconv.Atoi(words[1]); aerr == nil {
			line = words[0] + " " + words[1]
		} else {
			opcode.LinkLabel = words[1]
		}
	}

	opcode.Word, err = Assemble(line)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%2d: %03d %v", opcode.Addr, opcode.Word, strings.Join(opcode.Words, " "))
	}

	asm.Opcode = append(asm.Opcode, opcode)
	return
}

// Parse assembles a source stream into a Program. Every call starts
// fresh: the equates reset to the machine defines plus any Predefine
// values, and prior labels and opcodes are discarded.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Label = map[string]int{}
	asm.Equate = maps.Clone(_cpu_defines)
	asm.Equate["LINENO"] = "0"
	for equ, value := range asm.predefine {
		asm.Equate[equ] = value
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		text, _, _ = strings.Cut(text, ";")
		line = strings.TrimSpace(text)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	// Resolve label references, now that every label is known.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]
		if len(op.LinkLabel) == 0 {
			continue
		}

		lineno = op.LineNo
		line = strings.Join(op.Words, " ")

		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		if addr > ADDR_LIMIT {
			err = ErrOperandRange
			return
		}

		if op.Words[0] == datName {
			op.Word = addr
		} else {
			vop, _ := Decode(op.Word)
			op.Word = MakeWord(vop, addr)
		}
	}

	prog = &Program{Opcodes: slices.Clone(asm.Opcode)}
	return
}
