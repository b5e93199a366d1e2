package cpu

import (
	"errors"

	"github.com/golmc/golmc/translate"
)

var f = translate.From

var (
	// Codec errors
	ErrMnemonicMissing = errors.New(f("mnemonic missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrOperandRange    = errors.New(f("operand out of range"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
)

type ErrMnemonicUnknown string

func (em ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic '%v'", string(em))
}

type ErrOperandSyntax string

func (eo ErrOperandSyntax) Error() string {
	return f("operand '%v' is not a number", string(eo))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
