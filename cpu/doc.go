// Package cpu implements the Little Man Computer: a single-accumulator
// machine with one hundred decimal memory cells, a program counter, and
// unbounded inbox/outbox value queues.
//
// An instruction word is a value from 0 to 999. Its hundreds digit
// selects one of nine opcodes, and the remaining two digits address a
// memory cell. The Assemble/Disassemble pair translates between that
// encoding and mnemonic text, and Assembler builds whole program images
// from source files with labels, equates, and compile-time expressions.
//
// Out-of-range register and memory writes are dropped, retaining the
// prior value; the machine has no overflow indicator. Reading the inbox
// with no pending input yields zero.
package cpu
