// Package io provides value I/O for the Little Man Computer emulator.
// A Tape reads whitespace separated decimal values from a reader into
// the inbox, and writes outbox values to a writer, one per line.
package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
)

// Tape provides sequential value I/O for the machine's queues. It wraps
// an io.Reader for input and an io.Writer for output, either of which
// may be nil for a disconnected end.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

// Defines returns an iter of defines for the tape.
func (tp *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Receive yields decimal values from Input, stopping at end of input
// or at the first token that is not a value.
func (tp *Tape) Receive() iter.Seq[int] {
	return func(yield func(value int) bool) {
		if tp.Input == nil {
			return
		}
		if tp.scanner == nil {
			tp.scanner = bufio.NewScanner(tp.Input)
			tp.scanner.Split(bufio.ScanWords)
		}
		for tp.scanner.Scan() {
			value, err := strconv.Atoi(tp.scanner.Text())
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// ReadValues collects every remaining input value.
func (tp *Tape) ReadValues() (values []int) {
	for value := range tp.Receive() {
		values = append(values, value)
	}

	return
}

// Send writes one value to Output, on its own line.
func (tp *Tape) Send(value int) (err error) {
	if tp.Output == nil {
		err = ErrTapeWrite
		return
	}
	_, err = fmt.Fprintln(tp.Output, value)

	return
}

// SendAll writes values in order, one per line.
func (tp *Tape) SendAll(values []int) (err error) {
	for _, value := range values {
		err = tp.Send(value)
		if err != nil {
			return
		}
	}

	return
}
