package io

import (
	"errors"

	"github.com/golmc/golmc/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeWrite = errors.New(f("tape is not writable"))
)
