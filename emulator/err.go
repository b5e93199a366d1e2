package emulator

import (
	"github.com/golmc/golmc/translate"
)

var f = translate.From

// ErrStepLimit reports a bounded run that spent its whole step budget
// with the machine still running.
type ErrStepLimit struct {
	Limit int
}

func (err ErrStepLimit) Error() string {
	return f("no halt within %d steps", err.Limit)
}
