package gear

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidParameter is returned when gear or profile parameters are out of range.
	ErrInvalidParameter = errors.New("invalid gear parameter")
	// ErrDegenerate is returned when valid parameters yield geometry which
	// can not be drawn, such as a non-positive radius or overlapping flanks.
	// The usual cause is flanks crossing near the base circle, which leaves
	// the root arc with a negative sweep. This happens for many teeth at
	// larger pressure angles or kerf, e.g. 100 teeth at 25° or 60 teeth at
	// 20° with kerf 1/128.
	ErrDegenerate = errors.New("degenerate gear geometry")
)

// errMsg returns an error wrapping err annotated with the calling function
// name and line number.
func errMsg(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s: %w", msg, err)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s: %w", fn.Name(), line, msg, err)
}
