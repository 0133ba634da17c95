package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for out-of-range calendar inputs.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidMonth(month int) error {
	return fmt.Errorf("%w: month %d (expected 1..12)", ErrInvalidArgument, month)
}

func validMonth(month int) bool {
	return month >= 1 && month <= 12
}
