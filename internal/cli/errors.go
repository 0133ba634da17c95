package cli

import "fmt"

type usageError struct {
	flag string
	err  error
}

func (e usageError) Error() string {
	return fmt.Sprintf("%s: %v", e.flag, e.err)
}

func (e usageError) Unwrap() error { return e.err }

type cancelledError struct {
	what string
}

func (e cancelledError) Error() string {
	return e.what + " cancelled"
}
