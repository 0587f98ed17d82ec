package table

import (
	"fmt"
	"strconv"

	"github.com/Angelerator/Sazgar/pkg/sizeunit"
)

// ErrInvalidArgument reports a malformed or unrecognized bind-time argument.
// It always surfaces before any OS probe runs.
var ErrInvalidArgument = fmt.Errorf("invalid argument")

// Args holds the named arguments of one table function invocation.
// Omitted arguments take the function's documented default.
type Args map[string]string

// Validate rejects argument names outside the accepted set.
func (a Args) Validate(accepted []string) error {
	for name := range a {
		found := false
		for _, acc := range accepted {
			if name == acc {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: unknown argument %q (accepted: %v)", ErrInvalidArgument, name, accepted)
		}
	}
	return nil
}

// Unit resolves the named unit argument, falling back to def when omitted.
func (a Args) Unit(name string, def sizeunit.Unit) (sizeunit.Unit, error) {
	s, ok := a[name]
	if !ok {
		return def, nil
	}
	u, err := sizeunit.Parse(s)
	if err != nil {
		return def, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return u, nil
}

// String returns the named string argument, empty when omitted.
func (a Args) String(name string) string {
	return a[name]
}

// Int32 resolves the named integer argument, falling back to def when omitted.
func (a Args) Int32(name string, def int32) (int32, error) {
	s, ok := a[name]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return def, fmt.Errorf("%w: argument %q: %q is not an integer", ErrInvalidArgument, name, s)
	}
	if v < 0 {
		return def, fmt.Errorf("%w: argument %q must be non-negative, got %d", ErrInvalidArgument, name, v)
	}
	return int32(v), nil
}
