package table

import "context"

// Function is one exposed metric table function. Implementations declare a
// static schema and build a fresh Cursor per invocation at bind time.
// A Function value itself holds no per-invocation state: concurrent
// invocations of the same function never share anything but the (externally
// synchronized) snapshot provider behind it.
type Function interface {
	// Name is the function identity used for registration and lookup.
	Name() string
	// Columns is the fixed, ordered output schema. It never depends on
	// argument values.
	Columns() []Column
	// ArgNames lists the accepted named arguments, empty when the function
	// takes none.
	ArgNames() []string
	// Bind validates the supplied arguments and returns an unopened cursor.
	// No OS probing happens here; argument errors wrap ErrInvalidArgument.
	Bind(args Args) (Cursor, error)
}

// Cursor is the per-invocation row stream. It is single-threaded: one
// goroutine calls Init once, Next until exhaustion, then Close. Close must be
// safe to call at any point after Bind, including mid-production, and must
// release the held snapshot.
type Cursor interface {
	// Init acquires the domain snapshot. This is the single point where the
	// live metrics probe executes.
	Init(ctx context.Context) error
	// Next produces the next row, or nil when the sequence is exhausted.
	// The sequence is one-pass: there is no rewind.
	Next() (Row, error)
	Close() error
}
