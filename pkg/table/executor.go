package table

import (
	"context"
	"fmt"
)

// State of an Executor. Transitions are strictly forward:
// Unbound → Bound → Initialized → Producing → Exhausted, with Failed as the
// terminal state of any protocol or bind error.
type State int

const (
	Unbound State = iota
	Bound
	Initialized
	Producing
	Exhausted
	Failed
)

var stateNames = [...]string{
	Unbound:     "unbound",
	Bound:       "bound",
	Initialized: "initialized",
	Producing:   "producing",
	Exhausted:   "exhausted",
	Failed:      "failed",
}

func (s State) String() string { return stateNames[s] }

// Executor drives one table-function invocation through the pull protocol.
// It owns the cursor, enforces call ordering, and validates every produced
// row against the function's declared schema. Executors are not safe for
// concurrent use; each invocation gets its own instance.
type Executor struct {
	fn     Function
	cols   []Column
	state  State
	cursor Cursor
}

// NewExecutor returns an unbound executor for fn.
func NewExecutor(fn Function) *Executor {
	return &Executor{fn: fn, cols: fn.Columns()}
}

// State returns the current lifecycle state.
func (e *Executor) State() State { return e.state }

// Columns returns the schema declared to the host engine.
func (e *Executor) Columns() []Column { return e.cols }

// Bind validates args against the function's accepted argument set and
// resolves them into a cursor. A bind failure is terminal.
func (e *Executor) Bind(args Args) error {
	if e.state != Unbound {
		return e.misuse("Bind")
	}
	if err := args.Validate(e.fn.ArgNames()); err != nil {
		e.state = Failed
		return fmt.Errorf("binding %s: %w", e.fn.Name(), err)
	}
	cursor, err := e.fn.Bind(args)
	if err != nil {
		e.state = Failed
		return fmt.Errorf("binding %s: %w", e.fn.Name(), err)
	}
	e.cursor = cursor
	e.state = Bound
	return nil
}

// Init acquires the domain snapshot through the cursor. This is the only
// transition that touches the live system.
func (e *Executor) Init(ctx context.Context) error {
	if e.state != Bound {
		return e.misuse("Init")
	}
	if err := e.cursor.Init(ctx); err != nil {
		e.state = Failed
		return fmt.Errorf("initializing %s: %w", e.fn.Name(), err)
	}
	e.state = Initialized
	return nil
}

// Next pulls the next row. It returns (nil, nil) exactly once, on
// exhaustion; further calls are protocol errors.
func (e *Executor) Next() (Row, error) {
	switch e.state {
	case Initialized:
		e.state = Producing
	case Producing:
	default:
		return nil, e.misuse("Next")
	}
	row, err := e.cursor.Next()
	if err != nil {
		e.state = Failed
		return nil, fmt.Errorf("producing %s: %w", e.fn.Name(), err)
	}
	if row == nil {
		e.state = Exhausted
		return nil, nil
	}
	if err := e.checkRow(row); err != nil {
		e.state = Failed
		return nil, err
	}
	return row, nil
}

// Close releases the cursor's snapshot. It tolerates abandonment in any
// state, including mid-production, and is idempotent.
func (e *Executor) Close() error {
	if e.cursor == nil {
		return nil
	}
	cursor := e.cursor
	e.cursor = nil
	if e.state != Exhausted && e.state != Failed {
		e.state = Exhausted
	}
	return cursor.Close()
}

func (e *Executor) checkRow(row Row) error {
	if len(row) != len(e.cols) {
		return fmt.Errorf("function %s produced %d values for %d columns",
			e.fn.Name(), len(row), len(e.cols))
	}
	for i, col := range e.cols {
		if !col.Type.matches(row[i]) {
			return fmt.Errorf("function %s column %s: value %v (%T) does not match %s",
				e.fn.Name(), col.Name, row[i], row[i], col.Type)
		}
	}
	return nil
}

func (e *Executor) misuse(op string) error {
	return fmt.Errorf("%s called on %s executor for %s", op, e.state, e.fn.Name())
}
