package catalog

import (
	"context"

	"github.com/Angelerator/Sazgar/pkg/table"
)

// listCursor streams one row per entity of a snapshot list. The acquire
// callback runs exactly once, at Init, and returns the entity count plus a
// lazy per-index row builder; an empty domain yields zero rows, never an
// error.
type listCursor struct {
	acquire func(ctx context.Context) (int, func(i int) table.Row)
	count   int
	row     func(i int) table.Row
	idx     int
}

func list(acquire func(ctx context.Context) (int, func(i int) table.Row)) table.Cursor {
	return &listCursor{acquire: acquire}
}

func (c *listCursor) Init(ctx context.Context) error {
	c.count, c.row = c.acquire(ctx)
	return nil
}

func (c *listCursor) Next() (table.Row, error) {
	if c.idx >= c.count {
		return nil, nil
	}
	row := c.row(c.idx)
	c.idx++
	return row, nil
}

func (c *listCursor) Close() error {
	c.count, c.row = 0, nil
	return nil
}

// singletonCursor produces exactly one row, built from the snapshot
// acquired at Init.
type singletonCursor struct {
	acquire func(ctx context.Context) table.Row
	row     table.Row
	done    bool
}

func singleton(acquire func(ctx context.Context) table.Row) table.Cursor {
	return &singletonCursor{acquire: acquire}
}

func (c *singletonCursor) Init(ctx context.Context) error {
	c.row = c.acquire(ctx)
	return nil
}

func (c *singletonCursor) Next() (table.Row, error) {
	if c.done {
		return nil, nil
	}
	c.done = true
	return c.row, nil
}

func (c *singletonCursor) Close() error {
	c.row = nil
	c.done = true
	return nil
}
