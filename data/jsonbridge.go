package data

import (
	"context"

	"github.com/yaatmb/common/json"
)

// TransformStrategy builds a serialization strategy that applies t to the
// value and serializes the result through the writer's context. Register it
// for S to change S's wire shape without writing token emission by hand.
func TransformStrategy[S, D any](t Transformer[S, D]) json.Strategy {
	return json.StrategyFunc(func(v any, w json.Writer) error {
		d, err := t.Transform(v.(S))
		if err != nil {
			return err
		}
		return json.Dispatch(d, w)
	})
}

// ArrayConsumer streams every record it receives as one element of a single
// JSON array. The array opens on the first record (or on Close, for an
// empty stream) and closes in Close, so the output is complete only after a
// successful Close.
type ArrayConsumer[T any] struct {
	w     json.Writer
	began bool
}

var _ Consumer[int] = (*ArrayConsumer[int])(nil)

// NewArrayConsumer creates a consumer emitting records through w. The
// writer must be positioned where an array is legal: a fresh session, an
// open array, or a pending complex property.
func NewArrayConsumer[T any](w json.Writer) *ArrayConsumer[T] {
	return &ArrayConsumer[T]{w: w}
}

// Consume writes one record as the next array element.
func (c *ArrayConsumer[T]) Consume(_ context.Context, record T) error {
	if !c.began {
		if err := c.w.BeginArray(); err != nil {
			return err
		}
		c.began = true
	}
	return c.w.WriteValue(record)
}

// Close terminates the array, opening it first if no record ever arrived.
func (c *ArrayConsumer[T]) Close() error {
	if !c.began {
		if err := c.w.BeginArray(); err != nil {
			return err
		}
		c.began = true
	}
	return c.w.EndArray()
}
