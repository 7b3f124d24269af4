// Package data defines the callback interfaces for push-style record
// processing, where a consumer is handed to the data producer and fed one
// record at a time.
package data

import "context"

// Transformer converts values of type S into values of type D.
type Transformer[S, D any] interface {
	Transform(S) (D, error)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc[S, D any] func(S) (D, error)

// Transform calls f.
func (f TransformerFunc[S, D]) Transform(s S) (D, error) { return f(s) }

// Consumer receives the records of one stream in order. Close is called
// exactly once, after the last record, and is the place to flush or release
// whatever the consumer holds.
type Consumer[T any] interface {
	Consume(ctx context.Context, record T) error
	Close() error
}

// ConditionalConsumer is a Consumer that first inspects a descriptor of the
// upcoming stream and may decline the work. When Init reports false the
// producer must not call Consume or Close.
type ConditionalConsumer[D, T any] interface {
	// Init is called once before the first record. It returns whether the
	// consumer is willing to process the described stream.
	Init(ctx context.Context, descriptor D) (bool, error)
	Consume(ctx context.Context, record T) error
	Close() error
}
