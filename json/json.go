package json

import "io"

// Writer is the structural surface a caller or a Strategy drives to emit one
// JSON document. All methods report protocol violations and sink failures
// synchronously; after any error the session must be discarded together with
// whatever output it produced.
type Writer interface {
	// BeginArray opens an array. Matching EndArray closes it.
	BeginArray() error
	// EndArray closes the array opened by the matching BeginArray.
	EndArray() error
	// BeginObject opens an object. Matching EndObject closes it.
	BeginObject() error
	// EndObject closes the object opened by the matching BeginObject.
	EndObject() error
	// WriteValue emits a value in the current position: the single top-level
	// value, or the next array element. A nil value emits the null literal;
	// anything else is dispatched through the writer's Context.
	WriteValue(v any) error
	// WriteProperty emits one "name: value" member of the current object.
	WriteProperty(name string, v any) error
	// WriteComplexProperty emits the name and separator of an object member
	// and leaves the writer expecting exactly one value-producing call
	// (BeginArray, BeginObject or WriteValue) for it.
	WriteComplexProperty(name string) error

	// Context returns the serializer resolution context the writer was
	// created with.
	Context() *Context
	// Out returns the underlying output sink. Strategies use it to append
	// scalar token text after the writer has placed separators and
	// indentation; it must only ever be appended to.
	Out() io.Writer
}

// Strategy emits a value of a known (or assumed) runtime type through a
// Writer. Implementations must be safe for concurrent use: one strategy
// instance may serve many writer sessions at once.
type Strategy interface {
	Serialize(v any, w Writer) error
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(v any, w Writer) error

// Serialize calls f.
func (f StrategyFunc) Serialize(v any, w Writer) error { return f(v, w) }

// Raw is a pre-encoded JSON fragment. Its built-in strategy copies the text
// to the output verbatim, without validation.
type Raw string
