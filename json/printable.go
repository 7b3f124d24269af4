package json

import (
	"io"
	"reflect"
)

// PrintableWriter emits pretty-printed JSON: one member or element per line,
// indented by depth * indent factor. It validates every structural call
// against the current state, so output accepted without error is always
// well-formed.
//
// A PrintableWriter holds mutable, unsynchronized session state and must be
// confined to a single goroutine.
type PrintableWriter struct {
	ctx    *Context
	out    io.Writer
	names  FieldNameEncoder
	indent *Indenter
	stack  []frame
}

var _ Writer = (*PrintableWriter)(nil)

// NewPrintableWriter creates a writer session emitting to out, resolving
// serialization strategies through ctx. Panics if ctx or out is nil.
func NewPrintableWriter(ctx *Context, out io.Writer, opts ...Option) *PrintableWriter {
	if ctx == nil || out == nil {
		panic("json: NewPrintableWriter requires a context and an output sink")
	}
	o := writerOptions{
		indentFactor: DefaultIndentFactor,
		names:        ctx.FieldNames(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	w := &PrintableWriter{
		ctx:    ctx,
		out:    out,
		names:  o.names,
		indent: NewIndenter(o.indentFactor),
	}
	w.stack = append(make([]frame, 0, 8), frame{state: stateUnknown})
	return w
}

// Context returns the writer's resolution context.
func (w *PrintableWriter) Context() *Context { return w.ctx }

// Out returns the underlying output sink.
func (w *PrintableWriter) Out() io.Writer { return w.out }

// BeginArray opens an array in the current position.
func (w *PrintableWriter) BeginArray() error {
	i := w.top()
	switch w.stack[i].state {
	case stateUnknown:
		if !w.stack[i].delegated && w.stack[i].items > 0 {
			return w.violation("BeginArray", i)
		}
		w.stack[i].items = 1
		w.push(stateArray)
		return w.raw("[")
	case stateArray:
		if !w.stack[i].delegated {
			if w.stack[i].items > 0 {
				if err := w.raw(","); err != nil {
					return err
				}
			}
			w.stack[i].items++
		}
		w.push(stateArray)
		return w.raw(" [")
	case stateObjAttr:
		w.stack[i].state = stateObject
		w.push(stateArray)
		return w.raw("[")
	default:
		return w.violation("BeginArray", i)
	}
}

// EndArray closes the innermost open array.
func (w *PrintableWriter) EndArray() error {
	i := w.top()
	if w.stack[i].state != stateArray {
		return w.violation("EndArray", i)
	}
	// The closing bracket sits on its own line at the enclosing depth, even
	// when the array is empty.
	if err := w.raw("\n" + w.stack[i-1].prefix); err != nil {
		return err
	}
	w.pop()
	return w.raw("]")
}

// BeginObject opens an object in the current position.
func (w *PrintableWriter) BeginObject() error {
	i := w.top()
	switch w.stack[i].state {
	case stateUnknown:
		if !w.stack[i].delegated && w.stack[i].items > 0 {
			return w.violation("BeginObject", i)
		}
		w.stack[i].items = 1
		w.push(stateObject)
		return w.raw("{")
	case stateArray:
		if !w.stack[i].delegated {
			if w.stack[i].items > 0 {
				if err := w.raw(","); err != nil {
					return err
				}
			}
			w.stack[i].items++
		}
		w.push(stateObject)
		return w.raw(" {")
	case stateObjAttr:
		w.stack[i].state = stateObject
		w.push(stateObject)
		return w.raw("{")
	default:
		return w.violation("BeginObject", i)
	}
}

// EndObject closes the innermost open object.
func (w *PrintableWriter) EndObject() error {
	i := w.top()
	if w.stack[i].state != stateObject {
		return w.violation("EndObject", i)
	}
	if err := w.raw("\n" + w.stack[i-1].prefix); err != nil {
		return err
	}
	w.pop()
	return w.raw("}")
}

// WriteValue emits v as the single top-level value or the next array
// element.
func (w *PrintableWriter) WriteValue(v any) error {
	i := w.top()
	switch w.stack[i].state {
	case stateUnknown:
		if w.stack[i].items > 0 {
			return w.violation("WriteValue", i)
		}
		w.stack[i].items = 1
		return w.dispatch(i, v)
	case stateArray:
		w.stack[i].items++
		sep := "\n"
		if w.stack[i].items > 1 {
			sep = ",\n"
		}
		if err := w.raw(sep + w.stack[i].prefix); err != nil {
			return err
		}
		return w.dispatch(i, v)
	case stateObjAttr:
		w.stack[i].state = stateObject
		return w.dispatch(i, v)
	default:
		return w.violation("WriteValue", i)
	}
}

// WriteProperty emits one "name: value" member of the open object.
func (w *PrintableWriter) WriteProperty(name string, v any) error {
	i := w.top()
	if w.stack[i].state != stateObject {
		return w.violation("WriteProperty", i)
	}
	w.stack[i].items++
	sep := "\n"
	if w.stack[i].items > 1 {
		sep = ",\n"
	}
	if err := w.raw(sep + w.stack[i].prefix); err != nil {
		return err
	}
	if err := w.names.EncodeFieldName(w.out, name); err != nil {
		return err
	}
	if err := w.raw(": "); err != nil {
		return err
	}
	if v == nil {
		return w.raw("null")
	}
	t := reflect.TypeOf(v)
	s, err := w.ctx.Resolve(t)
	if err != nil {
		return err
	}
	w.stack[i].state = stateObjAttr
	err = s.Serialize(v, w)
	w.stack[i].state = stateObject
	return wrapStrategyErr(t, err)
}

// WriteComplexProperty emits the name and separator of an object member. The
// next call must produce exactly one value for it: BeginArray, BeginObject
// or WriteValue.
func (w *PrintableWriter) WriteComplexProperty(name string) error {
	i := w.top()
	if w.stack[i].state != stateObject {
		return w.violation("WriteComplexProperty", i)
	}
	w.stack[i].items++
	sep := "\n"
	if w.stack[i].items > 1 {
		sep = ",\n"
	}
	if err := w.raw(sep + w.stack[i].prefix); err != nil {
		return err
	}
	if err := w.names.EncodeFieldName(w.out, name); err != nil {
		return err
	}
	if err := w.raw(": "); err != nil {
		return err
	}
	w.stack[i].state = stateObjAttr
	return nil
}

// dispatch resolves and invokes the strategy for v, flagging frame i as
// delegated so the strategy's structural calls do not repeat the separator
// already written at this level. Frames are addressed by index, never by
// pointer: the strategy may grow the stack and relocate it.
func (w *PrintableWriter) dispatch(i int, v any) error {
	if v == nil {
		return w.raw("null")
	}
	t := reflect.TypeOf(v)
	s, err := w.ctx.Resolve(t)
	if err != nil {
		return err
	}
	w.stack[i].delegated = true
	err = s.Serialize(v, w)
	w.stack[i].delegated = false
	return wrapStrategyErr(t, err)
}

func (w *PrintableWriter) top() int { return len(w.stack) - 1 }

func (w *PrintableWriter) push(s frameState) {
	d := w.stack[w.top()].depth + 1
	w.stack = append(w.stack, frame{state: s, depth: d, prefix: w.indent.For(d)})
}

func (w *PrintableWriter) pop() { w.stack = w.stack[:len(w.stack)-1] }

func (w *PrintableWriter) raw(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}

func (w *PrintableWriter) violation(op string, i int) error {
	return &ProtocolViolationError{Op: op, State: w.stack[i].state.String()}
}
