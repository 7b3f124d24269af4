package json

import (
	"io"
	"reflect"
)

// CompactWriter emits JSON without any whitespace: {"a":1,"b":[2,3]}. It
// enforces the same call protocol as PrintableWriter and shares its strategy
// dispatch, differing only in the tokens between values.
//
// Like PrintableWriter, a CompactWriter is a single-goroutine session.
type CompactWriter struct {
	ctx   *Context
	out   io.Writer
	names FieldNameEncoder
	stack []frame
}

var _ Writer = (*CompactWriter)(nil)

// NewCompactWriter creates a compact writer session emitting to out.
// Panics if ctx or out is nil.
func NewCompactWriter(ctx *Context, out io.Writer, opts ...Option) *CompactWriter {
	if ctx == nil || out == nil {
		panic("json: NewCompactWriter requires a context and an output sink")
	}
	o := writerOptions{names: ctx.FieldNames()}
	for _, fn := range opts {
		fn(&o)
	}
	w := &CompactWriter{ctx: ctx, out: out, names: o.names}
	w.stack = append(make([]frame, 0, 8), frame{state: stateUnknown})
	return w
}

// Context returns the writer's resolution context.
func (w *CompactWriter) Context() *Context { return w.ctx }

// Out returns the underlying output sink.
func (w *CompactWriter) Out() io.Writer { return w.out }

// BeginArray opens an array in the current position.
func (w *CompactWriter) BeginArray() error {
	return w.begin("BeginArray", stateArray, "[")
}

// EndArray closes the innermost open array.
func (w *CompactWriter) EndArray() error {
	i := w.top()
	if w.stack[i].state != stateArray {
		return w.violation("EndArray", i)
	}
	w.pop()
	return w.raw("]")
}

// BeginObject opens an object in the current position.
func (w *CompactWriter) BeginObject() error {
	return w.begin("BeginObject", stateObject, "{")
}

// EndObject closes the innermost open object.
func (w *CompactWriter) EndObject() error {
	i := w.top()
	if w.stack[i].state != stateObject {
		return w.violation("EndObject", i)
	}
	w.pop()
	return w.raw("}")
}

func (w *CompactWriter) begin(op string, st frameState, token string) error {
	i := w.top()
	switch w.stack[i].state {
	case stateUnknown:
		if !w.stack[i].delegated && w.stack[i].items > 0 {
			return w.violation(op, i)
		}
		w.stack[i].items = 1
	case stateArray:
		if !w.stack[i].delegated {
			if w.stack[i].items > 0 {
				if err := w.raw(","); err != nil {
					return err
				}
			}
			w.stack[i].items++
		}
	case stateObjAttr:
		w.stack[i].state = stateObject
	default:
		return w.violation(op, i)
	}
	w.push(st)
	return w.raw(token)
}

// WriteValue emits v as the single top-level value or the next array
// element.
func (w *CompactWriter) WriteValue(v any) error {
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
		if w.stack[i].items > 1 {
			if err := w.raw(","); err != nil {
				return err
			}
		}
		return w.dispatch(i, v)
	case stateObjAttr:
		w.stack[i].state = stateObject
		return w.dispatch(i, v)
	default:
		return w.violation("WriteValue", i)
	}
}

// WriteProperty emits one name:value member of the open object.
func (w *CompactWriter) WriteProperty(name string, v any) error {
	if err := w.WriteComplexProperty(name); err != nil {
		return err
	}
	i := w.top()
	if v == nil {
		w.stack[i].state = stateObject
		return w.raw("null")
	}
	t := reflect.TypeOf(v)
	s, err := w.ctx.Resolve(t)
	if err != nil {
		return err
	}
	err = s.Serialize(v, w)
	w.stack[i].state = stateObject
	return wrapStrategyErr(t, err)
}

// WriteComplexProperty emits the name and separator of an object member. The
// next call must produce exactly one value for it.
func (w *CompactWriter) WriteComplexProperty(name string) error {
	i := w.top()
	if w.stack[i].state != stateObject {
		return w.violation("WriteComplexProperty", i)
	}
	w.stack[i].items++
	if w.stack[i].items > 1 {
		if err := w.raw(","); err != nil {
			return err
		}
	}
	if err := w.names.EncodeFieldName(w.out, name); err != nil {
		return err
	}
	if err := w.raw(":"); err != nil {
		return err
	}
	w.stack[i].state = stateObjAttr
	return nil
}

func (w *CompactWriter) dispatch(i int, v any) error {
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

func (w *CompactWriter) top() int { return len(w.stack) - 1 }

func (w *CompactWriter) push(s frameState) {
	w.stack = append(w.stack, frame{state: s, depth: w.stack[w.top()].depth + 1})
}

func (w *CompactWriter) pop() { w.stack = w.stack[:len(w.stack)-1] }

func (w *CompactWriter) raw(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}

func (w *CompactWriter) violation(op string, i int) error {
	return &ProtocolViolationError{Op: op, State: w.stack[i].state.String()}
}
