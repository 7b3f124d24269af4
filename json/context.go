package json

import (
	"reflect"
	"sync"
)

// marker is a type-level registration record: "values of (or assignable to)
// typ serialize via strategy". Inherited markers also apply to types that
// embed typ or implement it, mirroring an annotation with a
// recursive/subclass flag.
type marker struct {
	typ       reflect.Type
	strategy  Strategy
	inherited bool
}

// Context maps runtime types to serialization strategies. It is constructed
// once per serialization domain and shared read-mostly across writer
// sessions.
//
// Resolution results are cached per concrete type and never invalidated:
// perform all registration before the first write. The cache tolerates
// concurrent first resolution of the same type, since resolution is a pure
// computation and duplicate inserts agree.
type Context struct {
	mu       sync.RWMutex
	exact    map[reflect.Type]Strategy
	markers  []marker
	fallback Strategy
	names    FieldNameEncoder

	cache sync.Map // reflect.Type -> Strategy
}

// ContextOption configures NewContext.
type ContextOption func(*Context)

// WithContextFieldNames sets the default field-name encoder handed to
// writers created from this context.
func WithContextFieldNames(enc FieldNameEncoder) ContextOption {
	return func(c *Context) {
		if enc != nil {
			c.names = enc
		}
	}
}

// WithoutDefaults creates the context empty: no scalar strategies and no
// reflective fallback. Every type must then be covered by an explicit
// registration, a marker, or a fallback installed by the caller, and
// Resolve fails with UnresolvedTypeError otherwise.
func WithoutDefaults() ContextOption {
	return func(c *Context) {
		c.exact = make(map[reflect.Type]Strategy)
		c.fallback = nil
	}
}

// NewContext creates a resolution context. Unless WithoutDefaults is given,
// it comes preloaded with strategies for Go scalars, time.Time, []byte and
// Raw, plus a reflective fallback covering slices, arrays, maps, structs and
// pointers.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		exact:    builtinStrategies(),
		fallback: StrategyFunc(reflectSerialize),
		names:    QuotedFieldNames{},
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// FieldNames returns the context's default field-name encoder.
func (c *Context) FieldNames() FieldNameEncoder { return c.names }

// Register installs s as the strategy for exactly the type t. Exact
// registrations take precedence over markers and the fallback.
func (c *Context) Register(t reflect.Type, s Strategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exact[t] = s
}

// RegisterMarker attaches a type-level marker: values of type t serialize
// via s. With inherited set, the marker also applies to any type embedding t
// (when t is a struct type) or implementing it (when t is an interface
// type); otherwise it covers t alone.
func (c *Context) RegisterMarker(t reflect.Type, s Strategy, inherited bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markers = append(c.markers, marker{typ: t, strategy: s, inherited: inherited})
}

// RegisterFallback installs the strategy used when nothing more specific
// matches. Passing nil removes the fallback.
func (c *Context) RegisterFallback(s Strategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = s
}

// RegisterFor installs s as the exact strategy for T.
func RegisterFor[T any](c *Context, s Strategy) {
	c.Register(reflect.TypeFor[T](), s)
}

// RegisterMarkerFor attaches a marker for T.
func RegisterMarkerFor[T any](c *Context, s Strategy, inherited bool) {
	c.RegisterMarker(reflect.TypeFor[T](), s, inherited)
}

// Resolve returns the strategy for a value's concrete runtime type, walking
// the lookup chain on first sight of the type and serving the cached result
// thereafter:
//
//  1. exact registration for t
//  2. marker attached directly to t
//  3. t's ancestors (embedded structs breadth-first, nearest first, then
//     marker interfaces in registration order), considering only markers
//     flagged inherited
//  4. the fallback strategy
//
// It fails with *UnresolvedTypeError when the whole chain comes up empty.
func (c *Context) Resolve(t reflect.Type) (Strategy, error) {
	if s, ok := c.cache.Load(t); ok {
		return s.(Strategy), nil
	}
	s, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	// First store wins under concurrent resolution; resolve is pure, so
	// every contender computed an equivalent strategy.
	actual, _ := c.cache.LoadOrStore(t, s)
	return actual.(Strategy), nil
}

func (c *Context) resolve(t reflect.Type) (Strategy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.exact[t]; ok {
		return s, nil
	}
	for _, m := range c.markers {
		if m.typ == t {
			return m.strategy, nil
		}
	}
	if s, ok := c.resolveEmbedded(t); ok {
		return s, nil
	}
	for _, m := range c.markers {
		if !m.inherited || m.typ.Kind() != reflect.Interface {
			continue
		}
		// Only the value's own method set counts: the strategy will assert
		// the value against the marker interface.
		if t.Implements(m.typ) {
			return m.strategy, nil
		}
	}
	if c.fallback != nil {
		return c.fallback, nil
	}
	return nil, &UnresolvedTypeError{Type: t}
}

// resolveEmbedded walks t's embedded struct types breadth-first, nearest
// level first, looking for an inherited marker attached to an ancestor.
func (c *Context) resolveEmbedded(t reflect.Type) (Strategy, bool) {
	base := t
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, false
	}
	queue := embeddedTypes(base, nil)
	for len(queue) > 0 {
		anc := queue[0]
		queue = queue[1:]
		for _, m := range c.markers {
			if m.inherited && m.typ == anc {
				return m.strategy, true
			}
		}
		if anc.Kind() == reflect.Struct {
			queue = embeddedTypes(anc, queue)
		}
	}
	return nil, false
}

func embeddedTypes(t reflect.Type, dst []reflect.Type) []reflect.Type {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		dst = append(dst, ft)
	}
	return dst
}

// Dispatch resolves v's runtime type through the writer's context and
// invokes the resulting strategy. Strategies use it to re-enter resolution
// for a derived value without repeating the writer's separator logic; a nil
// v emits the null literal.
func Dispatch(v any, w Writer) error {
	if v == nil {
		_, err := w.Out().Write([]byte("null"))
		return err
	}
	t := reflect.TypeOf(v)
	s, err := w.Context().Resolve(t)
	if err != nil {
		return err
	}
	return wrapStrategyErr(t, s.Serialize(v, w))
}
