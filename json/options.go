package json

type writerOptions struct {
	indentFactor int
	names        FieldNameEncoder
}

// Option configures writer construction.
type Option func(*writerOptions)

// WithIndentFactor sets the number of spaces per nesting level for a
// PrintableWriter. CompactWriter ignores it. Negative values fall back to
// DefaultIndentFactor.
func WithIndentFactor(factor int) Option {
	return func(o *writerOptions) {
		o.indentFactor = factor
	}
}

// WithFieldNames overrides the field-name encoder for one writer session.
// By default the writer uses its Context's encoder.
func WithFieldNames(enc FieldNameEncoder) Option {
	return func(o *writerOptions) {
		if enc != nil {
			o.names = enc
		}
	}
}
