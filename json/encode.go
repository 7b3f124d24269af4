package json

import "io"

// FieldNameEncoder turns a property name into its on-the-wire token.
// Implementations write the complete token to out in one or more sequential
// appends. Swapping the encoder changes the key dialect without touching the
// writer state machine.
type FieldNameEncoder interface {
	EncodeFieldName(out io.Writer, name string) error
}

// QuotedFieldNames encodes every property name as a JSON string literal.
// This is the default and the only encoding that is standard JSON.
type QuotedFieldNames struct{}

// EncodeFieldName writes the name quoted and escaped.
func (QuotedFieldNames) EncodeFieldName(out io.Writer, name string) error {
	_, err := out.Write(appendQuoted(make([]byte, 0, len(name)+2), name))
	return err
}

// IdentifierFieldNames encodes property names bare when they are valid
// identifiers ([A-Za-z_$][A-Za-z0-9_$]*) and falls back to quoting
// otherwise. The output is a relaxed JavaScript-literal dialect, not
// standard JSON.
type IdentifierFieldNames struct{}

// EncodeFieldName writes the name, quoting only when required.
func (IdentifierFieldNames) EncodeFieldName(out io.Writer, name string) error {
	if isIdentifier(name) {
		_, err := io.WriteString(out, name)
		return err
	}
	return QuotedFieldNames{}.EncodeFieldName(out, name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

const hexDigits = "0123456789abcdef"

// appendQuoted appends s as a JSON string literal: surrounding double
// quotes, with '"', '\\' and control characters escaped per the JSON string
// grammar. Non-ASCII text is passed through unescaped (JSON is UTF-8).
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c >= 0x20:
			dst = append(dst, c)
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
	}
	return append(dst, '"')
}
