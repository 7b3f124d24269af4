// Package model holds the simple value objects shared across the library.
package model

import (
	"reflect"
	"strconv"

	"github.com/yaatmb/common/json"
)

// Reference points at a business object: a primary key plus a display title.
type Reference interface {
	// ID returns the referenced object's primary key.
	ID() int64
	// Title returns the human-readable label for the reference.
	Title() string
}

// LongReference is the plain numeric-key Reference implementation.
// The zero value references object 0 with an empty title.
type LongReference struct {
	id    int64
	title string
}

var _ Reference = LongReference{}

// NewLongReference creates a reference whose title is the decimal form of
// the key.
func NewLongReference(id int64) LongReference {
	return LongReference{id: id, title: strconv.FormatInt(id, 10)}
}

// NewTitledReference creates a reference with an explicit title.
func NewTitledReference(id int64, title string) LongReference {
	return LongReference{id: id, title: title}
}

// ID returns the referenced object's primary key.
func (r LongReference) ID() int64 { return r.id }

// Title returns the display title.
func (r LongReference) Title() string { return r.title }

func (r LongReference) String() string {
	return "{id:" + strconv.FormatInt(r.id, 10) + ", title:" + r.title + "}"
}

// RegisterJSON installs the shared reference strategy in ctx as an inherited
// marker on the Reference interface, so every Reference implementation,
// not just LongReference, serializes as {"id": ..., "title": ...} without
// per-type registration.
func RegisterJSON(ctx *json.Context) {
	ctx.RegisterMarker(reflect.TypeFor[Reference](), referenceStrategy{}, true)
}

type referenceStrategy struct{}

func (referenceStrategy) Serialize(v any, w json.Writer) error {
	ref := v.(Reference)
	if err := w.BeginObject(); err != nil {
		return err
	}
	if err := w.WriteProperty("id", ref.ID()); err != nil {
		return err
	}
	if err := w.WriteProperty("title", ref.Title()); err != nil {
		return err
	}
	return w.EndObject()
}
