// Package json implements a streaming, protocol-enforcing JSON emitter.
//
// Unlike encoding/json, which pulls a fully materialized value apart, this
// package is push-driven: the caller (or a serialization Strategy acting on
// its behalf) issues structural calls (BeginObject, WriteProperty,
// BeginArray, WriteValue and so on) and the writer emits tokens as it goes.
// Illegal call sequences are rejected immediately with a
// ProtocolViolationError, so any output that was accepted without error is
// well-formed JSON.
//
// Two writers are provided. PrintableWriter pretty-prints one member per
// line with depth-proportional indentation and is intended for output a
// human will read. CompactWriter emits the same documents without any
// whitespace.
//
// Which serialization logic applies to a value is decided by a Context: a
// registry mapping runtime types to strategies, consulted once per concrete
// type and cached. Resolution tries an exact registration first, then
// type-level markers, then the type's ancestors (embedded structs, then
// marker interfaces flagged as inherited), then the fallback strategy.
// NewContext installs built-in strategies for Go scalars, time.Time and a
// reflective fallback that handles slices, maps and structs, so most values
// serialize out of the box.
//
// A single writer session is not safe for concurrent use; confine it to one
// goroutine. A Context is read-mostly and may be shared by any number of
// concurrent writer sessions once registration is complete.
package json
