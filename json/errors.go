package json

import (
	"errors"
	"fmt"
	"reflect"
)

// ProtocolViolationError reports a structural call made in a state that
// forbids it (for example EndArray while an object is open, or a second
// top-level value). The writer session that produced it is unusable and its
// output is not valid JSON.
type ProtocolViolationError struct {
	Op    string // the operation that was attempted
	State string // the frame state at the time of the call
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("json: %s not allowed in %s state", e.Op, e.State)
}

// UnresolvedTypeError reports that no applicable strategy exists for a type
// after the full resolution chain.
type UnresolvedTypeError struct {
	Type reflect.Type
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("json: no serialization strategy for type %s", e.Type)
}

// StrategyInvocationError reports that the strategy chosen for a value
// failed while emitting it. The output sink may contain a partially written
// value.
//
// The underlying cause can be accessed via errors.Unwrap.
type StrategyInvocationError struct {
	Type  reflect.Type
	cause error
}

func (e *StrategyInvocationError) Error() string {
	return fmt.Sprintf("json: strategy for type %s failed: %v", e.Type, e.cause)
}

func (e *StrategyInvocationError) Unwrap() error { return e.cause }

// wrapStrategyErr tags a strategy failure with the value's type. Errors that
// already carry this package's semantics (protocol violations, unresolved
// types, nested strategy failures) pass through unchanged.
func wrapStrategyErr(t reflect.Type, err error) error {
	if err == nil {
		return nil
	}
	var pv *ProtocolViolationError
	var ut *UnresolvedTypeError
	var si *StrategyInvocationError
	if errors.As(err, &pv) || errors.As(err, &ut) || errors.As(err, &si) {
		return err
	}
	return &StrategyInvocationError{Type: t, cause: err}
}
