package json

// frameState enumerates the positions the writer state machine can be in at
// one nesting level.
type frameState uint8

const (
	// stateUnknown is the root position before (and after) the single
	// top-level value.
	stateUnknown frameState = iota
	// stateArray means elements of an open array are being written.
	stateArray
	// stateObject means members of an open object are being written.
	stateObject
	// stateObjAttr is the transient position between an emitted member name
	// and its value.
	stateObjAttr
)

func (s frameState) String() string {
	switch s {
	case stateUnknown:
		return "UNKNOWN"
	case stateArray:
		return "ARRAY"
	case stateObject:
		return "OBJECT"
	case stateObjAttr:
		return "OBJATTR"
	default:
		return "INVALID"
	}
}

// frame is one level of the writer's stack. The depth-0 sentinel is the
// first stack entry; a frame is popped only by the end-operation matching
// the state it was pushed with.
type frame struct {
	state frameState
	// items counts the elements or members written at this level; it drives
	// the leading-separator logic.
	items int
	// delegated is set while a strategy invocation is in progress on behalf
	// of this frame, so the structural calls the strategy makes do not
	// double-count the separator already emitted here.
	delegated bool
	depth     int
	// prefix is the precomputed indentation for this depth. Compact writers
	// leave it empty.
	prefix string
}
