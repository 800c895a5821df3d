package depdag

// PayloadKind tags the variant held by a [Payload].
type PayloadKind int

const (
	// PayloadNone means nothing has been provided.
	PayloadNone PayloadKind = iota
	// PayloadValue holds caller data. Its presence alone marks the vertex as provided.
	PayloadValue
	// PayloadPredicate holds a readiness check evaluated on every query.
	PayloadPredicate
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadValue:
		return "value"
	case PayloadPredicate:
		return "predicate"
	default:
		return "none"
	}
}

// Payload is the data attached to a vertex: nothing, a value, or a predicate.
// The zero value is the "none" payload.
type Payload struct {
	kind  PayloadKind
	value any
	pred  func() bool
}

// NoPayload returns the empty payload.
func NoPayload() Payload { return Payload{} }

// ValueOf wraps v as a value payload. A nil v yields the empty payload.
func ValueOf(v any) Payload {
	if v == nil {
		return Payload{}
	}
	return Payload{kind: PayloadValue, value: v}
}

// PredicateOf wraps f as a predicate payload. A nil f yields the empty payload.
func PredicateOf(f func() bool) Payload {
	if f == nil {
		return Payload{}
	}
	return Payload{kind: PayloadPredicate, pred: f}
}

// Kind reports which variant p holds.
func (p Payload) Kind() PayloadKind { return p.kind }

// Value returns the wrapped value and true for value payloads.
func (p Payload) Value() (any, bool) {
	if p.kind != PayloadValue {
		return nil, false
	}
	return p.value, true
}

// Provided reports whether p counts as provided. Predicates are invoked on
// every call.
func (p Payload) Provided() bool {
	switch p.kind {
	case PayloadValue:
		return true
	case PayloadPredicate:
		return p.pred()
	default:
		return false
	}
}
