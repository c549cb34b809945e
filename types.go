package goshape

// Kind identifies the variant of a Matcher node.
type Kind int

const (
	KindLiteral      Kind = iota // Strict equality with Value.
	KindUnion                    // Any of Children.
	KindIntersection             // All of Children.
	KindNegate                   // Complement of Elem.
	KindArrayOf                  // Every element matches Elem.
	KindTuple                    // Fixed-length sequence, one child per position.
	KindKeyed                    // Object whose present keys match Fields.
	KindCustom                   // Predicate with a descriptor.
	KindTypeOf                   // Runtime type tag equals Type.
	KindInstanceOf               // Dynamic type is (or implements) Class.
	KindReference                // Named placeholder, removed by Resolve.
)

var kindNames = [...]string{
	KindLiteral:      "literal",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindNegate:       "negate",
	KindArrayOf:      "arrayOf",
	KindTuple:        "tuple",
	KindKeyed:        "keyed",
	KindCustom:       "custom",
	KindTypeOf:       "typeOf",
	KindInstanceOf:   "instanceOf",
	KindReference:    "reference",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// UnknownPolicy controls how keyed matchers treat keys they do not declare.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject undeclared keys with an unknown_key issue.
	UnknownPassthrough                      // Accept undeclared keys with any value.
)

// TypeTag is the runtime type category compared by TypeOf matchers.
type TypeTag string

const (
	TypeNumber   TypeTag = "number"
	TypeString   TypeTag = "string"
	TypeBoolean  TypeTag = "boolean"
	TypeObject   TypeTag = "object"
	TypeArray    TypeTag = "array"
	TypeFunction TypeTag = "function"
	TypeNull     TypeTag = "null"
)

// ErrorsOpt configures diagnostic collection.
type ErrorsOpt struct {
	// Subject names the root value in messages. Defaults to "Value".
	Subject string
	// FailFast stops after the first issue.
	FailFast bool
	// MaxIssues caps the number of issues (0 means unlimited). When the cap is
	// reached a trailing truncated issue is appended.
	MaxIssues int
}

// DefaultSubject is the root subject used when ErrorsOpt.Subject is empty.
const DefaultSubject = "Value"
