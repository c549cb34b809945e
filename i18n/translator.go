package i18n

import (
	"fmt"
	"sync"
)

// Message keys used by the goshape formatter.
const (
	Nothing       = "nothing"
	Anything      = "anything"
	JointOr       = "joint_or"
	JointAnd      = "joint_and"
	ArrayOf       = "array_of"
	Tuple         = "tuple"
	TupleEmpty    = "tuple_empty"
	TupleIndex    = "tuple_index"
	Keyed         = "keyed"
	KeyedEmpty    = "keyed_empty"
	KeyedAny      = "keyed_any"
	KeyedKey      = "keyed_key"
	TypeOf        = "type_of"
	InstanceOf    = "instance_of"
	Null          = "null"
	MustBe        = "must_be"
	MustNotBe     = "must_not_be"
	UnknownKey    = "unknown_key"
	Truncated     = "truncated"
	UnresolvedRef = "unresolved_ref"
)

// Translator renders the message identified by key with args.
type Translator interface {
	Message(key string, args ...any) string
}

// english is the built-in template set.
var english = map[string]string{
	Nothing:       "nothing",
	Anything:      "anything",
	JointOr:       "or",
	JointAnd:      "and",
	ArrayOf:       "an array where every element is %s",
	Tuple:         "an array of length %d where %s",
	TupleEmpty:    "an array of length 0",
	TupleIndex:    "index %d is %s",
	Keyed:         "an object where %s",
	KeyedEmpty:    "an object with no keys",
	KeyedAny:      "an object",
	KeyedKey:      "key %s is %s",
	TypeOf:        `of type "%s"`,
	InstanceOf:    "an instance of %s",
	Null:          "null",
	MustBe:        "%s must be %s",
	MustNotBe:     "%s must not be %s",
	UnknownKey:    "%s must not be present",
	Truncated:     "%s: stopped after %d issues",
	UnresolvedRef: "reference %s",
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ dict map[string]string }

func (t dictTranslator) Message(key string, args ...any) string {
	tmpl, ok := t.dict[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{dict: english}
)

// SetTranslator replaces the Translator implementation. nil restores the
// built-in English templates.
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{dict: english}
		return
	}
	currentTranslator = tr
}

// T renders the message for key using the current Translator.
func T(key string, args ...any) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(key, args...)
}
