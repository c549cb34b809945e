package goshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeMismatch   = "mismatch"    // The value does not satisfy the described condition.
	CodeUnknownKey = "unknown_key" // The object has a key its keyed matcher does not declare.
	CodeTruncated  = "truncated"   // ErrorsOpt.MaxIssues was reached.
)

// Issue is a single located validation failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Subject string // Human-readable path rooted at the subject, e.g. Value.items[2].price.
	Code    string
	Message string // Complete English sentence, e.g. `Value[2] must be of type "number"`.
}

// Issues is an ordered collection of validation failures that implements error.
// An empty collection means the value conforms.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages returns the issue messages in order.
func (iss Issues) Messages() []string {
	out := make([]string, len(iss))
	for i := range iss {
		out[i] = iss[i].Message
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrNilMatcher is raised when a nil *Matcher is checked or resolved.
var ErrNilMatcher = errors.New("goshape: nil matcher")

// UnknownReferenceError reports a reference to a name missing from the
// definition bundle.
type UnknownReferenceError struct {
	Name       string // Referenced name.
	Definition string // Definition containing the reference.
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("goshape: definition %q references unknown name %q", e.Definition, e.Name)
}

// ReferenceCycleError reports definitions that reach themselves without
// descending into an array, tuple or keyed matcher. Checking such a graph would
// never consume the value.
type ReferenceCycleError struct {
	Cycle []string // Definition names, first repeated at the end.
}

func (e *ReferenceCycleError) Error() string {
	return "goshape: reference cycle without structural step: " + strings.Join(e.Cycle, " -> ")
}

// UnresolvedReferenceError reports a reference node reached in a graph that
// was expected to be closed.
type UnresolvedReferenceError struct {
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("goshape: unresolved reference %q", e.Name)
}
