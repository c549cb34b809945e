package goshape

import (
	"strconv"
	"strings"
)

// PathRef locates a position inside a checked value. It renders both a JSON
// Pointer and the human subject used in messages ("Value.items[2]").
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Subject() string
}

// RootPath returns the path of the checked value itself, named subject.
func RootPath(subject string) PathRef {
	if subject == "" {
		subject = DefaultSubject
	}
	return &pathRef{subject: subject}
}

type pathRef struct {
	parts   []string
	subject string
}

func (p *pathRef) Field(name string) PathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	var subject string
	if isDotPropertyName(name) {
		subject = p.subject + "." + name
	} else {
		subject = p.subject + "[" + strconv.Quote(name) + "]"
	}
	return &pathRef{parts: append(append([]string{}, p.parts...), esc), subject: subject}
}

func (p *pathRef) Index(i int) PathRef {
	s := strconv.Itoa(i)
	return &pathRef{parts: append(append([]string{}, p.parts...), s), subject: p.subject + "[" + s + "]"}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Subject() string { return p.subject }

// isDotPropertyName reports whether name can follow a dot in a subject: a
// non-empty run of ASCII letters, digits, '_' and '$' not starting with a digit.
func isDotPropertyName(name string) bool {
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '$':
		default:
			return false
		}
	}
	return true
}
