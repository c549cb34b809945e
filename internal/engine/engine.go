package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token. String holds string values and object
// keys, Number the literal text of a number.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
}

// TokenSource is a minimal interface required by the engine. It returns io.EOF
// once the input is exhausted.
type TokenSource interface {
	NextToken() (Token, error)
}

// DuplicatePolicy controls how repeated object keys are handled.
type DuplicatePolicy int

const (
	DupError    DuplicatePolicy = iota // Fail with *DuplicateKeyError.
	DupLastWins                        // Keep the position of the first occurrence and the last value.
)

// Limits bounds decoding. Zero values mean no depth limit and duplicate keys
// rejected.
type Limits struct {
	MaxDepth    int
	OnDuplicate DuplicatePolicy
}

// ObjectFunc assembles a decoded object from its keys and values in input
// order.
type ObjectFunc func(keys []string, values []any) any

// DuplicateKeyError reports a key that occurs twice in one object.
type DuplicateKeyError struct {
	Path string // JSON Pointer of the object.
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q at %s", e.Key, e.Path)
}

// DepthError reports nesting beyond Limits.MaxDepth.
type DepthError struct {
	Path     string
	MaxDepth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("max depth %d exceeded at %s", e.MaxDepth, e.Path)
}

// ErrTrailingData is returned when input continues after the first value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Decode builds a value from src: objects through obj, arrays as []any,
// numbers as json.Number. The source must hold exactly one value.
func Decode(src TokenSource, lim Limits, obj ObjectFunc) (any, error) {
	d := &decoder{src: src, lim: lim, obj: obj}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	v, err := d.value(tok, nil)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

type decoder struct {
	src   TokenSource
	lim   Limits
	obj   ObjectFunc
	depth int
}

func (d *decoder) value(tok Token, path []string) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return d.object(path)
	case KindBeginArray:
		return d.array(path)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d *decoder) enter(path []string) error {
	d.depth++
	if d.lim.MaxDepth > 0 && d.depth > d.lim.MaxDepth {
		return &DepthError{Path: pointer(path), MaxDepth: d.lim.MaxDepth}
	}
	return nil
}

func (d *decoder) object(path []string) (any, error) {
	if err := d.enter(path); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()
	var keys []string
	var values []any
	index := map[string]int{}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return d.obj(keys, values), nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, append(path[:len(path):len(path)], tok.String))
		if err != nil {
			return nil, err
		}
		if i, dup := index[tok.String]; dup {
			if d.lim.OnDuplicate == DupError {
				return nil, &DuplicateKeyError{Path: pointer(path), Key: tok.String}
			}
			values[i] = v
			continue
		}
		index[tok.String] = len(keys)
		keys = append(keys, tok.String)
		values = append(values, v)
	}
}

func (d *decoder) array(path []string) (any, error) {
	if err := d.enter(path); err != nil {
		return nil, err
	}
	defer func() { d.depth-- }()
	arr := []any{}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok, append(path[:len(path):len(path)], strconv.Itoa(len(arr))))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// pointer renders path parts as an RFC 6901 JSON Pointer.
func pointer(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1"))
	}
	return b.String()
}
