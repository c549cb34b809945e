// Package gojson decodes JSON input for goshape with github.com/goccy/go-json.
//
// Objects decode into goshape.Object so keys keep their document order and
// diagnostics follow it. Numbers decode as json.Number.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	goshape "github.com/reoring/goshape"
	eng "github.com/reoring/goshape/internal/engine"
)

// Options bounds decoding.
type Options struct {
	// MaxDepth limits nesting of objects and arrays (0 means unlimited).
	MaxDepth int
	// AllowDuplicateKeys keeps the last value of a repeated key instead of
	// failing.
	AllowDuplicateKeys bool
}

// Decode parses exactly one JSON value from data.
func Decode(data []byte, opts ...Options) (any, error) {
	return decode(NewBytes(data), opts)
}

// DecodeReader parses exactly one JSON value from r.
func DecodeReader(r io.Reader, opts ...Options) (any, error) {
	return decode(NewReader(r), opts)
}

func decode(src eng.TokenSource, opts []Options) (any, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	lim := eng.Limits{MaxDepth: opt.MaxDepth}
	if opt.AllowDuplicateKeys {
		lim.OnDuplicate = eng.DupLastWins
	}
	return eng.Decode(src, lim, func(keys []string, values []any) any {
		obj := make(goshape.Object, len(keys))
		for i := range keys {
			obj[i] = goshape.Member{Key: keys[i], Value: values[i]}
		}
		return obj
	})
}

// ---- engine.TokenSource implementation using go-json Decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

// valueDone records that a member value finished inside the enclosing object.
func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject}, nil
		case '}':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			return eng.Token{Kind: eng.KindEndObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray}, nil
		case ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			return eng.Token{Kind: eng.KindEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return eng.Token{Kind: eng.KindKey, String: v}, nil
			}
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v)}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	}
	s.valueDone()
	return eng.Token{Kind: eng.KindNull}, nil
}
