// Package yamlv3 decodes YAML input for goshape with gopkg.in/yaml.v3.
//
// Mappings decode into goshape.Object in document order, sequences into []any
// and scalars into string, bool, int, float64, time.Time or nil following the
// YAML core schema.
package yamlv3

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	goshape "github.com/reoring/goshape"
)

// DuplicateKeyError reports a mapping key that occurs twice.
type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("yaml: line %d: duplicate key %q", e.Line, e.Key)
}

// ErrAliasCycle is returned for an alias that expands into itself.
var ErrAliasCycle = errors.New("yaml: alias refers to an enclosing node")

// Decode returns one value per document of a (possibly multi-document) stream.
func Decode(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		v, err := convert(&n, nil)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
	return docs, nil
}

// DecodeOne decodes the first document of data; an empty stream yields nil.
func DecodeOne(data []byte) (any, error) {
	docs, err := Decode(data)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return docs[0], nil
}

func convert(n *yaml.Node, expanding []*yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return convert(n.Content[0], expanding)
	case yaml.MappingNode:
		obj := make(goshape.Object, 0, len(n.Content)/2)
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if seen[k.Value] {
				return nil, &DuplicateKeyError{Key: k.Value, Line: k.Line}
			}
			seen[k.Value] = true
			v, err := convert(vn, expanding)
			if err != nil {
				return nil, err
			}
			obj = append(obj, goshape.Member{Key: k.Value, Value: v})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convert(c, expanding)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.AliasNode:
		for _, e := range expanding {
			if e == n.Alias {
				return nil, ErrAliasCycle
			}
		}
		return convert(n.Alias, append(expanding, n.Alias))
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
}
