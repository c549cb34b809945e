package goshape

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/goshape/i18n"
)

// Describe renders m as an English phrase. With a subject it renders a full
// sentence, "{subject} must[ not] be {phrase}", where negations wrapping m are
// folded into the polarity and inverted flips it once more. inverted is ignored
// without a subject.
//
// Definitions spliced by Resolve are named rather than expanded once the
// description reaches them below the top, so cyclic graphs render finitely.
func Describe(m *Matcher, subject string, inverted bool) string {
	if subject == "" {
		return describe(m, true)
	}
	for m.Kind == KindNegate {
		m = m.Elem
		inverted = !inverted
	}
	key := i18n.MustBe
	if inverted {
		key = i18n.MustNotBe
	}
	return i18n.T(key, subject, describe(m, true))
}

func describe(m *Matcher, top bool) string {
	if m == nil {
		panic(ErrNilMatcher)
	}
	if m.Terminal && m.Ref != "" && !top {
		return m.Ref
	}
	switch m.Kind {
	case KindLiteral:
		return displayLiteral(m.Value)
	case KindUnion:
		if len(m.Children) == 0 {
			return i18n.T(i18n.Nothing)
		}
		return HumanList(describeAll(m.Children), i18n.T(i18n.JointOr))
	case KindIntersection:
		if len(m.Children) == 0 {
			return i18n.T(i18n.Anything)
		}
		return HumanList(describeAll(m.Children), i18n.T(i18n.JointAnd))
	case KindNegate:
		return "not " + describe(m.Elem, false)
	case KindArrayOf:
		return i18n.T(i18n.ArrayOf, describe(m.Elem, false))
	case KindTuple:
		if len(m.Children) == 0 {
			return i18n.T(i18n.TupleEmpty)
		}
		conds := make([]string, len(m.Children))
		for i, c := range m.Children {
			conds[i] = i18n.T(i18n.TupleIndex, i, describe(c, false))
		}
		return i18n.T(i18n.Tuple, len(m.Children), HumanList(conds, i18n.T(i18n.JointAnd)))
	case KindKeyed:
		keys := m.keyOrder()
		if len(keys) == 0 {
			if m.Unknown == UnknownPassthrough {
				return i18n.T(i18n.KeyedAny)
			}
			return i18n.T(i18n.KeyedEmpty)
		}
		conds := make([]string, len(keys))
		for i, k := range keys {
			conds[i] = i18n.T(i18n.KeyedKey, k, describe(m.Fields[k], false))
		}
		return i18n.T(i18n.Keyed, HumanList(conds, i18n.T(i18n.JointAnd)))
	case KindCustom:
		return m.Descriptor
	case KindTypeOf:
		return i18n.T(i18n.TypeOf, string(m.Type))
	case KindInstanceOf:
		return i18n.T(i18n.InstanceOf, m.Descriptor)
	case KindReference:
		return i18n.T(i18n.UnresolvedRef, m.Ref)
	default:
		panic(fmt.Sprintf("goshape: unknown matcher kind %d", int(m.Kind)))
	}
}

func describeAll(ms []*Matcher) []string {
	out := make([]string, len(ms))
	for i, c := range ms {
		out[i] = describe(c, false)
	}
	return out
}

// HumanList joins items as English prose: "A", "A or B", "A, B, or C".
func HumanList(items []string, joint string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + joint + " " + items[1]
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + ", " + joint + " " + items[last]
}

// displayLiteral renders a literal the way it reads in a message.
func displayLiteral(v any) string {
	if isNull(v) {
		return i18n.T(i18n.Null)
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconvFormatFloat(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	}
	return fmt.Sprint(v)
}

// strconvFormatFloat renders a float64 using the shortest JSON-compatible representation.
func strconvFormatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
