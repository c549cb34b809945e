package goshape

import "github.com/reoring/goshape/i18n"

// GetErrors returns one located issue per violation of m by v, in depth-first
// order (array indexes ascending, tuple positions ascending, object keys in
// enumeration order). The result is empty exactly when IsValid(m, v) is true.
//
// Subtrees that already conform are never descended into. Arrays, tuples of
// the right length and objects are refined element by element; everything
// else, including a negation, yields a single message describing the whole
// matcher at that position.
func GetErrors(m *Matcher, v any, opts ...ErrorsOpt) Issues {
	var opt ErrorsOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	root := RootPath(opt.Subject)
	c := &collector{opt: opt, root: root}
	c.collect(m, v, root)
	return c.issues
}

type collector struct {
	opt     ErrorsOpt
	root    PathRef
	issues  Issues
	stopped bool
}

// collect never descends through a negation: a failing Not(X) is a leaf whose
// polarity Describe recovers from the matcher itself.
func (c *collector) collect(m *Matcher, v any, at PathRef) {
	if c.stopped || IsValid(m, v) {
		return
	}
	switch m.Kind {
	case KindArrayOf:
		if seq, ok := asSequence(v); ok {
			for i, n := 0, seq.Len(); i < n && !c.stopped; i++ {
				c.collect(m.Elem, seq.At(i), at.Index(i))
			}
			return
		}
	case KindTuple:
		if seq, ok := asSequence(v); ok && seq.Len() == len(m.Children) {
			for i, child := range m.Children {
				c.collect(child, seq.At(i), at.Index(i))
			}
			return
		}
	case KindKeyed:
		if obj, ok := asObject(v); ok {
			for _, mem := range obj {
				sub := at.Field(mem.Key)
				child, declared := m.Fields[mem.Key]
				if declared {
					c.collect(child, mem.Value, sub)
					continue
				}
				if m.Unknown == UnknownPassthrough {
					continue
				}
				c.add(Issue{Path: sub.Pointer(), Subject: sub.Subject(), Code: CodeUnknownKey, Message: i18n.T(i18n.UnknownKey, sub.Subject())})
			}
			return
		}
	}
	c.add(Issue{Path: at.Pointer(), Subject: at.Subject(), Code: CodeMismatch, Message: Describe(m, at.Subject(), false)})
}

func (c *collector) add(is Issue) {
	if c.stopped {
		return
	}
	if c.opt.MaxIssues > 0 && len(c.issues) >= c.opt.MaxIssues {
		subject := c.root.Subject()
		c.issues = append(c.issues, Issue{
			Path:    c.root.Pointer(),
			Subject: subject,
			Code:    CodeTruncated,
			Message: i18n.T(i18n.Truncated, subject, c.opt.MaxIssues),
		})
		c.stopped = true
		return
	}
	c.issues = append(c.issues, is)
	if c.opt.FailFast {
		c.stopped = true
	}
}
