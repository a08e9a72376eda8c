// Grounded on original_source/src/model/voice/question.rs. The reference
// supports two dialects (a structured "known full-context fields" matcher
// and a regex fallback); this port collapses both into a single regex-based
// matcher (DESIGN.md: stdlib regexp is the idiomatic equivalent of the
// jlabel_question crate) while preserving the documented equality fix from
// spec.md §9 ("two regex questions are equal iff their pattern sources
// match" rather than the source's suspected-bug "always equal").
package model

import "regexp"

// Question is a named set of patterns; it matches a label string if any
// pattern matches.
type Question struct {
	Name     string
	Patterns []string

	compiled []*regexp.Regexp
}

// NewQuestion compiles patterns into a Question. Patterns use '*' as a
// full-context wildcard, translated to the regex wildcard ".*"; each
// pattern is anchored to match the whole label.
func NewQuestion(name string, patterns []string) (*Question, error) {
	q := &Question{Name: name, Patterns: append([]string(nil), patterns...)}
	q.compiled = make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(wildcardToRegexp(p))
		if err != nil {
			return nil, err
		}
		q.compiled[i] = re
	}
	return q, nil
}

// Test reports whether label matches any of the question's patterns.
func (q *Question) Test(label string) bool {
	for _, re := range q.compiled {
		if re.MatchString(label) {
			return true
		}
	}
	return false
}

// Equal reports whether two questions have identical pattern sources. This
// is the spec-mandated fix for the reference's "always equal" regex-branch
// comparison (spec.md §9 Open Questions).
func (q *Question) Equal(o *Question) bool {
	if len(q.Patterns) != len(o.Patterns) {
		return false
	}
	for i, p := range q.Patterns {
		if p != o.Patterns[i] {
			return false
		}
	}
	return true
}

func wildcardToRegexp(pattern string) string {
	out := make([]byte, 0, len(pattern)*2+2)
	out = append(out, '^')
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			out = append(out, '.', '*')
		case '.', '+', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			out = append(out, '\\', c)
		default:
			out = append(out, c)
		}
	}
	out = append(out, '$')
	return string(out)
}
