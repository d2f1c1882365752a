package matchers

import "regexp"

type formatMatcher struct {
	r *regexp.Regexp
}

// Format matches a regular expression. When the expression has a capture
// group the span of the first group is returned, otherwise the whole match.
func Format(format string) Matcher {
	return &formatMatcher{
		r: regexp.MustCompile(format),
	}
}

func (m *formatMatcher) Match(line []byte) (bool, int, int) {
	index := m.r.FindSubmatchIndex(line)
	if index == nil {
		return false, 0, 0
	}

	if len(index) >= 4 && index[2] != -1 {
		return true, index[2], index[3]
	}

	return true, index[0], index[1]
}
