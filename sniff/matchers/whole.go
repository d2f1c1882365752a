package matchers

import "bytes"

type wholeMatcher struct{}

// Whole treats every non-blank line as a candidate, without the surrounding
// whitespace.
func Whole() Matcher {
	return &wholeMatcher{}
}

func (m *wholeMatcher) Match(line []byte) (bool, int, int) {
	trimmed := bytes.TrimLeft(line, " \t")
	start := len(line) - len(trimmed)

	trimmed = bytes.TrimRight(trimmed, " \t")
	if len(trimmed) == 0 {
		return false, 0, 0
	}

	return true, start, start + len(trimmed)
}
