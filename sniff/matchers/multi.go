package matchers

import "bytes"

// Multi returns the result of the first matcher that matches.
func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

// UpcasedMulti is Multi applied to the upcased line.
func UpcasedMulti(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
		upcase:   true,
	}
}

type multi struct {
	matchers []Matcher
	upcase   bool
}

func (m *multi) Match(line []byte) (bool, int, int) {
	if m.upcase {
		line = bytes.ToUpper(line)
	}

	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(line); match {
			return true, start, end
		}
	}

	return false, 0, 0
}
