package matchers

import "bytes"

// Filter only runs submatcher on lines containing one of filters, case
// insensitively. It keeps expensive expressions off lines that cannot match.
func Filter(submatcher Matcher, filters ...string) Matcher {
	fs := make([][]byte, len(filters))

	for i := range filters {
		fs[i] = bytes.ToLower([]byte(filters[i]))
	}

	return &filter{
		matcher: submatcher,
		filters: fs,
	}
}

type filter struct {
	matcher Matcher
	filters [][]byte
}

func (f *filter) Match(line []byte) (bool, int, int) {
	lowered := bytes.ToLower(line)

	for i := range f.filters {
		if bytes.Contains(lowered, f.filters[i]) {
			return f.matcher.Match(line)
		}
	}

	return false, 0, 0
}
