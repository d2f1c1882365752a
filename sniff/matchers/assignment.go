package matchers

import "regexp"

const keyPattern = `(?:secret|private[-_]?key|passw(?:or)?d|pwd|passphrase|salt|token)`

const quotedPattern = `(?i)` + keyPattern + `["']?\s*(?::=|=>|=|:)?\s*["']([^"'\s]+)["']`

const barePattern = `(?i)` + keyPattern + `["']?\s*(?::=|=>|=|:)\s*([^"'\s,;#]+)`

const guidPattern = `(?i)^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[a-f0-9]{4}-[a-f0-9]{12}$`

// Assignment matches secret assignments in source, config and YAML files and
// returns the span of the assigned value. Quoted values win over bare ones so
// that the quotes are never part of the candidate.
func Assignment() Matcher {
	return &assignmentMatcher{
		quoted: regexp.MustCompile(quotedPattern),
		bare:   regexp.MustCompile(barePattern),
		guid:   regexp.MustCompile(guidPattern),
	}
}

type assignmentMatcher struct {
	quoted *regexp.Regexp
	bare   *regexp.Regexp
	guid   *regexp.Regexp
}

func (m *assignmentMatcher) Match(line []byte) (bool, int, int) {
	index := m.quoted.FindSubmatchIndex(line)
	if index == nil {
		index = m.bare.FindSubmatchIndex(line)
	}

	if index == nil {
		return false, 0, 0
	}

	start, end := index[2], index[3]
	if m.guid.Match(line[start:end]) {
		return false, 0, 0
	}

	return true, start, end
}
