package matchers

//go:generate counterfeiter . Matcher

// Matcher reports whether a line holds a candidate and, if so, the byte span
// of the candidate within the line.
type Matcher interface {
	Match([]byte) (bool, int, int)
}
