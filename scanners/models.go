package scanners

import (
	"fmt"

	"github.com/pivotal-cf/pwdkek/estimator"
)

type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

// Violation is a candidate password found in a line that scored below the
// minimum tier. Start and End delimit the candidate within Line.Content.
type Violation struct {
	Line Line

	Start int
	End   int

	Estimate estimator.Estimate
}

func (v Violation) Credential() string {
	return string(v.Line.Content[v.Start:v.End])
}

func (v Violation) Location() string {
	return fmt.Sprintf("%s:%d", v.Line.Path, v.Line.LineNumber)
}
