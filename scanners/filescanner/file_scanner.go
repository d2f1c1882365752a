package filescanner

import (
	"bufio"
	"bytes"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwdkek/scanners"
)

const maxLineSize = 1024 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

func New(r io.Reader, filename string) *fileScanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &fileScanner{
		path:         filename,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Session("file-scanner").Error("bufio-error", err, lager.Data{
			"path": s.path,
			"line": s.lineNumber,
		})
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

// Line copies the current line; the underlying buffer is reused by Scan.
func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	content := bytes.TrimSuffix(s.bufioScanner.Bytes(), []byte("\r"))

	return &scanners.Line{
		Content:    append([]byte(nil), content...),
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.bufioScanner.Err()
}
