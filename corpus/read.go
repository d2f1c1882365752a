package corpus

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwdkek/mimetype"
)

const maxLineSize = 1024 * 1024

// Read returns every line of r with the trailing newline (and carriage
// return) removed.
func Read(logger lager.Logger, r io.Reader) ([]string, error) {
	logger = logger.Session("read")
	logger.Debug("starting")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scan-failed", err, lager.Data{"lines": len(lines)})
		return nil, err
	}

	logger.Debug("done", lager.Data{"lines": len(lines)})
	return lines, nil
}

// OpenReader opens a plain or gzip-compressed text file.
func OpenReader(logger lager.Logger, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)
	mime, err := mimetype.Detect(path, br)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Debug("detected", lager.Data{"path": path, "mime": mime})

	switch mime {
	case mimetype.Gzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return &gzipFile{Reader: gz, file: f}, nil
	case mimetype.Text:
		return &bufferedFile{Reader: br, file: f}, nil
	default:
		f.Close()
		return nil, fmt.Errorf("open %s: unsupported dataset type %s", path, mime)
	}
}

// Open loads a sorted corpus from a plain or gzip-compressed file.
func Open(logger lager.Logger, path string) (*Corpus, error) {
	logger = logger.Session("open", lager.Data{"path": path})

	rc, err := OpenReader(logger, path)
	if err != nil {
		logger.Error("open-failed", err)
		return nil, err
	}
	defer rc.Close()

	lines, err := Read(logger, rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	c, err := New(lines)
	if err != nil {
		logger.Error("load-failed", err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logger.Info("loaded", lager.Data{"entries": c.Len()})
	return c, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gerr
}

type bufferedFile struct {
	*bufio.Reader
	file *os.File
}

func (b *bufferedFile) Close() error {
	return b.file.Close()
}
