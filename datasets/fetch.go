package datasets

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/apply"
	"github.com/pivotal-cf/pwdkek/corpus"
	"github.com/pivotal-cf/pwdkek/mimetype"
)

type Fetcher struct {
	client   *http.Client
	alphabet *alphabet.Alphabet
}

func NewFetcher(client *http.Client, a *alphabet.Alphabet) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &Fetcher{
		client:   client,
		alphabet: a,
	}
}

// Fetch downloads d, unpacks it, keeps valid UTF-8 text, prepares it and
// installs the result at d.Path(dir). It returns the number of entries.
func (f *Fetcher) Fetch(logger lager.Logger, d Dataset, dir string) (int, error) {
	logger = logger.Session("fetch", lager.Data{"dataset": d.Name, "url": d.URL})
	logger.Info("starting")

	workDir, err := os.MkdirTemp("", "pwdkek-fetch")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(workDir)

	download := filepath.Join(workDir, filepath.Base(d.URL))
	if err := f.download(logger, d.URL, download); err != nil {
		return 0, err
	}

	lines, err := Unpack(logger, download, workDir)
	if err != nil {
		logger.Error("unpack-failed", err)
		return 0, err
	}

	entries := corpus.Prepare(lines, f.alphabet)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	if err := Install(d.Path(dir), entries); err != nil {
		logger.Error("install-failed", err)
		return 0, err
	}

	logger.Info("done", lager.Data{"entries": len(entries), "path": d.Path(dir)})
	return len(entries), nil
}

func (f *Fetcher) download(logger lager.Logger, url, dest string) error {
	resp, err := f.client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: %s", url, resp.Status)
	}

	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	n, err := io.Copy(file, resp.Body)
	if err != nil {
		return err
	}

	logger.Debug("downloaded", lager.Data{"bytes": n})
	return file.Close()
}

// Unpack reads the text lines of a plain, gzip, tar or zip file. Archives are
// extracted into workDir and every file in them is read. Invalid UTF-8 is
// dropped from each line.
func Unpack(logger lager.Logger, path, workDir string) ([]string, error) {
	logger = logger.Session("unpack", lager.Data{"path": path})

	mime, isArchive := mimetype.IsArchive(path)
	if !isArchive {
		mime = mimetype.Text
	}

	switch mime {
	case mimetype.Tar, mimetype.Zip:
		return extract(logger, extractor.NewDetectable(), path, filepath.Join(workDir, "extracted"))
	case mimetype.Gzip:
		return readFile(logger, path, true)
	default:
		return readFile(logger, path, false)
	}
}

func extract(logger lager.Logger, ex extractor.Extractor, path, dest string) ([]string, error) {
	if err := ex.Extract(path, dest); err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}

	var (
		lines  []string
		result error
	)

	err := filepath.Walk(dest, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		fileLines, err := readFile(logger, p, strings.HasSuffix(p, ".gz"))
		if err != nil {
			result = multierror.Append(result, err)
			return nil
		}

		lines = append(lines, fileLines...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, result
}

func readFile(logger lager.Logger, path string, compressed bool) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	lines, err := corpus.Read(logger, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i, line := range lines {
		lines[i] = strings.ToValidUTF8(line, "")
	}

	return lines, nil
}

// Install writes entries as a prepared corpus at path, replacing any
// previous file atomically.
func Install(path string, entries []string) error {
	var buf bytes.Buffer
	if err := corpus.WritePrepared(&buf, entries); err != nil {
		return err
	}

	return apply.File(path, &buf, 0644)
}
