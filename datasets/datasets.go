// Package datasets knows the built-in leaked-password lists and turns a
// downloaded list into a prepared corpus file.
package datasets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kardianos/osext"
)

var ErrUnknownDataset = errors.New("unknown dataset")

type Dataset struct {
	Name string
	URL  string
	// Filename is the prepared corpus file inside the dataset directory.
	Filename string
}

var Small = Dataset{
	Name:     "small",
	URL:      "https://raw.githubusercontent.com/zacheller/rockyou/master/rockyou.txt.tar.gz",
	Filename: "rockyou-utf8-filtered-sorted.txt.gz",
}

var Big = Dataset{
	Name:     "big",
	URL:      "http://download.g0tmi1k.com/wordlists/large/crackstation-human-only.txt.gz",
	Filename: "crackstation-human-only-utf8-filtered-sorted.txt.gz",
}

var Builtin = []Dataset{Small, Big}

func Lookup(name string) (Dataset, error) {
	for _, d := range Builtin {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}

	return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
}

func (d Dataset) Path(dir string) string {
	return filepath.Join(dir, d.Filename)
}

// DefaultDir is the datasets directory next to the executable.
func DefaultDir() (string, error) {
	folder, err := osext.ExecutableFolder()
	if err != nil {
		return "", err
	}

	return filepath.Join(folder, "datasets"), nil
}

// DefaultPath is the small dataset inside DefaultDir.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}

	return Small.Path(dir), nil
}
