// Package corpus holds the sorted leaked-password list the estimator counts
// prefixes against.
package corpus

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEmptyCorpus = errors.New("corpus is empty, maybe the dataset was not found")
	ErrUnsorted    = errors.New("corpus is not sorted")
)

// Corpus is an immutable, bytewise-sorted list of passwords. Duplicates are
// allowed.
type Corpus struct {
	entries []string
}

// New takes ownership of entries, which must already be sorted.
func New(entries []string) (*Corpus, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}

	if !sort.StringsAreSorted(entries) {
		return nil, ErrUnsorted
	}

	return &Corpus{entries: entries}, nil
}

func (c *Corpus) Len() int {
	return len(c.entries)
}

func (c *Corpus) Entries() []string {
	return c.entries
}

// CountWithPrefix returns the number of entries that start with prefix. The
// prefixed entries form one contiguous run in sorted order; both ends are
// found by binary search.
func (c *Corpus) CountWithPrefix(prefix string) int {
	start := sort.SearchStrings(c.entries, prefix)

	rest := c.entries[start:]
	end := sort.Search(len(rest), func(i int) bool {
		return !strings.HasPrefix(rest[i], prefix)
	})

	return end
}
