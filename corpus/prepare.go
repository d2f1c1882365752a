package corpus

import (
	"bufio"
	"compress/gzip"
	"io"
	"sort"

	"github.com/pivotal-cf/pwdkek/alphabet"
)

// Prepare filters every line down to alphabet characters, drops lines left
// empty and sorts the rest bytewise. The result is ready for New.
func Prepare(lines []string, a *alphabet.Alphabet) []string {
	prepared := make([]string, 0, len(lines))
	for _, line := range lines {
		if filtered := a.Filter(line); filtered != "" {
			prepared = append(prepared, filtered)
		}
	}

	sort.Strings(prepared)
	return prepared
}

// WritePrepared writes lines newline-separated and gzip-compressed.
func WritePrepared(w io.Writer, lines []string) error {
	gz := gzip.NewWriter(w)
	bw := bufio.NewWriter(gz)

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}

	return gz.Close()
}
