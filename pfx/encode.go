// Package pfx writes and reads the compacted transition model.
//
// The stream is a depth-first pre-order sequence of fixed-width records, one
// byte per alphabet index. A record slot holds the child's share of the
// parent's transitions, truncated to 0..255. The writer recurses into a child
// only when its slot is non-zero, so children whose share truncates to zero
// are dropped along with their subtrees. There is no header or terminator:
// a reader must use the same width and the same non-zero recursion rule.
package pfx

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pivotal-cf/pwdkek/trie"
)

// Weights returns the quantized record of h. A node without children yields
// an all-zero record.
func Weights(m *trie.Model, h trie.Handle) []byte {
	record := make([]byte, m.Alphabet().Size())
	fillWeights(m, h, record)
	return record
}

func fillWeights(m *trie.Model, h trie.Handle, record []byte) {
	for i := range record {
		record[i] = 0
	}

	var total uint64
	m.EachChild(h, func(_ int, c trie.Handle) {
		total += m.Visits(c)
	})

	if total == 0 {
		return
	}

	m.EachChild(h, func(token int, c trie.Handle) {
		weight := float64(m.Visits(c)) / float64(total)
		record[token] = byte(weight * 255)
	})
}

type frame struct {
	handle trie.Handle
}

// Write serializes m to w and returns the number of bytes written.
func Write(m *trie.Model, w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	record := make([]byte, m.Alphabet().Size())
	stack := []frame{{handle: m.Root()}}

	var pending []trie.Handle
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fillWeights(m, top.handle, record)
		if _, err := cw.Write(record); err != nil {
			return cw.n, err
		}

		pending = pending[:0]
		m.EachChild(top.handle, func(token int, c trie.Handle) {
			if record[token] != 0 {
				pending = append(pending, c)
			}
		})

		// reversed so the lowest index is popped first
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, frame{handle: pending[i]})
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

func Encode(m *trie.Model) []byte {
	buf := &bytes.Buffer{}
	// writes to a bytes.Buffer do not fail
	_, _ = Write(m, buf)
	return buf.Bytes()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
