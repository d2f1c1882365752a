package pfx

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pivotal-cf/pwdkek/alphabet"
)

var (
	ErrTruncated        = errors.New("pfx: stream ends inside a record")
	ErrTrailingData     = errors.New("pfx: data after the last record")
	ErrAlphabetMismatch = errors.New("pfx: record width does not match alphabet")
)

const noRecord = -1

// Model is a decoded compacted model. Record 0 is the root.
type Model struct {
	alphabet *alphabet.Alphabet
	width    int
	weights  []byte
	children []int32
	depth    int
}

type pendingChild struct {
	parent int
	slot   int
	depth  int
}

// Decode reads a stream produced by Write using a's size as the record width.
func Decode(r io.Reader, a *alphabet.Alphabet) (*Model, error) {
	width := a.Size()
	if width == 0 || width > 256 {
		return nil, ErrAlphabetMismatch
	}

	br := bufio.NewReader(r)
	m := &Model{alphabet: a, width: width}

	if _, err := m.readRecord(br); err != nil {
		return nil, err
	}

	stack := m.pushChildren(nil, 0, 1)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx, err := m.readRecord(br)
		if err != nil {
			return nil, err
		}

		m.children[top.parent*width+top.slot] = int32(idx)
		if top.depth > m.depth {
			m.depth = top.depth
		}

		stack = m.pushChildren(stack, idx, top.depth+1)
	}

	if _, err := br.ReadByte(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}

	return m, nil
}

func (m *Model) readRecord(r io.Reader) (int, error) {
	idx := m.Records()

	m.weights = append(m.weights, make([]byte, m.width)...)
	if _, err := io.ReadFull(r, m.weights[idx*m.width:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: record %d", ErrTruncated, idx)
		}
		return 0, err
	}

	for i := 0; i < m.width; i++ {
		m.children = append(m.children, noRecord)
	}

	return idx, nil
}

func (m *Model) pushChildren(stack []pendingChild, idx, depth int) []pendingChild {
	record := m.record(idx)
	for slot := m.width - 1; slot >= 0; slot-- {
		if record[slot] != 0 {
			stack = append(stack, pendingChild{parent: idx, slot: slot, depth: depth})
		}
	}

	return stack
}

func (m *Model) record(idx int) []byte {
	return m.weights[idx*m.width : (idx+1)*m.width]
}

func (m *Model) Records() int {
	return len(m.weights) / m.width
}

// Depth is the length of the longest prefix that has a record.
func (m *Model) Depth() int {
	return m.depth
}

func (m *Model) Alphabet() *alphabet.Alphabet {
	return m.alphabet
}

func (m *Model) find(prefix string) (int, bool) {
	idx := 0
	for i := 0; i < len(prefix); i++ {
		slot, ok := m.alphabet.Index(prefix[i])
		if !ok {
			return 0, false
		}

		next := m.children[idx*m.width+slot]
		if next == noRecord {
			return 0, false
		}
		idx = int(next)
	}

	return idx, true
}

// Transitions returns the quantized record reached by prefix. The returned
// slice must not be modified.
func (m *Model) Transitions(prefix string) ([]byte, bool) {
	idx, ok := m.find(prefix)
	if !ok {
		return nil, false
	}

	return m.record(idx), true
}

// Weight is the quantized probability of c following prefix, in [0, 1].
func (m *Model) Weight(prefix string, c byte) float64 {
	record, ok := m.Transitions(prefix)
	if !ok {
		return 0
	}

	slot, ok := m.alphabet.Index(c)
	if !ok {
		return 0
	}

	return float64(record[slot]) / 255
}
