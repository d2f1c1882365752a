// Package trie accumulates corpus lines into a prefix tree of visit counts.
//
// Nodes live in a single arena and refer to each other by Handle. Children of
// a node form a singly linked sibling list kept in ascending token order, so
// walks over children visit alphabet indices from lowest to highest.
package trie

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwdkek/alphabet"
)

// Handle identifies a node in the arena. The zero value is the root, which is
// never anyone's child, so zero doubles as "no node" in sibling links.
type Handle int32

const (
	Root Handle = 0
	none Handle = 0
)

const DefaultProgressEvery = 1000000

type node struct {
	visits     uint64
	firstChild Handle
	next       Handle
	token      uint8
}

type Builder struct {
	alphabet      *alphabet.Alphabet
	nodes         []node
	ProgressEvery int
}

func NewBuilder(a *alphabet.Alphabet) *Builder {
	return &Builder{
		alphabet:      a,
		nodes:         []node{{}},
		ProgressEvery: DefaultProgressEvery,
	}
}

// Visit returns the child of h keyed by token, creating it on first visit,
// and increments its visit count.
func (b *Builder) Visit(h Handle, token int) Handle {
	t := uint8(token)

	prev := none
	cur := b.nodes[h].firstChild
	for cur != none && b.nodes[cur].token < t {
		prev = cur
		cur = b.nodes[cur].next
	}

	if cur == none || b.nodes[cur].token != t {
		child := Handle(len(b.nodes))
		b.nodes = append(b.nodes, node{token: t, next: cur})
		if prev == none {
			b.nodes[h].firstChild = child
		} else {
			b.nodes[prev].next = child
		}
		cur = child
	}

	b.nodes[cur].visits++
	return cur
}

// Add walks one corpus line from the root. Bytes outside the alphabet are
// skipped; a line with nothing left contributes no path.
func (b *Builder) Add(line string) {
	tokens := b.alphabet.Tokenize(line)
	if len(tokens) == 0 {
		return
	}

	b.nodes[Root].visits++

	cur := Root
	for _, token := range tokens {
		cur = b.Visit(cur, token)
	}
}

func (b *Builder) AddAll(logger lager.Logger, lines []string) int {
	logger = logger.Session("add-all", lager.Data{"lines": len(lines)})
	logger.Debug("starting")
	defer logger.Debug("done")

	for i, line := range lines {
		b.Add(line)
		b.progress(logger, i+1)
	}

	return len(lines)
}

// ReadFrom adds every newline-separated line of r.
func (b *Builder) ReadFrom(logger lager.Logger, r io.Reader) (int, error) {
	logger = logger.Session("read-from")
	logger.Debug("starting")
	defer logger.Debug("done")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var count int
	for scanner.Scan() {
		b.Add(scanner.Text())
		count++
		b.progress(logger, count)
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scan-failed", err, lager.Data{"lines": count})
		return count, err
	}

	return count, nil
}

func (b *Builder) progress(logger lager.Logger, processed int) {
	if b.ProgressEvery > 0 && processed%b.ProgressEvery == 0 {
		logger.Info("processed", lager.Data{"lines": processed, "nodes": len(b.nodes)})
	}
}

// Freeze hands the arena over to a read-only Model. The builder must not be
// used afterwards.
func (b *Builder) Freeze() *Model {
	m := &Model{
		alphabet: b.alphabet,
		nodes:    b.nodes,
	}
	b.nodes = nil

	return m
}

func Build(logger lager.Logger, a *alphabet.Alphabet, lines []string) *Model {
	b := NewBuilder(a)
	b.AddAll(logger, lines)
	return b.Freeze()
}
