package trie

import "github.com/pivotal-cf/pwdkek/alphabet"

// Model is a frozen trie. It is safe for concurrent readers.
type Model struct {
	alphabet *alphabet.Alphabet
	nodes    []node
}

func (m *Model) Alphabet() *alphabet.Alphabet {
	return m.alphabet
}

func (m *Model) Root() Handle {
	return Root
}

func (m *Model) Len() int {
	return len(m.nodes)
}

// Visits is the number of corpus lines that passed through h. For the root
// that is the number of lines that contributed a path.
func (m *Model) Visits(h Handle) uint64 {
	return m.nodes[h].visits
}

func (m *Model) Token(h Handle) int {
	return int(m.nodes[h].token)
}

func (m *Model) HasChildren(h Handle) bool {
	return m.nodes[h].firstChild != none
}

// EachChild calls fn for every child of h in ascending token order.
func (m *Model) EachChild(h Handle, fn func(token int, child Handle)) {
	for c := m.nodes[h].firstChild; c != none; c = m.nodes[c].next {
		fn(int(m.nodes[c].token), c)
	}
}

func (m *Model) Children(h Handle) []Handle {
	var children []Handle
	m.EachChild(h, func(_ int, c Handle) {
		children = append(children, c)
	})

	return children
}

func (m *Model) Child(h Handle, token int) (Handle, bool) {
	t := uint8(token)
	for c := m.nodes[h].firstChild; c != none; c = m.nodes[c].next {
		switch tok := m.nodes[c].token; {
		case tok == t:
			return c, true
		case tok > t:
			return none, false
		}
	}

	return none, false
}

func (m *Model) Walk(prefix string) (Handle, bool) {
	cur := Root
	for i := 0; i < len(prefix); i++ {
		token, ok := m.alphabet.Index(prefix[i])
		if !ok {
			return none, false
		}

		if cur, ok = m.Child(cur, token); !ok {
			return none, false
		}
	}

	return cur, true
}

// CountWithPrefix returns how many corpus lines start with prefix.
func (m *Model) CountWithPrefix(prefix string) int {
	h, ok := m.Walk(prefix)
	if !ok {
		return 0
	}

	return int(m.nodes[h].visits)
}
