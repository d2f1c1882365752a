package alphabet

import (
	"errors"
	"fmt"
)

// Characters is the ordered character set of the model. Index assignment
// follows this order and is shared by the compactor and every consumer of
// its output, since serialized weights are positional.
const Characters = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Size is the number of characters in the default alphabet.
const Size = len(Characters)

var ErrInvalidCharacter = errors.New("password contains invalid characters")

type InvalidCharacterError struct {
	Char  byte
	Index int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s: %q at position %d", ErrInvalidCharacter, e.Char, e.Index)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

type Alphabet struct {
	chars   string
	indices [256]int16
}

var defaultAlphabet = New(Characters)

func Default() *Alphabet {
	return defaultAlphabet
}

// New builds an alphabet from an ordered set of distinct bytes. It panics on
// duplicates, which would make index assignment ambiguous.
func New(chars string) *Alphabet {
	a := &Alphabet{chars: chars}
	for i := range a.indices {
		a.indices[i] = -1
	}

	for i := 0; i < len(chars); i++ {
		if a.indices[chars[i]] != -1 {
			panic(fmt.Sprintf("alphabet: duplicate character %q", chars[i]))
		}
		a.indices[chars[i]] = int16(i)
	}

	return a
}

func (a *Alphabet) Size() int {
	return len(a.chars)
}

func (a *Alphabet) String() string {
	return a.chars
}

func (a *Alphabet) Index(c byte) (int, bool) {
	i := a.indices[c]
	return int(i), i >= 0
}

func (a *Alphabet) Char(index int) byte {
	return a.chars[index]
}

func (a *Alphabet) Contains(c byte) bool {
	return a.indices[c] >= 0
}

// Tokenize maps text to alphabet indices, skipping bytes outside the
// alphabet. Corpus lines go through here.
func (a *Alphabet) Tokenize(text string) []int {
	tokens := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		if idx := a.indices[text[i]]; idx >= 0 {
			tokens = append(tokens, int(idx))
		}
	}

	return tokens
}

// TokenizeStrict maps text to alphabet indices and fails on the first byte
// outside the alphabet. Candidate passwords go through here.
func (a *Alphabet) TokenizeStrict(text string) ([]int, error) {
	tokens := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		idx := a.indices[text[i]]
		if idx < 0 {
			return nil, &InvalidCharacterError{Char: text[i], Index: i}
		}
		tokens = append(tokens, int(idx))
	}

	return tokens, nil
}

func (a *Alphabet) Validate(text string) error {
	for i := 0; i < len(text); i++ {
		if a.indices[text[i]] < 0 {
			return &InvalidCharacterError{Char: text[i], Index: i}
		}
	}

	return nil
}

// Filter returns text with every byte outside the alphabet removed.
func (a *Alphabet) Filter(text string) string {
	for i := 0; i < len(text); i++ {
		if a.indices[text[i]] < 0 {
			return a.filterFrom(text, i)
		}
	}

	return text
}

func (a *Alphabet) filterFrom(text string, start int) string {
	buf := make([]byte, start, len(text))
	copy(buf, text[:start])
	for i := start; i < len(text); i++ {
		if a.indices[text[i]] >= 0 {
			buf = append(buf, text[i])
		}
	}

	return string(buf)
}
