package estimator

import (
	"math"

	"github.com/pivotal-cf/pwdkek/alphabet"
)

// DefaultFloor is the probability used for a character that has no support
// even without context. It caps a single character's surprise near 30 bits.
const DefaultFloor = 1e-9

//go:generate counterfeiter . PrefixCounter

// PrefixCounter reports how many corpus passwords start with a prefix.
type PrefixCounter interface {
	CountWithPrefix(prefix string) int
}

// Probability is the share of passwords starting with prefix that continue
// with next. It is zero when no password starts with prefix.
func Probability(counter PrefixCounter, prefix, next string) float64 {
	total := counter.CountWithPrefix(prefix)
	if total == 0 {
		return 0
	}

	matched := counter.CountWithPrefix(prefix + next)
	return float64(matched) / float64(total)
}

// Entropy sums the surprise of every character of password given the
// characters before it. When a context has no support the oldest character
// is dropped until one does; the shortened context only resolves the current
// character, the next one starts again from the full prefix.
func Entropy(counter PrefixCounter, a *alphabet.Alphabet, password string, floor float64) (float64, error) {
	if err := a.Validate(password); err != nil {
		return 0, err
	}

	var entropy float64
	for i := 0; i < len(password); i++ {
		next := password[i : i+1]
		context := password[:i]

		p := Probability(counter, context, next)
		for p == 0 && context != "" {
			context = context[1:]
			p = Probability(counter, context, next)
		}

		if p == 0 {
			p = floor
		}

		entropy -= math.Log2(p)
	}

	return entropy, nil
}
