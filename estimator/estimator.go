// Package estimator scores passwords against an empirical conditional
// character model built from a leaked-password corpus.
//
// An Estimator is read-only after construction and may be shared by
// concurrent callers as long as its PrefixCounter is.
package estimator

import (
	"errors"

	"github.com/pivotal-cf/pwdkek/alphabet"
)

var ErrEmptyModel = errors.New("prefix counter has no passwords")

type Estimate struct {
	Entropy      float64
	TimeToDecode Seconds
	Tier         Tier
}

func (e Estimate) Unbounded() bool {
	return e.TimeToDecode.Unbounded()
}

type Estimator struct {
	counter  PrefixCounter
	alphabet *alphabet.Alphabet
	scale    Scale
	floor    float64
}

type Option func(*Estimator)

func WithScale(scale Scale) Option {
	return func(e *Estimator) {
		e.scale = scale
	}
}

func WithFloor(floor float64) Option {
	return func(e *Estimator) {
		e.floor = floor
	}
}

func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(e *Estimator) {
		e.alphabet = a
	}
}

func New(counter PrefixCounter, opts ...Option) (*Estimator, error) {
	if counter.CountWithPrefix("") == 0 {
		return nil, ErrEmptyModel
	}

	e := &Estimator{
		counter:  counter,
		alphabet: alphabet.Default(),
		scale:    DefaultScale,
		floor:    DefaultFloor,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func (e *Estimator) Scale() Scale {
	return e.scale
}

func (e *Estimator) Entropy(password string) (float64, error) {
	return Entropy(e.counter, e.alphabet, password, e.floor)
}

// Estimate fails only when password has a character outside the alphabet.
func (e *Estimator) Estimate(password string) (Estimate, error) {
	entropy, err := e.Entropy(password)
	if err != nil {
		return Estimate{}, err
	}

	ttd, _ := TimeToDecode(entropy)

	return Estimate{
		Entropy:      entropy,
		TimeToDecode: ttd,
		Tier:         e.scale.Classify(ttd),
	}, nil
}
