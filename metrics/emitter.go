// Package metrics emits counters and timers to a Prometheus registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "pwdkek"

//go:generate counterfeiter . Emitter

type Emitter interface {
	Counter(name, help string, labels ...string) Counter
	Timer(name, help string) Timer
}

// NewEmitter registers every metric it hands out with registerer. Asking for
// the same name twice returns the metric registered first.
func NewEmitter(registerer prometheus.Registerer) *emitter {
	return &emitter{
		registerer: registerer,
		counters:   map[string]*counter{},
		timers:     map[string]*timer{},
	}
}

type emitter struct {
	registerer prometheus.Registerer

	l        sync.Mutex
	counters map[string]*counter
	timers   map[string]*timer
}

func (e *emitter) Counter(name, help string, labels ...string) Counter {
	e.l.Lock()
	defer e.l.Unlock()

	if c, ok := e.counters[name]; ok {
		return c
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)
	e.registerer.MustRegister(vec)

	c := &counter{name: name, vec: vec}
	e.counters[name] = c
	return c
}

func (e *emitter) Timer(name, help string) Timer {
	e.l.Lock()
	defer e.l.Unlock()

	if t, ok := e.timers[name]; ok {
		return t
	}

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1},
	})
	e.registerer.MustRegister(histogram)

	t := &timer{name: name, histogram: histogram}
	e.timers[name] = t
	return t
}

func NewNullEmitter() *nullEmitter {
	return &nullEmitter{}
}

type nullEmitter struct{}

func (e *nullEmitter) Counter(name, help string, labels ...string) Counter {
	return &nullCounter{name: name}
}

func (e *nullEmitter) Timer(name, help string) Timer {
	return &nullTimer{}
}
