package metrics

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate counterfeiter . Counter

// Counter takes one value per label the counter was created with.
type Counter interface {
	Inc(logger lager.Logger, labelValues ...string)
	IncN(logger lager.Logger, count int, labelValues ...string)
}

type counter struct {
	name string
	vec  *prometheus.CounterVec
}

func (c *counter) Inc(logger lager.Logger, labelValues ...string) {
	c.IncN(logger, 1, labelValues...)
}

func (c *counter) IncN(logger lager.Logger, count int, labelValues ...string) {
	logger = logger.Session("emit-count", lager.Data{
		"name":      c.name,
		"increment": count,
		"labels":    labelValues,
	})

	if count <= 0 {
		return
	}

	metric, err := c.vec.GetMetricWithLabelValues(labelValues...)
	if err != nil {
		logger.Error("failed", err)
		return
	}

	metric.Add(float64(count))
	logger.Debug("emitted")
}

type nullCounter struct {
	name string
}

func (c *nullCounter) Inc(logger lager.Logger, labelValues ...string) {
	c.IncN(logger, 1, labelValues...)
}

func (c *nullCounter) IncN(logger lager.Logger, count int, labelValues ...string) {
	logger.Session("emit-count", lager.Data{
		"name":      c.name,
		"increment": count,
	}).Debug("emitted")
}
