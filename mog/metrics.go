package mog

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts session activity. A nil *Metrics is a valid no-op sink,
// so library users who do not scrape pay nothing.
type Metrics struct {
	completions *prometheus.CounterVec
	generators  *prometheus.CounterVec
	decodes     prometheus.Counter
	decodeFlips prometheus.Histogram
}

// NewMetrics builds the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mog_octad_completions_total",
			Help: "Octad completion attempts by result.",
		}, []string{"result"}),
		generators: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mog_generator_applications_total",
			Help: "Generator applications by name.",
		}, []string{"generator"}),
		decodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mog_decodes_total",
			Help: "Decode operations.",
		}),
		decodeFlips: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mog_decode_flips",
			Help:    "Bits flipped per decode.",
			Buckets: []float64{0, 1, 2, 3, 4},
		}),
	}
	reg.MustRegister(m.completions, m.generators, m.decodes, m.decodeFlips)
	return m
}

func (m *Metrics) observeCompletion(err error) {
	if m == nil {
		return
	}
	result := "ok"
	switch {
	case errors.Is(err, ErrAmbiguousInput):
		result = "ambiguous"
	case errors.Is(err, ErrNoCompletion):
		result = "no_completion"
	case err != nil:
		result = "error"
	}
	m.completions.WithLabelValues(result).Inc()
}

func (m *Metrics) observeGenerator(name string) {
	if m == nil {
		return
	}
	m.generators.WithLabelValues(name).Inc()
}

func (m *Metrics) observeDecode(flips int) {
	if m == nil {
		return
	}
	m.decodes.Inc()
	m.decodeFlips.Observe(float64(flips))
}
