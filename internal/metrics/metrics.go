// Package metrics exposes Prometheus collectors fed by engine lifecycle hooks.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/twoway/pkg/domain"
)

// Collectors groups the engine metrics.
type Collectors struct {
	Steps           *prometheus.CounterVec
	SymbolsEmitted  prometheus.Counter
	Initializations prometheus.Counter
	HeadPosition    prometheus.Gauge
}

// New creates the collectors without registering them.
func New() *Collectors {
	return &Collectors{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twoway_steps_total",
				Help: "Total number of step attempts by outcome",
			},
			[]string{"outcome"},
		),
		SymbolsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "twoway_symbols_emitted_total",
			Help: "Total number of non-silent output symbols",
		}),
		Initializations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "twoway_initializations_total",
			Help: "Total number of engine initializations",
		}),
		HeadPosition: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "twoway_head_position",
			Help: "Head index into the framed tape after the last event",
		}),
	}
}

// Register adds every collector to reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Steps, c.SymbolsEmitted, c.Initializations, c.HeadPosition} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks that update the collectors.
func (c *Collectors) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInitialize: func(ctx context.Context, e *domain.InitEvent) {
			c.Initializations.Inc()
			c.HeadPosition.Set(0)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			c.Steps.WithLabelValues(e.Outcome.Kind.String()).Inc()
			if e.Outcome.Kind == domain.Transitioned && e.Outcome.Emitted.Present {
				c.SymbolsEmitted.Inc()
			}
			c.HeadPosition.Set(float64(e.Head))
		},
	}
}
