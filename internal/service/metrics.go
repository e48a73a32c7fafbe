package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"bugtracker/internal/repository"
)

// Metrics holds the domain metrics of the bug service.
type Metrics struct {
	created prometheus.Counter
	stored  prometheus.GaugeFunc
}

// NewMetrics registers the bug metrics on reg. The stored gauge reads its value
// from repo at scrape time.
func NewMetrics(reg prometheus.Registerer, repo repository.BugRepository) (*Metrics, error) {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bugs_created_total",
			Help: "Total number of bugs created.",
		}),
		stored: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "bugs_stored",
			Help: "Number of bugs currently held in memory.",
		}, func() float64 {
			return float64(repo.Len(context.Background()))
		}),
	}

	for _, c := range []prometheus.Collector{m.created, m.stored} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) incCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
}
