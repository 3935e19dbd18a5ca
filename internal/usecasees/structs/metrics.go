package structs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricConst string

const (
	MetricRecordsStored MetricConst = "fuelprice_records_stored_total"
	MetricFetchFailures MetricConst = "fuelprice_fetch_failures_total"
)

func (m MetricConst) ToString() string {
	return string(m)
}

// Metrics counters are labelled by view.
type Metrics struct {
	RecordsStored *prometheus.CounterVec
	FetchFailures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsStored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricRecordsStored.ToString(),
			Help: "Price records written to the store.",
		}, []string{"view"}),
		FetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricFetchFailures.ToString(),
			Help: "Upstream page fetches that failed.",
		}, []string{"view"}),
	}
}
