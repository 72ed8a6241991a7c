package metrics

import (
	"errors"

	"github.com/Borislavv/go-sharded-map/pkg/prometheus/metrics/keyword"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var MetricRegisterErrorMessage = "failed to register metric"

type Meter interface {
	IncEmplace(inserted bool)
	IncFind(hit bool)
	IncErase(removed int)
	SetLength(length int64)
	SetShardFill(min, max int)
}

type Metrics struct {
	emplaceCounter *prometheus.CounterVec
	findCounter    *prometheus.CounterVec
	eraseCounter   prometheus.Counter
	lengthGauge    prometheus.Gauge
	shardMinGauge  prometheus.Gauge
	shardMaxGauge  prometheus.Gauge
}

// New builds and registers the map meters. A nil registerer means the
// default prometheus registry.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		emplaceCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: keyword.MapEmplaceTotalMetricName,
				Help: "Number of TryEmplace calls by outcome.",
			},
			[]string{"result"},
		),
		findCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: keyword.MapFindTotalMetricName,
				Help: "Number of Find calls by outcome.",
			},
			[]string{"result"},
		),
		eraseCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: keyword.MapEraseTotalMetricName,
				Help: "Number of entries removed.",
			},
		),
		lengthGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: keyword.MapLengthMetricName,
				Help: "Approximate number of live entries.",
			},
		),
		shardMinGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: keyword.MapShardFillMinMetricName,
				Help: "Entries in the least filled shard at last sample.",
			},
		),
		shardMaxGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: keyword.MapShardFillMaxMetricName,
				Help: "Entries in the most filled shard at last sample.",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.emplaceCounter,
		m.findCounter,
		m.eraseCounter,
		m.lengthGauge,
		m.shardMinGauge,
		m.shardMaxGauge,
	}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			log.Err(err).Msg(MetricRegisterErrorMessage)
			return nil, errors.New(MetricRegisterErrorMessage)
		}
	}

	return m, nil
}

func (m *Metrics) IncEmplace(inserted bool) {
	result := "existing"
	if inserted {
		result = "inserted"
	}
	m.emplaceCounter.With(prometheus.Labels{"result": result}).Inc()
}

func (m *Metrics) IncFind(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.findCounter.With(prometheus.Labels{"result": result}).Inc()
}

func (m *Metrics) IncErase(removed int) {
	if removed > 0 {
		m.eraseCounter.Add(float64(removed))
	}
}

func (m *Metrics) SetLength(length int64) {
	m.lengthGauge.Set(float64(length))
}

func (m *Metrics) SetShardFill(min, max int) {
	m.shardMinGauge.Set(float64(min))
	m.shardMaxGauge.Set(float64(max))
}
