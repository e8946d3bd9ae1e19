package spreadsheet

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/telemetry/metrics"
)

// InstrumentedStore records call durations of the wrapped store.
type InstrumentedStore struct {
	store   Store
	metrics *metrics.Manager
}

func NewInstrumentedStore(store Store, metricsManager *metrics.Manager) *InstrumentedStore {
	return &InstrumentedStore{
		store:   store,
		metrics: metricsManager,
	}
}

func (s *InstrumentedStore) Get(ctx context.Context, rng string) ([][]string, error) {
	defer s.observe("get", time.Now())
	rows, err := s.store.Get(ctx, rng)
	if err != nil {
		log.Errorf("store get [%s]: %s", rng, err)
	} else {
		log.Tracef("store get [%s]: %d rows", rng, len(rows))
	}
	return rows, err
}

func (s *InstrumentedStore) Append(ctx context.Context, rng string, row []string) error {
	defer s.observe("append", time.Now())
	err := s.store.Append(ctx, rng, row)
	if err != nil {
		log.Errorf("store append [%s]: %s", rng, err)
	}
	return err
}

func (s *InstrumentedStore) Update(ctx context.Context, rng string, values [][]string) error {
	defer s.observe("update", time.Now())
	err := s.store.Update(ctx, rng, values)
	if err != nil {
		log.Errorf("store update [%s]: %s", rng, err)
	}
	return err
}

func (s *InstrumentedStore) observe(op string, begin time.Time) {
	s.metrics.HistStoreCallDuration.
		With(prometheus.Labels{"op": op}).
		Observe(time.Since(begin).Seconds())
}
