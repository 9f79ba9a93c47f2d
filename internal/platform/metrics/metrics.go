package metrics

import (
	"context"
	"net/http"

	"petpal/internal/ports/kv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores de la app. Todos los métodos aceptan receptor nil.
//
// Métricas:
//   - petpal_store_operations_total{op,result}
//   - petpal_record_decode_failures_total{kind}
//   - petpal_points_awarded_total{event}
//   - petpal_logins_total{user_type}
type Metrics struct {
	StoreOps       *prometheus.CounterVec
	DecodeFailures *prometheus.CounterVec
	PointsAwarded  *prometheus.CounterVec
	Logins         *prometheus.CounterVec
}

// New registra las métricas en reg. Usar un registry propio en tests para evitar
// "duplicate metrics collector registration".
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StoreOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petpal_store_operations_total",
			Help: "Key-value store operations by op and result",
		}, []string{"op", "result"}),
		DecodeFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petpal_record_decode_failures_total",
			Help: "Stored records that failed to decode or validate",
		}, []string{"kind"}),
		PointsAwarded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petpal_points_awarded_total",
			Help: "Paw points awarded by reward event",
		}, []string{"event"}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "petpal_logins_total",
			Help: "Logins split by new or returning user",
		}, []string{"user_type"}),
	}
}

func (m *Metrics) ObserveStore(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOps.WithLabelValues(op, result).Inc()
}

func (m *Metrics) DecodeFailure(kind string) {
	if m == nil {
		return
	}
	m.DecodeFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) Award(event string, points int) {
	if m == nil || points <= 0 {
		return
	}
	m.PointsAwarded.WithLabelValues(event).Add(float64(points))
}

func (m *Metrics) Login(newUser bool) {
	if m == nil {
		return
	}
	t := "returning"
	if newUser {
		t = "new"
	}
	m.Logins.WithLabelValues(t).Inc()
}

// Handler expone las métricas de g (normalmente el mismo registry de New).
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type instrumentedStore struct {
	next kv.Store
	m    *Metrics
}

// InstrumentStore cuenta cada operación del store.
func InstrumentStore(next kv.Store, m *Metrics) kv.Store {
	if m == nil {
		return next
	}
	return &instrumentedStore{next: next, m: m}
}

func (s *instrumentedStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.next.Get(ctx, key)
	s.m.ObserveStore("get", err)
	return v, ok, err
}

func (s *instrumentedStore) Set(ctx context.Context, key, value string) error {
	err := s.next.Set(ctx, key, value)
	s.m.ObserveStore("set", err)
	return err
}

func (s *instrumentedStore) Remove(ctx context.Context, key string) error {
	err := s.next.Remove(ctx, key)
	s.m.ObserveStore("remove", err)
	return err
}
