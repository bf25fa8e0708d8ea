package telemetry

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gdmcp/internal/core/domain"
)

// Observer receives operation lifecycle events, e.g. for export.
type Observer interface {
	Started(name string)
	Finished(metric domain.OperationMetric)
}

type record struct {
	seq    uint64
	metric domain.OperationMetric
}

// MetricStore implements ports.Metrics in memory.
// Finished metrics are pruned per operation name to the retention count, oldest start first.
type MetricStore struct {
	clock     clockwork.Clock
	retention int
	observer  Observer

	mu      sync.Mutex
	seq     uint64
	records map[string]*record
}

// NewMetricStore creates a store keeping at most retention metrics per operation name.
// A non-positive retention uses domain.DefaultMetricsRetention. observer may be nil.
func NewMetricStore(clock clockwork.Clock, retention int, observer Observer) *MetricStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if retention <= 0 {
		retention = domain.DefaultMetricsRetention
	}
	return &MetricStore{
		clock:     clock,
		retention: retention,
		observer:  observer,
		records:   make(map[string]*record),
	}
}

// Start records a started operation and returns its identifier.
func (s *MetricStore) Start(name string) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.seq++
	s.records[id] = &record{
		seq: s.seq,
		metric: domain.OperationMetric{
			ID:     id,
			Name:   name,
			Start:  s.clock.Now(),
			Status: domain.OperationStarted,
		},
	}
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.Started(name)
	}
	return id
}

// End finishes the operation. It returns false for an unknown or already finished id.
func (s *MetricStore) End(id string, err error) (domain.OperationMetric, bool) {
	s.mu.Lock()
	r, ok := s.records[id]
	if !ok || r.metric.Status.IsTerminal() {
		s.mu.Unlock()
		return domain.OperationMetric{}, false
	}

	m := &r.metric
	m.End = s.clock.Now()
	m.Duration = m.End.Sub(m.Start)
	m.Status = domain.OperationCompleted
	if err != nil {
		m.Status = domain.OperationFailed
		m.Error = err.Error()
	}
	out := *m
	s.pruneLocked(m.Name)
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.Finished(out)
	}
	return out, true
}

// Stats summarizes finished metrics for name. It returns false when there are none.
func (s *MetricStore) Stats(name string) (domain.OperationStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.OperationStats{Name: name}
	var total, succeeded int64
	for _, r := range s.records {
		m := r.metric
		if m.Name != name || !m.Status.IsTerminal() {
			continue
		}
		if stats.Count == 0 || m.Duration < stats.MinDuration {
			stats.MinDuration = m.Duration
		}
		stats.MaxDuration = max(stats.MaxDuration, m.Duration)
		total += int64(m.Duration)
		if m.Status == domain.OperationCompleted {
			succeeded++
		}
		stats.Count++
	}
	if stats.Count == 0 {
		return domain.OperationStats{}, false
	}

	stats.AvgDuration = time.Duration(total / int64(stats.Count))
	stats.SuccessRate = float64(succeeded) / float64(stats.Count) * 100
	return stats, true
}

// Snapshot returns every retained metric ordered by start.
func (s *MetricStore) Snapshot() []domain.OperationMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked(func(*record) bool { return true })
}

// Prune keeps at most keep finished metrics per operation name. In-flight metrics are never evicted.
func (s *MetricStore) Prune(keep int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make(map[string]struct{})
	for _, r := range s.records {
		names[r.metric.Name] = struct{}{}
	}
	for name := range names {
		s.pruneNameLocked(name, keep)
	}
}

func (s *MetricStore) pruneLocked(name string) {
	s.pruneNameLocked(name, s.retention)
}

func (s *MetricStore) pruneNameLocked(name string, keep int) {
	finished := s.sortedLocked(func(r *record) bool {
		return r.metric.Name == name && r.metric.Status.IsTerminal()
	})
	for i := 0; i < len(finished)-max(keep, 0); i++ {
		delete(s.records, finished[i].ID)
	}
}

func (s *MetricStore) sortedLocked(keep func(*record) bool) []domain.OperationMetric {
	selected := make([]*record, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			selected = append(selected, r)
		}
	}
	slices.SortFunc(selected, func(a, b *record) int {
		if c := a.metric.Start.Compare(b.metric.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]domain.OperationMetric, len(selected))
	for i, r := range selected {
		out[i] = r.metric
	}
	return out
}
