package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/galton/engine"

// globalMeter returns the process meter, a no-op until an SDK provider is installed
func globalMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// sessionMetrics are recorded from the session goroutine only
type sessionMetrics struct {
	spawned      metric.Int64Counter
	landed       metric.Int64Counter
	deferred     metric.Int64Counter
	batches      metric.Int64Counter
	active       metric.Int64Gauge
	stepDuration metric.Float64Histogram
}

func newSessionMetrics(m metric.Meter) (*sessionMetrics, error) {
	sm := &sessionMetrics{}
	var err error

	sm.spawned, err = m.Int64Counter(
		"galton.particles.spawned",
		metric.WithDescription("Total particles dropped onto the board"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	sm.landed, err = m.Int64Counter(
		"galton.particles.landed",
		metric.WithDescription("Total particles counted into a result bin"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating landed counter: %w", err)
	}

	sm.deferred, err = m.Int64Counter(
		"galton.spawn.deferred",
		metric.WithDescription("Spawns postponed because the particle pool was full"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deferred counter: %w", err)
	}

	sm.batches, err = m.Int64Counter(
		"galton.batches.completed",
		metric.WithDescription("Batches whose every particle has landed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batches counter: %w", err)
	}

	sm.active, err = m.Int64Gauge(
		"galton.particles.active",
		metric.WithDescription("Particles in flight after the last step"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating active gauge: %w", err)
	}

	sm.stepDuration, err = m.Float64Histogram(
		"galton.step.duration",
		metric.WithDescription("Wall time spent in one board step"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating step duration histogram: %w", err)
	}

	return sm, nil
}

func (sm *sessionMetrics) recordTick(r TickReport, active int, stepTime time.Duration) {
	ctx := context.Background()
	phaseAttr := metric.WithAttributes(attribute.String("phase", r.Phase.String()))

	if r.Spawned {
		sm.spawned.Add(ctx, 1)
	}
	if r.Deferred {
		sm.deferred.Add(ctx, 1)
	}
	if r.Landed > 0 {
		sm.landed.Add(ctx, int64(r.Landed), phaseAttr)
	}
	if r.BatchDone {
		sm.batches.Add(ctx, 1)
	}
	sm.active.Record(ctx, int64(active), phaseAttr)
	sm.stepDuration.Record(ctx, stepTime.Seconds())
}
