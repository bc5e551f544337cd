package meridian

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackeyunjie/growthd/ent"
	"github.com/jackeyunjie/growthd/pkg/config"
)

// Flusher periodically snapshots bus counters and writes one
// meridian_metrics row per meridian. Rows carry deltas since the previous
// flush so downstream consumers see per-interval rates.
type Flusher struct {
	bus    *Bus
	client *ent.Client
	cfg    config.MeridianConfig
	logger *slog.Logger

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	prev map[MeridianID]Stats
}

// NewFlusher builds a metrics flusher for the bus.
func NewFlusher(bus *Bus, client *ent.Client, cfg config.MeridianConfig, logger *slog.Logger) *Flusher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flusher{
		bus:    bus,
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "meridian_metrics"),
		prev:   make(map[MeridianID]Stats, len(AllMeridians)),
	}
}

// Start launches the flush loop.
func (f *Flusher) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})

	interval := f.interval()
	go func() {
		defer close(f.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		f.logger.Info("Meridian metrics flusher started", "interval", interval)
		for {
			select {
			case <-runCtx.Done():
				// Final flush so the last interval is not lost.
				f.FlushOnce(context.Background())
				return
			case <-ticker.C:
				f.FlushOnce(runCtx)
			}
		}
	}()
}

// Stop terminates the flush loop and waits for the final flush.
func (f *Flusher) Stop() {
	f.stopOnce.Do(func() {
		if f.cancel != nil {
			f.cancel()
			<-f.done
		}
	})
}

// FlushOnce writes one metrics row per meridian, covering activity since the
// previous flush. Write failures are logged and retried naturally on the
// next tick.
func (f *Flusher) FlushOnce(ctx context.Context) {
	interval := f.interval()
	for _, id := range AllMeridians {
		cur := f.bus.Stats(id)
		prev := f.prev[id]
		f.prev[id] = cur

		sent := cur.Sent - prev.Sent
		received := cur.Received - prev.Received
		dropped := cur.Dropped - prev.Dropped
		blockages := cur.Blockages - prev.Blockages

		var latencyMs float64
		if sent > 0 {
			latencyMs = float64(cur.LatencySum-prev.LatencySum) / float64(sent) / float64(time.Millisecond)
		}
		var errorRate float64
		if attempts := sent + dropped; attempts > 0 {
			errorRate = float64(dropped) / float64(attempts)
		}

		writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := f.client.MeridianMetric.Create().
			SetMeridianID(string(id)).
			SetPacketsSent(sent).
			SetPacketsReceived(received).
			SetPacketsDropped(dropped).
			SetQueueSize(cur.QueueSize).
			SetBlockages(blockages).
			SetThroughputPerSec(float64(sent) / interval.Seconds()).
			SetLatencyMs(latencyMs).
			SetErrorRate(errorRate).
			Save(writeCtx)
		cancel()
		if err != nil {
			f.logger.Error("Failed to flush meridian metrics", "meridian", id, "error", err)
		}
	}
}

func (f *Flusher) interval() time.Duration {
	if f.cfg.MetricsFlushInterval > 0 {
		return f.cfg.MetricsFlushInterval
	}
	return time.Minute
}
