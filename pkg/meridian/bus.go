// Package meridian implements the in-process message bus connecting the
// pipeline layers. Three meridians exist: data (topic-based signal and
// feedback fanout), control (commands, optionally targeted at one node), and
// temporal (time sync broadcasts). Delivery is at-most-once with
// per-subscriber FIFO ordering; a publisher blocks at most the configured
// timeout before undelivered copies are dropped and counted.
package meridian

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// MeridianID names one of the three channels.
type MeridianID string

// MeridianID values.
const (
	MeridianData     MeridianID = "data"
	MeridianControl  MeridianID = "control"
	MeridianTemporal MeridianID = "temporal"
)

// AllMeridians lists the meridian ids in canonical order.
var AllMeridians = []MeridianID{MeridianData, MeridianControl, MeridianTemporal}

// Packet is one message in flight. Target is set only on control commands
// addressed to a single node; empty means every subscriber.
type Packet struct {
	PacketID  string          `json:"packet_id"`
	Meridian  MeridianID      `json:"meridian"`
	Topic     string          `json:"topic"`
	Payload   interface{}     `json:"payload,omitempty"`
	Priority  models.Priority `json:"priority"`
	Target    string          `json:"target,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Stats is one meridian's counter snapshot.
type Stats struct {
	MeridianID  MeridianID
	Sent        int64
	Received    int64
	Dropped     int64
	Blockages   int64
	QueueSize   int
	LatencySum  time.Duration
	Subscribers int
}

// ErrorRate is the dropped share of attempted sends.
func (s Stats) ErrorRate() float64 {
	attempts := s.Sent + s.Dropped
	if attempts == 0 {
		return 0
	}
	return float64(s.Dropped) / float64(attempts)
}

// AvgLatency is the mean per-delivery publish latency.
func (s Stats) AvgLatency() time.Duration {
	if s.Sent == 0 {
		return 0
	}
	return s.LatencySum / time.Duration(s.Sent)
}

type subscriber struct {
	id     string
	nodeID string
	topics map[string]struct{}
	ch     chan Packet
}

// wants reports whether the packet should be delivered to this subscriber:
// the target (if any) must match the node, and the topic must be in the
// subscription set (empty set means all topics).
func (s *subscriber) wants(pkt Packet) bool {
	if pkt.Target != "" && pkt.Target != s.nodeID {
		return false
	}
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[pkt.Topic]
	return ok
}

type meridian struct {
	id MeridianID

	mu   sync.RWMutex
	subs []*subscriber

	sent      atomic.Int64
	received  atomic.Int64
	dropped   atomic.Int64
	blockages atomic.Int64
	latencyNS atomic.Int64
}

// Bus owns the three meridians and the temporal broadcast loop.
type Bus struct {
	cfg       config.MeridianConfig
	logger    *slog.Logger
	meridians map[MeridianID]*meridian

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewBus builds the bus with all three meridians.
func NewBus(cfg config.MeridianConfig, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		cfg:       cfg,
		logger:    logger.With("component", "meridian_bus"),
		meridians: make(map[MeridianID]*meridian, len(AllMeridians)),
		now:       time.Now,
	}
	for _, id := range AllMeridians {
		b.meridians[id] = &meridian{id: id}
	}
	return b
}

// Subscribe attaches a new bounded FIFO queue to the meridian and returns
// its receive channel plus an unsubscribe func. nodeID identifies the
// subscriber for targeted commands; topics restricts delivery to the named
// topics, with none meaning every topic. The channel is closed on
// unsubscribe.
func (b *Bus) Subscribe(id MeridianID, nodeID string, topics ...string) (<-chan Packet, func()) {
	m := b.meridians[id]
	sub := &subscriber{
		id:     uuid.NewString(),
		nodeID: nodeID,
		ch:     make(chan Packet, b.capacity()),
	}
	if len(topics) > 0 {
		sub.topics = make(map[string]struct{}, len(topics))
		for _, topic := range topics {
			sub.topics[topic] = struct{}{}
		}
	}
	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			m.mu.Lock()
			for i, s := range m.subs {
				if s.id == sub.id {
					m.subs = append(m.subs[:i], m.subs[i+1:]...)
					break
				}
			}
			m.mu.Unlock()
			close(sub.ch)
		})
	}
}

// Publish delivers the packet to every subscriber of the meridian whose
// topic set matches. Full subscriber queues share one deadline: the
// publisher is held at most the publish timeout regardless of how many
// queues are blocked; on expiry the undelivered copies are dropped and
// counted. Delivery is at-most-once: dropped packets are not retried.
func (b *Bus) Publish(ctx context.Context, id MeridianID, topic string, payload interface{}, priority models.Priority) {
	b.deliver(ctx, id, Packet{
		PacketID:  uuid.NewString(),
		Meridian:  id,
		Topic:     topic,
		Payload:   payload,
		Priority:  priority,
		CreatedAt: b.now().UTC(),
	})
}

// SendCommand publishes a command packet on the control meridian. An empty
// target multicasts to every control subscriber; otherwise only the node
// with that id receives it. Commands carry high priority.
func (b *Bus) SendCommand(ctx context.Context, command string, params map[string]interface{}, target string) {
	b.deliver(ctx, MeridianControl, Packet{
		PacketID:  uuid.NewString(),
		Meridian:  MeridianControl,
		Topic:     command,
		Payload:   params,
		Priority:  models.PriorityHigh,
		Target:    target,
		CreatedAt: b.now().UTC(),
	})
}

func (b *Bus) deliver(ctx context.Context, id MeridianID, pkt Packet) {
	m := b.meridians[id]

	m.mu.RLock()
	var subs []*subscriber
	for _, sub := range m.subs {
		if sub.wants(pkt) {
			subs = append(subs, sub)
		}
	}
	m.mu.RUnlock()

	if len(subs) == 0 {
		return
	}

	start := b.now()
	var blocked []*subscriber
	for _, sub := range subs {
		select {
		case sub.ch <- pkt:
			m.sent.Add(1)
			m.latencyNS.Add(int64(b.now().Sub(start)))
		default:
			blocked = append(blocked, sub)
		}
	}
	if len(blocked) == 0 {
		return
	}

	// All blocked sends race one shared deadline, so total publish time is
	// bounded by a single timeout however many queues are full.
	m.blockages.Add(int64(len(blocked)))
	expired := make(chan struct{})
	settled := make(chan struct{})
	timer := time.NewTimer(b.publishTimeout())
	go func() {
		select {
		case <-timer.C:
		case <-ctx.Done():
		case <-settled:
		}
		close(expired)
	}()

	var wg sync.WaitGroup
	for _, sub := range blocked {
		wg.Add(1)
		go func(sub *subscriber) {
			defer wg.Done()
			select {
			case sub.ch <- pkt:
				m.sent.Add(1)
				m.latencyNS.Add(int64(b.now().Sub(start)))
			case <-expired:
				m.dropped.Add(1)
				b.logger.Warn("Packet dropped, subscriber queue full",
					"meridian", id, "topic", pkt.Topic, "packet_id", pkt.PacketID)
			}
		}(sub)
	}
	// Waiting keeps per-subscriber FIFO intact for a single publisher.
	wg.Wait()
	close(settled)
	timer.Stop()
}

// Ack records that a subscriber consumed a packet. Receivers call it so the
// received counter tracks actual consumption, not just enqueueing.
func (b *Bus) Ack(id MeridianID) {
	b.meridians[id].received.Add(1)
}

// Stats snapshots one meridian's counters.
func (b *Bus) Stats(id MeridianID) Stats {
	m := b.meridians[id]
	m.mu.RLock()
	queued := 0
	for _, sub := range m.subs {
		queued += len(sub.ch)
	}
	subscribers := len(m.subs)
	m.mu.RUnlock()

	return Stats{
		MeridianID:  id,
		Sent:        m.sent.Load(),
		Received:    m.received.Load(),
		Dropped:     m.dropped.Load(),
		Blockages:   m.blockages.Load(),
		QueueSize:   queued,
		LatencySum:  time.Duration(m.latencyNS.Load()),
		Subscribers: subscribers,
	}
}

// Start launches the temporal broadcast loop. Every time-sync interval a
// time_sync packet is published on the temporal meridian so layers share a
// clock reference.
func (b *Bus) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})

	go func() {
		defer close(b.done)
		ticker := time.NewTicker(b.timeSyncInterval())
		defer ticker.Stop()
		b.logger.Info("Meridian bus started", "time_sync_interval", b.timeSyncInterval())
		for {
			select {
			case <-runCtx.Done():
				return
			case t := <-ticker.C:
				b.Publish(runCtx, MeridianTemporal, "time_sync", map[string]interface{}{
					"now": t.UTC().Format(time.RFC3339Nano),
				}, models.PriorityLow)
			}
		}
	}()
}

// Stop terminates the broadcast loop and waits for it to exit.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		if b.cancel != nil {
			b.cancel()
			<-b.done
		}
		b.logger.Info("Meridian bus stopped")
	})
}

func (b *Bus) capacity() int {
	if b.cfg.Capacity > 0 {
		return b.cfg.Capacity
	}
	return 1000
}

func (b *Bus) publishTimeout() time.Duration {
	if b.cfg.PublishTimeout > 0 && b.cfg.PublishTimeout <= time.Second {
		return b.cfg.PublishTimeout
	}
	return time.Second
}

func (b *Bus) timeSyncInterval() time.Duration {
	if b.cfg.TimeSyncInterval > 0 {
		return b.cfg.TimeSyncInterval
	}
	return time.Minute
}
