package meridian

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeyunjie/growthd/pkg/config"
	"github.com/jackeyunjie/growthd/pkg/models"
)

func newTestBus(capacity int) *Bus {
	cfg := *config.DefaultMeridianConfig()
	cfg.Capacity = capacity
	cfg.PublishTimeout = 10 * time.Millisecond
	return NewBus(cfg, nil)
}

func TestPublish_DeliversInOrder(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(10)

	ch, unsub := bus.Subscribe(MeridianData, "orchestrator")
	defer unsub()

	bus.Publish(ctx, MeridianData, "signal", map[string]interface{}{"n": 1}, models.PriorityMedium)
	bus.Publish(ctx, MeridianData, "signal", map[string]interface{}{"n": 2}, models.PriorityMedium)
	bus.Publish(ctx, MeridianData, "signal", map[string]interface{}{"n": 3}, models.PriorityMedium)

	for want := 1; want <= 3; want++ {
		pkt := <-ch
		assert.Equal(t, MeridianData, pkt.Meridian)
		assert.Equal(t, "signal", pkt.Topic)
		assert.Equal(t, models.PriorityMedium, pkt.Priority)
		payload, ok := pkt.Payload.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, want, payload["n"], "per-subscriber FIFO ordering")
		bus.Ack(MeridianData)
	}

	stats := bus.Stats(MeridianData)
	assert.EqualValues(t, 3, stats.Sent)
	assert.EqualValues(t, 3, stats.Received)
	assert.Zero(t, stats.Dropped)
}

func TestPublish_NoSubscribersIsNoOp(t *testing.T) {
	bus := newTestBus(10)
	bus.Publish(context.Background(), MeridianControl, "command", nil, models.PriorityHigh)

	stats := bus.Stats(MeridianControl)
	assert.Zero(t, stats.Sent)
	assert.Zero(t, stats.Dropped)
}

func TestPublish_FullQueueDropsAfterTimeout(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(2)

	ch, unsub := bus.Subscribe(MeridianData, "lifecycle")
	defer unsub()

	// Fill the queue, then publish into a full one with nobody draining.
	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)
	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)
	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)

	stats := bus.Stats(MeridianData)
	assert.EqualValues(t, 2, stats.Sent)
	assert.EqualValues(t, 1, stats.Dropped, "at-most-once: the blocked packet is dropped")
	assert.EqualValues(t, 1, stats.Blockages)
	assert.Equal(t, 2, stats.QueueSize)
	assert.InDelta(t, 1.0/3.0, stats.ErrorRate(), 1e-9)

	// The queued packets are still deliverable.
	<-ch
	<-ch
}

func TestPublish_BlockedSubscribersShareOneDeadline(t *testing.T) {
	ctx := context.Background()
	cfg := *config.DefaultMeridianConfig()
	cfg.Capacity = 1
	cfg.PublishTimeout = 50 * time.Millisecond
	bus := NewBus(cfg, nil)

	_, unsub1 := bus.Subscribe(MeridianData, "node-a")
	defer unsub1()
	_, unsub2 := bus.Subscribe(MeridianData, "node-b")
	defer unsub2()

	// Saturate both queues, then publish with nobody draining.
	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)

	start := time.Now()
	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*cfg.PublishTimeout,
		"the publisher is held one timeout total, not one per blocked subscriber")

	stats := bus.Stats(MeridianData)
	assert.EqualValues(t, 2, stats.Dropped, "both blocked copies are dropped")
	assert.EqualValues(t, 2, stats.Blockages)
}

func TestPublish_TopicFiltering(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(10)

	signals, unsubSignals := bus.Subscribe(MeridianData, "synthesis", "signal")
	defer unsubSignals()
	feedback, unsubFeedback := bus.Subscribe(MeridianData, "learning", "feedback")
	defer unsubFeedback()
	all, unsubAll := bus.Subscribe(MeridianData, "monitor")
	defer unsubAll()

	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)
	bus.Publish(ctx, MeridianData, "feedback", nil, models.PriorityLow)

	pkt := <-signals
	assert.Equal(t, "signal", pkt.Topic)
	select {
	case pkt = <-signals:
		t.Fatalf("signal subscriber received off-topic packet %q", pkt.Topic)
	default:
	}

	pkt = <-feedback
	assert.Equal(t, "feedback", pkt.Topic)

	// The unrestricted subscriber sees both, in publish order.
	assert.Equal(t, "signal", (<-all).Topic)
	assert.Equal(t, "feedback", (<-all).Topic)

	assert.EqualValues(t, 4, bus.Stats(MeridianData).Sent)
}

func TestSendCommand_TargetReachesOnlyThatNode(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(10)

	scheduler, unsub1 := bus.Subscribe(MeridianControl, "scheduler")
	defer unsub1()
	lifecycle, unsub2 := bus.Subscribe(MeridianControl, "lifecycle")
	defer unsub2()

	bus.SendCommand(ctx, "pause_sync", map[string]interface{}{"reason": "maintenance"}, "scheduler")

	pkt := <-scheduler
	assert.Equal(t, "pause_sync", pkt.Topic)
	assert.Equal(t, "scheduler", pkt.Target)
	assert.Equal(t, models.PriorityHigh, pkt.Priority)
	params, ok := pkt.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "maintenance", params["reason"])

	select {
	case pkt = <-lifecycle:
		t.Fatalf("untargeted node received command %q", pkt.Topic)
	default:
	}
	assert.EqualValues(t, 1, bus.Stats(MeridianControl).Sent)
}

func TestSendCommand_EmptyTargetMulticasts(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(10)

	ch1, unsub1 := bus.Subscribe(MeridianControl, "scheduler")
	defer unsub1()
	ch2, unsub2 := bus.Subscribe(MeridianControl, "lifecycle")
	defer unsub2()

	bus.SendCommand(ctx, "resync", nil, "")

	assert.Equal(t, "resync", (<-ch1).Topic)
	assert.Equal(t, "resync", (<-ch2).Topic)
	assert.EqualValues(t, 2, bus.Stats(MeridianControl).Sent)
}

func TestPublish_EachSubscriberGetsACopy(t *testing.T) {
	ctx := context.Background()
	bus := newTestBus(10)

	ch1, unsub1 := bus.Subscribe(MeridianData, "node-a")
	defer unsub1()
	ch2, unsub2 := bus.Subscribe(MeridianData, "node-b")
	defer unsub2()

	bus.Publish(ctx, MeridianData, "signal", nil, models.PriorityMedium)

	pkt1 := <-ch1
	pkt2 := <-ch2
	assert.Equal(t, pkt1.PacketID, pkt2.PacketID)
	assert.EqualValues(t, 2, bus.Stats(MeridianData).Sent)
}

func TestSubscribe_UnsubscribeClosesChannel(t *testing.T) {
	bus := newTestBus(10)

	ch, unsub := bus.Subscribe(MeridianTemporal, "clock")
	unsub()
	unsub() // idempotent

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, bus.Stats(MeridianTemporal).Subscribers)
}

func TestStart_BroadcastsTimeSync(t *testing.T) {
	cfg := *config.DefaultMeridianConfig()
	cfg.TimeSyncInterval = 10 * time.Millisecond
	bus := NewBus(cfg, nil)

	ch, unsub := bus.Subscribe(MeridianTemporal, "clock")
	defer unsub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)
	defer bus.Stop()

	select {
	case pkt := <-ch:
		assert.Equal(t, "time_sync", pkt.Topic)
		assert.Equal(t, models.PriorityLow, pkt.Priority)
		payload, ok := pkt.Payload.(map[string]interface{})
		require.True(t, ok)
		ts, ok := payload["now"].(string)
		require.True(t, ok)
		_, err := time.Parse(time.RFC3339Nano, ts)
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("no time_sync broadcast within 1s")
	}
}
