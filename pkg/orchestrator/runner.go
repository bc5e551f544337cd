package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// invocation is one agent scheduled into a phase fan-out.
type invocation struct {
	agent agent.Agent
	input agent.Input
}

// runPhase invokes the given agents concurrently, each bounded by the
// per-agent timeout, the whole phase bounded by twice that. A failing or
// timed-out agent yields an error report; it never aborts the phase.
func runPhase(ctx context.Context, invocations []invocation, agentTimeout time.Duration) map[string]models.AgentReport {
	phaseCtx, cancel := context.WithTimeout(ctx, 2*agentTimeout)
	defer cancel()

	results := make(chan models.AgentReport, len(invocations))
	var wg sync.WaitGroup
	for _, inv := range invocations {
		wg.Add(1)
		go func(inv invocation) {
			defer wg.Done()
			results <- invokeOne(phaseCtx, inv, agentTimeout)
		}(inv)
	}
	wg.Wait()
	close(results)

	reports := make(map[string]models.AgentReport, len(invocations))
	for r := range results {
		reports[r.AgentID] = r
	}
	return reports
}

// invokeOne runs a single agent with its own timeout and converts panics,
// errors, and deadline hits into error reports.
func invokeOne(ctx context.Context, inv invocation, timeout time.Duration) (report models.AgentReport) {
	agentCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			report = errorReport(inv.agent, fmt.Sprintf("agent panicked: %v", r), false)
		}
	}()

	start := time.Now()
	out, err := inv.agent.Invoke(agentCtx, inv.input)
	if err != nil {
		timedOut := agentCtx.Err() == context.DeadlineExceeded
		r := errorReport(inv.agent, err.Error(), timedOut)
		r.Duration = time.Since(start).Milliseconds()
		return r
	}
	return *out
}

func errorReport(a agent.Agent, msg string, timedOut bool) models.AgentReport {
	return models.AgentReport{
		AgentID:  string(a.ID()),
		Quadrant: a.Quadrant(),
		Layer:    a.Layer(),
		Error:    msg,
		TimedOut: timedOut,
	}
}

// AgentType maps an agent id to its evolvable type name, e.g.
// q1_pain_scanner → pain_scanner. Deployed configs are keyed by type.
func AgentType(id agent.ID) string {
	s := string(id)
	if i := strings.Index(s, "_"); i > 0 {
		return s[i+1:]
	}
	return s
}
