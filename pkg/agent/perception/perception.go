// Package perception implements the four P0 agents. Each scans platform
// content for one quadrant's signal kind (pain, emotion, trend, scene) using
// token heuristics weighted by content length, recency, and source tier. An
// optional text analyzer blends labeled scores into the heuristic base.
// Agents are pure: identical input, config, snapshot, and analyzer responses
// produce identical signals.
package perception

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackeyunjie/growthd/pkg/agent"
	"github.com/jackeyunjie/growthd/pkg/models"
)

// signalID builds a deterministic id from the producing agent and item.
func signalID(agentID agent.ID, sessionID, itemID string) string {
	return fmt.Sprintf("%s:%s:%s", agentID, sessionID, itemID)
}

// tokenize lowercases and splits text into word tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

// matchTokens returns the vocabulary tokens present in the text, sorted for
// deterministic keyword order.
func matchTokens(text string, vocab []string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, tok := range vocab {
		if strings.Contains(lower, tok) {
			hits = append(hits, tok)
		}
	}
	sort.Strings(hits)
	return hits
}

// lengthFactor rewards substantial content, saturating at 400 runes.
func lengthFactor(text string) float64 {
	n := len([]rune(text))
	if n >= 400 {
		return 1.0
	}
	return float64(n) / 400.0
}

// recencyFactor decays linearly to zero over the horizon. decay is the
// per-day fraction lost (config "recency_decay").
func recencyFactor(publishedAt, now time.Time, decay float64) float64 {
	if publishedAt.IsZero() || decay <= 0 {
		return 1.0
	}
	days := now.Sub(publishedAt).Hours() / 24
	f := 1.0 - days*decay
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// sourceTierFactor weights items by how trustworthy their producer class is.
func sourceTierFactor(st models.SourceType) float64 {
	switch st {
	case models.SourceSensor:
		return 1.0
	case models.SourceProcessor:
		return 0.9
	case models.SourceEvent:
		return 0.8
	default:
		return 0.7
	}
}

// clampScore bounds a raw score to the 0–100 signal scale.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// analyzerBoost asks the optional analyzer to score the text for one label
// and converts its 0-1 score into up to 20 base points. A nil analyzer or an
// analyzer error leaves the heuristic base untouched.
func analyzerBoost(ctx context.Context, analyzer agent.TextAnalyzer, text, label string) float64 {
	if analyzer == nil {
		return 0
	}
	scores, err := analyzer.Analyze(ctx, text, []string{label})
	if err != nil {
		return 0
	}
	return scores[label] * 20
}

// threshold resolves the effective signal floor: the learning state's value
// wins over the agent's configured default.
func threshold(in agent.Input, learningKey, configKey string) float64 {
	if ls := in.Snapshot.LearningState; ls != nil && ls.P0Thresholds != nil {
		if v, ok := ls.P0Thresholds[learningKey]; ok {
			return v
		}
	}
	return in.Config[configKey]
}
