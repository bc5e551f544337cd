// Package synthesis combines same-cycle perception signals across quadrants
// into cross-quadrant opportunity signals. Three fixed rules are applied:
// pain+trend, emotion+scene, and pain+emotion. Output is filtered by the
// learning state's confidence floor and ordered by confidence (descending),
// then signal id, so identical inputs always synthesize identically.
package synthesis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackeyunjie/growthd/pkg/models"
)

// Engine synthesizes cross-quadrant signals. Stateless; safe for concurrent use.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a synthesis engine.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Synthesize runs all rules over one cycle's signals, grouped by kind, and
// returns the surviving cross-quadrant signals.
func (e *Engine) Synthesize(signals []models.Signal, state *models.LearningState) []models.CrossQuadrantSignal {
	byKind := make(map[models.SignalKind][]models.Signal)
	for _, s := range signals {
		byKind[s.Kind] = append(byKind[s.Kind], s)
	}

	var out []models.CrossQuadrantSignal
	out = append(out, e.painTrend(byKind[models.SignalKindPain], byKind[models.SignalKindTrend])...)
	out = append(out, e.emotionScene(byKind[models.SignalKindEmotion], byKind[models.SignalKindScene])...)
	out = append(out, e.painEmotion(byKind[models.SignalKindPain], byKind[models.SignalKindEmotion])...)

	minConf := state.MinConfidence(0.7)
	filtered := out[:0]
	for _, cs := range out {
		if cs.Confidence >= minConf {
			filtered = append(filtered, cs)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Confidence != filtered[j].Confidence {
			return filtered[i].Confidence > filtered[j].Confidence
		}
		return filtered[i].SignalID < filtered[j].SignalID
	})
	return filtered
}

// painTrend pairs pain and trend signals that share at least one keyword.
// Confidence grows with keyword overlap; a pain score above 80 makes the
// opportunity critical.
func (e *Engine) painTrend(pains, trends []models.Signal) []models.CrossQuadrantSignal {
	var out []models.CrossQuadrantSignal
	for i := range pains {
		for j := range trends {
			overlap := pains[i].KeywordOverlap(&trends[j])
			if overlap < 1 {
				continue
			}
			conf := 0.5 + 0.2*float64(overlap)
			if conf > 1.0 {
				conf = 1.0
			}
			prio := models.PriorityHigh
			if pains[i].Score > 80 {
				prio = models.PriorityCritical
			}
			out = append(out, e.build(models.CrossPainTrend, conf, prio,
				[]models.Quadrant{models.QuadrantQ1, models.QuadrantQ3},
				[]string{pains[i].SignalID, trends[j].SignalID},
				"create content that solves the pain while riding the trend"))
		}
	}
	return out
}

// emotionScene pairs a high-intensity emotion (>70) with each scene signal.
func (e *Engine) emotionScene(emotions, scenes []models.Signal) []models.CrossQuadrantSignal {
	var out []models.CrossQuadrantSignal
	for i := range emotions {
		intensity := payloadFloat(&emotions[i], "intensity")
		if intensity <= 70 {
			continue
		}
		for j := range scenes {
			conf := intensity/100 + 0.2
			if conf > 1.0 {
				conf = 1.0
			}
			out = append(out, e.build(models.CrossEmotionScene, conf, models.PriorityHigh,
				[]models.Quadrant{models.QuadrantQ2, models.QuadrantQ4},
				[]string{emotions[i].SignalID, scenes[j].SignalID},
				"stage the emotional moment inside its natural scene"))
		}
	}
	return out
}

// painEmotion pairs a pain with an emotion when the emotion's trigger token
// appears in the pain's text, or the emotion's intensity exceeds 75.
func (e *Engine) painEmotion(pains, emotions []models.Signal) []models.CrossQuadrantSignal {
	var out []models.CrossQuadrantSignal
	for i := range pains {
		painText := strings.ToLower(payloadString(&pains[i], "text"))
		for j := range emotions {
			trigger := strings.ToLower(payloadString(&emotions[j], "trigger"))
			intensity := payloadFloat(&emotions[j], "intensity")
			if !(trigger != "" && strings.Contains(painText, trigger)) && intensity <= 75 {
				continue
			}
			conf := 0.6 + 0.3*intensity/100
			if conf > 1.0 {
				conf = 1.0
			}
			out = append(out, e.build(models.CrossPainEmotion, conf, models.PriorityHigh,
				[]models.Quadrant{models.QuadrantQ1, models.QuadrantQ2},
				[]string{pains[i].SignalID, emotions[j].SignalID},
				"address the pain with messaging that channels the emotion"))
		}
	}
	return out
}

func (e *Engine) build(t models.CrossSignalType, conf float64, prio models.Priority,
	quadrants []models.Quadrant, rawIDs []string, action string) models.CrossQuadrantSignal {
	return models.CrossQuadrantSignal{
		SignalID:          fmt.Sprintf("%s:%s", t, strings.Join(rawIDs, "+")),
		SourceQuadrants:   quadrants,
		SignalType:        t,
		Priority:          prio,
		Confidence:        conf,
		RawSignalIDs:      rawIDs,
		RecommendedAction: action,
		TargetLayer:       models.LayerP1,
		CreatedAt:         e.now().UTC(),
	}
}

func payloadFloat(s *models.Signal, field string) float64 {
	if v, ok := s.Payload[field].(float64); ok {
		return v
	}
	return 0
}

func payloadString(s *models.Signal, field string) string {
	if v, ok := s.Payload[field].(string); ok {
		return v
	}
	return ""
}
