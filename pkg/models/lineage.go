package models

import "time"

// Tier is the storage class of a data item, ordered hot → frozen.
type Tier string

// Tier values.
const (
	TierHot    Tier = "hot"
	TierWarm   Tier = "warm"
	TierCold   Tier = "cold"
	TierFrozen Tier = "frozen"
)

// tierOrder maps tiers to their position in the cooling sequence.
var tierOrder = map[Tier]int{TierHot: 0, TierWarm: 1, TierCold: 2, TierFrozen: 3}

// Next returns the next cooler tier, or the same tier for frozen.
func (t Tier) Next() Tier {
	switch t {
	case TierHot:
		return TierWarm
	case TierWarm:
		return TierCold
	case TierCold:
		return TierFrozen
	default:
		return t
	}
}

// ColderThan reports whether t is strictly cooler than other.
func (t Tier) ColderThan(other Tier) bool {
	return tierOrder[t] > tierOrder[other]
}

// SourceType classifies the producer of a data item.
type SourceType string

// SourceType values.
const (
	SourceSensor    SourceType = "sensor"
	SourceProcessor SourceType = "processor"
	SourceEvent     SourceType = "event"
	SourceManual    SourceType = "manual"
)

// LineageRecord is the provenance metadata of one produced data item, as
// exchanged between the lineage store and the lifecycle agent.
type LineageRecord struct {
	DataID        string     `json:"data_id"`
	Source        string     `json:"source"`
	SourceType    SourceType `json:"source_type"`
	CreatedAt     time.Time  `json:"created_at"`
	LastAccessed  time.Time  `json:"last_accessed"`
	CurrentTier   Tier       `json:"current_tier"`
	Dependencies  []string   `json:"dependencies,omitempty"`
	Consumers     []string   `json:"consumers,omitempty"`
	QualityScore  *float64   `json:"quality_score,omitempty"`
	SchemaVersion int        `json:"schema_version"`
}

// QualityIssue is one finding from the hourly quality check.
type QualityIssue struct {
	DataID     string `json:"data_id"`
	Rule       string `json:"rule"`
	Detail     string `json:"detail"`
	Repairable bool   `json:"repairable"`
}

// Alert is raised by the lifecycle agent for non-repairable quality issues
// and meridian back-pressure conditions.
type Alert struct {
	Type      string    `json:"type"` // "quality" | "backpressure" | "error_rate" | "latency"
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
