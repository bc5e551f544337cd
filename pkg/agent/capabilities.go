package agent

import (
	"context"
	"time"
)

// The interfaces below are the capabilities the core consumes from external
// collaborators. The core never implements them; nil implementations are
// valid and agents degrade to their built-in heuristics.

// TextAnalyzer is the opaque LLM capability: free-text analysis returning
// labeled scores. Implementations live outside the core.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string, labels []string) (map[string]float64, error)
}

// Embedder is the opaque embedding capability.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// AnalyticsResult is a platform driver's engagement report for an item.
type AnalyticsResult struct {
	ItemID  string
	Metrics map[string]float64
	AsOf    time.Time
}

// PlatformDriver is the scraping/publishing capability exposed by each
// platform integration.
type PlatformDriver interface {
	Authenticate(ctx context.Context) error
	FetchContent(ctx context.Context, since time.Time) ([]ContentItem, error)
	FetchAnalytics(ctx context.Context, itemIDs []string) ([]AnalyticsResult, error)
	Publish(ctx context.Context, item ContentItem) (string, error)
}
