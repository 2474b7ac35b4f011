package relsdk

import (
	"log"
	"sync"
)

// ──────────────────────────────────────────────
// Feature Registry — relationship-management capability catalog
// ──────────────────────────────────────────────

// FeaturePriority is the rollout priority of a capability.
type FeaturePriority string

const (
	PriorityLow    FeaturePriority = "low"
	PriorityMedium FeaturePriority = "medium"
	PriorityHigh   FeaturePriority = "high"
)

// Feature names in the seed catalog.
const (
	FeatureSmartContactMatching    = "smart_contact_matching"
	FeatureGoalOptimization        = "goal_optimization"
	FeatureConversationAnalysis    = "conversation_analysis"
	FeatureIntroductionSuggestions = "introduction_suggestions"
)

// Feature describes a toggleable relationship-management capability.
type Feature struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Enabled     bool            `json:"enabled"`
	Priority    FeaturePriority `json:"priority"`
}

// FeatureRegistry holds the capability catalog for one engine instance.
// Mutation (SetFeatureStatus) is expected from a single control goroutine;
// concurrent callers must serialize externally.
type FeatureRegistry struct {
	mu       sync.RWMutex
	features map[string]*Feature
	order    []string
}

// NewFeatureRegistry creates a registry populated with the seed catalog.
// All features start enabled.
func NewFeatureRegistry() *FeatureRegistry {
	r := &FeatureRegistry{features: make(map[string]*Feature)}
	for _, f := range seedFeatures() {
		r.features[f.Name] = f
		r.order = append(r.order, f.Name)
	}
	return r
}

func seedFeatures() []*Feature {
	return []*Feature{
		{
			Name:        FeatureSmartContactMatching,
			Description: "Match mentioned people against the user's contact graph",
			Enabled:     true,
			Priority:    PriorityHigh,
		},
		{
			Name:        FeatureGoalOptimization,
			Description: "Adjust goal priorities and timelines from progress signals",
			Enabled:     true,
			Priority:    PriorityMedium,
		},
		{
			Name:        FeatureConversationAnalysis,
			Description: "Extract sentiment, topics and action items from message history",
			Enabled:     true,
			Priority:    PriorityHigh,
		},
		{
			Name:        FeatureIntroductionSuggestions,
			Description: "Draft introduction messages between two contacts",
			Enabled:     true,
			Priority:    PriorityMedium,
		},
	}
}

// add appends an extension feature to the catalog. Seed features are fixed;
// this exists for script classifiers only.
func (r *FeatureRegistry) add(f Feature) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.features[f.Name]; exists {
		return
	}
	copied := f
	r.features[f.Name] = &copied
	r.order = append(r.order, f.Name)
}

// ListFeatures returns all registered features in insertion order.
// Returned values are copies; mutating them does not affect the registry.
func (r *FeatureRegistry) ListFeatures() []Feature {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Feature, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, *r.features[name])
	}
	return list
}

// Get returns a copy of the named feature, or false if unknown.
func (r *FeatureRegistry) Get(name string) (Feature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.features[name]
	if !ok {
		return Feature{}, false
	}
	return *f, true
}

// IsEnabled reports whether the named feature exists and is enabled.
func (r *FeatureRegistry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.features[name]
	return ok && f.Enabled
}

// SetFeatureStatus flips the enabled flag of the named feature.
// Unknown names are silently ignored — callers toggling stale identifiers
// must not break the chat loop.
func (r *FeatureRegistry) SetFeatureStatus(name string, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.features[name]
	if !ok {
		return
	}
	f.Enabled = enabled
	log.Printf("[FeatureRegistry] Feature %s %s", name, enabledWord(enabled))
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
