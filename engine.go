package relsdk

import (
	"log"
	"time"

	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// Engine — feature-analysis entry point
// ──────────────────────────────────────────────

// EngineConfig configures an Engine.
type EngineConfig struct {
	// Classifiers overrides the built-in keyword lists (nil slices keep defaults).
	Classifiers ClassifierConfig
	// EnrichFn is the optional model capability. No core operation consults
	// it; it is reserved for future enrichment behind the same interfaces.
	EnrichFn EnrichFn
}

// DefaultEngineConfig returns the production baseline: built-in keyword
// lists, no model capability.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{}
}

// EngineStats is a snapshot of per-engine counters.
type EngineStats struct {
	InputAnalyses        int64 `json:"input_analyses"`
	ConversationAnalyses int64 `json:"conversation_analyses"`
	SuggestionsGenerated int64 `json:"suggestions_generated"`
	GoalOptimizations    int64 `json:"goal_optimizations"`
	FailuresSwallowed    int64 `json:"failures_swallowed"`
}

// Engine analyzes user text and conversation history against the
// relationship-management capability catalog. One instance owns its
// Feature Registry; there is no package-level state.
//
// Every public operation degrades to a documented safe default instead of
// returning an error: the chat loop must never fail because analysis did.
// Failures are observable via logs and FailuresSwallowed only.
type Engine struct {
	registry   *FeatureRegistry
	classifier *InputClassifier
	sentiment  *SentimentAnalyzer
	actions    *ActionAnalyzer
	intros     *IntroductionBuilder
	goals      *GoalOptimizer
	scripts    []*scriptRule
	enrichFn   EnrichFn

	inputAnalyses        atomic.Int64
	conversationAnalyses atomic.Int64
	suggestionsGenerated atomic.Int64
	goalOptimizations    atomic.Int64
	failuresSwallowed    atomic.Int64
}

// NewEngine creates an engine with the seed feature catalog.
func NewEngine(config ...EngineConfig) *Engine {
	cfg := DefaultEngineConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	return &Engine{
		registry:   NewFeatureRegistry(),
		classifier: NewInputClassifier(cfg.Classifiers),
		sentiment:  NewSentimentAnalyzer(),
		actions:    NewActionAnalyzer(),
		intros:     NewIntroductionBuilder(),
		goals:      NewGoalOptimizer(),
		enrichFn:   cfg.EnrichFn,
	}
}

// Registry returns the engine's feature registry.
func (e *Engine) Registry() *FeatureRegistry {
	return e.registry
}

// ListFeatures returns the capability catalog in insertion order.
func (e *Engine) ListFeatures() []Feature {
	return e.registry.ListFeatures()
}

// SetFeatureStatus flips a feature's enabled flag. Unknown names are
// silently ignored.
func (e *Engine) SetFeatureStatus(name string, enabled bool) {
	e.registry.SetFeatureStatus(name, enabled)
}

// AnalyzeUserInput classifies free-form user text against the capability
// catalog. The three built-in classifiers fire in fixed order (contact,
// goal, conversation), then any registered script classifiers. Returns an
// empty slice when nothing fires or on internal failure.
//
// Classifiers fire regardless of the registry's enabled flag; the flag
// affects reporting only.
func (e *Engine) AnalyzeUserInput(text string) (analyses []FeatureAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			e.failuresSwallowed.Inc()
			log.Printf("[Engine] AnalyzeUserInput recovered: %v", r)
			analyses = []FeatureAnalysis{}
		}
	}()
	e.inputAnalyses.Inc()

	analyses = e.classifier.Classify(text)
	analyses = append(analyses, e.runScriptRules(text)...)
	return analyses
}

// AnalyzeConversation derives sentiment, key topics, action items and
// relationship strength from a message history. The four signals are
// computed independently; a failure in any of them yields the neutral
// default insight.
func (e *Engine) AnalyzeConversation(messages []ConversationMessage) (insight ConversationInsight) {
	defer func() {
		if r := recover(); r != nil {
			e.failuresSwallowed.Inc()
			log.Printf("[Engine] AnalyzeConversation recovered: %v", r)
			insight = NeutralInsight()
		}
	}()
	e.conversationAnalyses.Inc()

	transcript := Transcript(messages)
	insight = ConversationInsight{
		Sentiment:            e.sentiment.AnalyzeSentiment(transcript),
		KeyTopics:            e.sentiment.ExtractTopics(transcript),
		ActionItems:          e.actions.ExtractActionItems(messages),
		RelationshipStrength: e.actions.RelationshipStrength(messages, time.Now()),
	}
	if insight.KeyTopics == nil {
		insight.KeyTopics = []string{}
	}
	return insight
}

// GenerateIntroductionSuggestions drafts introduction messages from one
// contact to another. On internal failure it returns a single generic
// fallback suggestion.
func (e *Engine) GenerateIntroductionSuggestions(from, to Contact, ctx IntroductionContext) (suggestions []string) {
	defer func() {
		if r := recover(); r != nil {
			e.failuresSwallowed.Inc()
			log.Printf("[Engine] GenerateIntroductionSuggestions recovered: %v", r)
			suggestions = []string{introductionFallback}
		}
	}()
	e.suggestionsGenerated.Inc()

	return e.intros.Build(from, to, ctx)
}

// OptimizeGoals recomputes priority and timeline suggestions per goal.
// On internal failure the input is returned unchanged.
func (e *Engine) OptimizeGoals(goals []Goal, behavior BehaviorSignals) (optimized []Goal) {
	defer func() {
		if r := recover(); r != nil {
			e.failuresSwallowed.Inc()
			log.Printf("[Engine] OptimizeGoals recovered: %v", r)
			optimized = goals
		}
	}()
	e.goalOptimizations.Inc()

	return e.goals.Optimize(goals, behavior, time.Now())
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		InputAnalyses:        e.inputAnalyses.Load(),
		ConversationAnalyses: e.conversationAnalyses.Load(),
		SuggestionsGenerated: e.suggestionsGenerated.Load(),
		GoalOptimizations:    e.goalOptimizations.Load(),
		FailuresSwallowed:    e.failuresSwallowed.Load(),
	}
}
