package relsdk

import (
	"context"
	"errors"
	"testing"
)

// ══════════════════════════════════════════════
// Engine tests
// ══════════════════════════════════════════════

func TestEngine_OwnsItsCatalog(t *testing.T) {
	e1 := NewEngine()
	e2 := NewEngine()

	e1.SetFeatureStatus(FeatureGoalOptimization, false)
	if !e2.Registry().IsEnabled(FeatureGoalOptimization) {
		t.Fatal("engines must not share registry state")
	}
}

func TestEngine_StatsCounters(t *testing.T) {
	e := NewEngine()
	e.AnalyzeUserInput("I met someone")
	e.AnalyzeUserInput("nothing here")
	e.AnalyzeConversation(nil)
	e.GenerateIntroductionSuggestions(Contact{Name: "A"}, Contact{Name: "B"}, IntroductionContext{})
	e.OptimizeGoals(nil, nil)

	stats := e.Stats()
	if stats.InputAnalyses != 2 {
		t.Fatalf("expected 2 input analyses, got %d", stats.InputAnalyses)
	}
	if stats.ConversationAnalyses != 1 {
		t.Fatalf("expected 1 conversation analysis, got %d", stats.ConversationAnalyses)
	}
	if stats.SuggestionsGenerated != 1 {
		t.Fatalf("expected 1 suggestion run, got %d", stats.SuggestionsGenerated)
	}
	if stats.GoalOptimizations != 1 {
		t.Fatalf("expected 1 optimization run, got %d", stats.GoalOptimizations)
	}
	if stats.FailuresSwallowed != 0 {
		t.Fatalf("expected no failures, got %d", stats.FailuresSwallowed)
	}
}

func TestEngine_EnrichWithoutCapability(t *testing.T) {
	e := NewEngine()
	if _, err := e.Enrich(context.Background(), "summarize"); !errors.Is(err, ErrNoEnrichment) {
		t.Fatalf("expected ErrNoEnrichment, got %v", err)
	}
}

func TestEngine_EnrichDelegates(t *testing.T) {
	e := NewEngine(EngineConfig{
		EnrichFn: func(ctx context.Context, prompt string) (string, error) {
			return "enriched: " + prompt, nil
		},
	})
	out, err := e.Enrich(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "enriched: hello" {
		t.Fatalf("unexpected output: %q", out)
	}
}
