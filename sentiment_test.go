package relsdk

import "testing"

// ══════════════════════════════════════════════
// SentimentAnalyzer tests
// ══════════════════════════════════════════════

func TestSentiment_Positive(t *testing.T) {
	a := NewSentimentAnalyzer()
	if got := a.AnalyzeSentiment("This was a great and successful meeting"); got != SentimentPositive {
		t.Fatalf("expected positive, got %s", got)
	}
}

func TestSentiment_Negative(t *testing.T) {
	a := NewSentimentAnalyzer()
	if got := a.AnalyzeSentiment("This was a terrible and failed attempt"); got != SentimentNegative {
		t.Fatalf("expected negative, got %s", got)
	}
}

func TestSentiment_NeutralNoSentimentWords(t *testing.T) {
	a := NewSentimentAnalyzer()
	if got := a.AnalyzeSentiment("We met to talk"); got != SentimentNeutral {
		t.Fatalf("expected neutral, got %s", got)
	}
}

func TestSentiment_NeutralOnTie(t *testing.T) {
	a := NewSentimentAnalyzer()
	// One positive word, one negative word.
	if got := a.AnalyzeSentiment("a good idea with a bad ending"); got != SentimentNeutral {
		t.Fatalf("expected neutral on tie, got %s", got)
	}
}

func TestSentiment_CountsRepeats(t *testing.T) {
	a := NewSentimentAnalyzer()
	// Occurrences count, not distinct words: two "bad" beat one "great".
	if got := a.AnalyzeSentiment("great plan, bad timing, bad venue"); got != SentimentNegative {
		t.Fatalf("expected negative, got %s", got)
	}
}

func TestSentiment_CaseInsensitive(t *testing.T) {
	a := NewSentimentAnalyzer()
	if got := a.AnalyzeSentiment("EXCELLENT work"); got != SentimentPositive {
		t.Fatalf("expected positive, got %s", got)
	}
}

// ══════════════════════════════════════════════
// Topic extraction tests
// ══════════════════════════════════════════════

func TestTopics_TaxonomyOrder(t *testing.T) {
	a := NewSentimentAnalyzer()
	// Mention career before business; output still follows taxonomy order.
	topics := a.ExtractTopics("my career move depends on the startup's revenue")

	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %v", topics)
	}
	if topics[0] != "business" || topics[1] != "career" {
		t.Fatalf("expected [business career], got %v", topics)
	}
}

func TestTopics_SingleHitPerTopic(t *testing.T) {
	a := NewSentimentAnalyzer()
	// Multiple keywords of the same topic yield one entry.
	topics := a.ExtractTopics("the software product uses ai on our data")
	if len(topics) != 1 || topics[0] != "technology" {
		t.Fatalf("expected [technology], got %v", topics)
	}
}

func TestTopics_NoMatch(t *testing.T) {
	a := NewSentimentAnalyzer()
	if topics := a.ExtractTopics("hello there"); len(topics) != 0 {
		t.Fatalf("expected no topics, got %v", topics)
	}
}
