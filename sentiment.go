package relsdk

import "strings"

// ──────────────────────────────────────────────
// Sentiment & Topic Extractor — rule-based text scoring
// ──────────────────────────────────────────────

// Sentiment is the overall polarity of a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// DefaultPositiveWords returns the positive sentiment word list.
func DefaultPositiveWords() []string {
	return []string{"great", "good", "excellent", "amazing", "wonderful", "successful"}
}

// DefaultNegativeWords returns the negative sentiment word list.
func DefaultNegativeWords() []string {
	return []string{"bad", "terrible", "awful", "disappointing", "failed", "problem"}
}

// topicEntry keeps taxonomy declaration order stable.
type topicEntry struct {
	topic    string
	keywords []string
}

// DefaultTopicTaxonomy returns the fixed topic taxonomy in output order.
func DefaultTopicTaxonomy() map[string][]string {
	return map[string][]string{
		"business":   {"business", "company", "startup", "revenue", "market"},
		"technology": {"tech", "software", "ai", "data", "product"},
		"networking": {"network", "connect", "introduction", "referral", "community"},
		"career":     {"career", "job", "role", "promotion", "hiring"},
	}
}

// Declaration order for taxonomy output. Topic identifiers are unique by
// construction, so duplicates are impossible.
var defaultTopicOrder = []string{"business", "technology", "networking", "career"}

// SentimentAnalyzer scores text polarity and extracts topic tags.
type SentimentAnalyzer struct {
	positiveWords []string
	negativeWords []string
	taxonomy      []topicEntry
}

// NewSentimentAnalyzer creates an analyzer with the built-in word lists
// and topic taxonomy.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	tax := DefaultTopicTaxonomy()
	entries := make([]topicEntry, 0, len(defaultTopicOrder))
	for _, topic := range defaultTopicOrder {
		entries = append(entries, topicEntry{topic: topic, keywords: tax[topic]})
	}
	return &SentimentAnalyzer{
		positiveWords: DefaultPositiveWords(),
		negativeWords: DefaultNegativeWords(),
		taxonomy:      entries,
	}
}

// AnalyzeSentiment counts positive and negative word occurrences
// (case-insensitive substring) and decides by strict majority.
// A tie — including zero hits on both sides — is neutral.
func (a *SentimentAnalyzer) AnalyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	for _, w := range a.positiveWords {
		positive += strings.Count(lower, w)
	}
	negative := 0
	for _, w := range a.negativeWords {
		negative += strings.Count(lower, w)
	}

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// ExtractTopics returns the taxonomy topics whose keyword lists match the
// text, in taxonomy declaration order. A topic is included when any of its
// keywords is a substring of the lower-cased text.
func (a *SentimentAnalyzer) ExtractTopics(text string) []string {
	lower := strings.ToLower(text)
	var topics []string
	for _, entry := range a.taxonomy {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				topics = append(topics, entry.topic)
				break
			}
		}
	}
	return topics
}
