package relsdk

import (
	"regexp"
	"strings"
	"time"
)

// ──────────────────────────────────────────────
// Action & Relationship Analyzer — pattern extraction + recency scoring
// ──────────────────────────────────────────────

// ConversationMessage is one caller-supplied chat message. Read-only to the
// engine; the engine retains no reference past the call.
type ConversationMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Action phrase patterns, applied in this order over the full transcript.
// Case-insensitive, greedy to the sentence end. Matching inside longer
// phrases is intentional, same contract as the keyword classifiers.
var (
	actionIntentPattern = regexp.MustCompile(`(?i)(need to|should|must|will)\s+[^.!?\n]+`)
	actionVerbPattern   = regexp.MustCompile(`(?i)(follow up|call|email|meet|schedule)\s+[^.!?\n]+`)
)

// relationshipWindow is the lookback for relationship scoring.
const relationshipWindow = 7 * 24 * time.Hour

// Relationship strength weights. Recency dominates raw volume: an active
// thread yesterday beats a burst of messages a week ago.
const (
	frequencyWeight = 0.3
	recencyWeight   = 0.7
)

// ActionAnalyzer extracts actionable phrases and scores relationship
// strength from message history.
type ActionAnalyzer struct{}

// NewActionAnalyzer creates an analyzer.
func NewActionAnalyzer() *ActionAnalyzer {
	return &ActionAnalyzer{}
}

// Transcript renders messages as "role: content" lines for pattern matching.
func Transcript(messages []ConversationMessage) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// ExtractActionItems applies both action patterns over the transcript and
// returns every match in pattern order then match order, trimmed.
// Duplicates are kept: two mentions of the same follow-up are two items.
func (a *ActionAnalyzer) ExtractActionItems(messages []ConversationMessage) []string {
	transcript := Transcript(messages)

	items := []string{}
	for _, pattern := range []*regexp.Regexp{actionIntentPattern, actionVerbPattern} {
		for _, match := range pattern.FindAllString(transcript, -1) {
			items = append(items, strings.TrimSpace(match))
		}
	}
	return items
}

// RelationshipStrength blends message frequency and recency over the last
// seven days into a [0,1] score.
//
//	frequency = recentCount / 7            (messages per day)
//	recency   = max(0, 1 - age(latest)/7d)
//	score     = min(1, 0.3*frequency + 0.7*recency)
//
// With no messages in the window there is no timestamp to age, so the
// recency term contributes nothing and the score is 0.
func (a *ActionAnalyzer) RelationshipStrength(messages []ConversationMessage, now time.Time) float64 {
	cutoff := now.Add(-relationshipWindow)

	var recent []ConversationMessage
	for _, m := range messages {
		if m.Timestamp.After(cutoff) {
			recent = append(recent, m)
		}
	}
	if len(recent) == 0 {
		return 0
	}

	frequency := float64(len(recent)) / 7.0

	latest := recent[0].Timestamp
	for _, m := range recent[1:] {
		if m.Timestamp.After(latest) {
			latest = m.Timestamp
		}
	}
	recency := 1 - float64(now.Sub(latest))/float64(relationshipWindow)
	if recency < 0 {
		recency = 0
	}

	score := frequencyWeight*frequency + recencyWeight*recency
	if score > 1 {
		score = 1
	}
	return score
}
