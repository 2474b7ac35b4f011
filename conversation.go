package relsdk

// ──────────────────────────────────────────────
// Conversation Insight — merged analysis of a message history
// ──────────────────────────────────────────────

// ConversationInsight is the aggregated summary of a message history.
// Derived and ephemeral; persistence is a collaborator concern.
type ConversationInsight struct {
	Sentiment            Sentiment `json:"sentiment"`
	KeyTopics            []string  `json:"key_topics"`
	ActionItems          []string  `json:"action_items"`
	RelationshipStrength float64   `json:"relationship_strength"` // 0.0-1.0
}

// NeutralInsight is the safe default returned when conversation analysis
// fails internally: nothing learned, relationship assumed middling.
func NeutralInsight() ConversationInsight {
	return ConversationInsight{
		Sentiment:            SentimentNeutral,
		KeyTopics:            []string{},
		ActionItems:          []string{},
		RelationshipStrength: 0.5,
	}
}
