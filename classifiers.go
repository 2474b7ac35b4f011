package relsdk

import "strings"

// ──────────────────────────────────────────────
// Relevance Classifiers — keyword substring detectors
// ──────────────────────────────────────────────

// FeatureAnalysis is a classifier's structured verdict that a capability
// is relevant to the given text.
type FeatureAnalysis struct {
	Feature          string   `json:"feature"`
	Confidence       float64  `json:"confidence"` // 0.0-1.0, fixed per classifier
	Reasoning        string   `json:"reasoning"`
	SuggestedActions []string `json:"suggested_actions"`
}

// DefaultContactKeywords returns the contact-relevance keyword list.
// Override via ClassifierConfig.
func DefaultContactKeywords() []string {
	return []string{"contact", "person", "met", "introduced", "name", "email", "phone"}
}

// DefaultGoalKeywords returns the goal-relevance keyword list.
func DefaultGoalKeywords() []string {
	return []string{"goal", "objective", "target", "aim", "plan", "strategy"}
}

// DefaultConversationKeywords returns the conversation-relevance keyword list.
func DefaultConversationKeywords() []string {
	return []string{"talk", "discuss", "meeting", "call", "chat", "conversation"}
}

// ClassifierConfig overrides the built-in keyword lists. Nil slices keep
// the defaults.
type ClassifierConfig struct {
	ContactKeywords      []string
	GoalKeywords         []string
	ConversationKeywords []string
}

// InputClassifier maps free-form user text to feature-relevance verdicts.
//
// Matching is case-insensitive exact-substring: no stemming, no tokenization.
// A keyword matching inside a longer word ("metric" contains "met") fires the
// classifier. That is the documented contract, not an accident.
type InputClassifier struct {
	contactKeywords      []string
	goalKeywords         []string
	conversationKeywords []string
}

// NewInputClassifier creates a classifier with the default keyword lists.
func NewInputClassifier(config ...ClassifierConfig) *InputClassifier {
	c := &InputClassifier{
		contactKeywords:      DefaultContactKeywords(),
		goalKeywords:         DefaultGoalKeywords(),
		conversationKeywords: DefaultConversationKeywords(),
	}
	if len(config) > 0 {
		cfg := config[0]
		if cfg.ContactKeywords != nil {
			c.contactKeywords = cfg.ContactKeywords
		}
		if cfg.GoalKeywords != nil {
			c.goalKeywords = cfg.GoalKeywords
		}
		if cfg.ConversationKeywords != nil {
			c.conversationKeywords = cfg.ConversationKeywords
		}
	}
	return c
}

// IsContactRelated reports whether the text mentions contact management.
func (c *InputClassifier) IsContactRelated(text string) bool {
	return containsAny(text, c.contactKeywords)
}

// IsGoalRelated reports whether the text mentions goals or planning.
func (c *InputClassifier) IsGoalRelated(text string) bool {
	return containsAny(text, c.goalKeywords)
}

// IsConversationRelated reports whether the text mentions a conversation.
func (c *InputClassifier) IsConversationRelated(text string) bool {
	return containsAny(text, c.conversationKeywords)
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classify runs the three detectors in fixed order (contact, goal,
// conversation) and returns one FeatureAnalysis per firing classifier.
// Confidence, reasoning and suggested actions are constants per classifier,
// never derived from the input. Returns an empty slice when nothing fires.
//
// Firing is unconditional: classifiers do not consult the Feature Registry's
// enabled flag. Keep it that way unless the product decides otherwise.
func (c *InputClassifier) Classify(text string) []FeatureAnalysis {
	analyses := []FeatureAnalysis{}

	if c.IsContactRelated(text) {
		analyses = append(analyses, FeatureAnalysis{
			Feature:    FeatureSmartContactMatching,
			Confidence: 0.9,
			Reasoning:  "Message mentions contacts or people",
			SuggestedActions: []string{
				"Search existing contacts",
				"Suggest adding new contact",
				"Find mutual connections",
			},
		})
	}

	if c.IsGoalRelated(text) {
		analyses = append(analyses, FeatureAnalysis{
			Feature:    FeatureGoalOptimization,
			Confidence: 0.8,
			Reasoning:  "Message relates to goals or planning",
			SuggestedActions: []string{
				"Review current goals",
				"Suggest goal adjustments",
				"Track goal progress",
			},
		})
	}

	if c.IsConversationRelated(text) {
		analyses = append(analyses, FeatureAnalysis{
			Feature:    FeatureConversationAnalysis,
			Confidence: 0.7,
			Reasoning:  "Message references a conversation or meeting",
			SuggestedActions: []string{
				"Analyze conversation sentiment",
				"Extract action items",
				"Update relationship notes",
			},
		})
	}

	return analyses
}
