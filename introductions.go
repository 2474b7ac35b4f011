package relsdk

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Introduction Suggestions — template-based drafts
// ──────────────────────────────────────────────

// Contact is a caller-supplied person record. The engine reads only the
// fields it templates.
type Contact struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// IntroductionContext carries optional signals that add suggestion variants.
type IntroductionContext struct {
	SharedInterests []string `json:"shared_interests,omitempty"`
	Goal            string   `json:"goal,omitempty"`
}

// introductionFallback is returned as the only suggestion when generation
// fails internally.
const introductionFallback = "I'd like to introduce you two - I think you'd benefit from knowing each other."

// IntroductionBuilder drafts introduction messages between two contacts.
type IntroductionBuilder struct{}

// NewIntroductionBuilder creates a builder.
func NewIntroductionBuilder() *IntroductionBuilder {
	return &IntroductionBuilder{}
}

// Build returns introduction drafts in fixed order: the base template, then
// an interests variant when SharedInterests is non-empty, then a goal variant
// when Goal is set. Each variant appends its clause to the base template.
func (b *IntroductionBuilder) Build(from, to Contact, ctx IntroductionContext) []string {
	base := fmt.Sprintf("Hi %s, I'd like to introduce you to %s who is %s at %s.",
		to.Name, from.Name, from.Title, from.Company)

	suggestions := []string{base}

	if len(ctx.SharedInterests) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"%s I thought you'd connect well since you both share an interest in %s.",
			base, strings.Join(ctx.SharedInterests, ", ")))
	}

	if ctx.Goal != "" {
		suggestions = append(suggestions, fmt.Sprintf(
			"%s Given your goal of %s, I believe %s could be a valuable connection.",
			base, ctx.Goal, from.Name))
	}

	return suggestions
}
