package relsdk

import "time"

// ──────────────────────────────────────────────
// Goal Optimization — priority ladder and timeline suggestions
// ──────────────────────────────────────────────

// GoalPriority is the computed urgency of a goal.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Timeline suggestion strings.
const (
	TimelineExtendOrSplit = "Consider extending deadline or breaking into smaller tasks"
	TimelineAddTargets    = "Ahead of schedule - consider adding more ambitious targets"
	TimelineAppropriate   = "Timeline appears appropriate"
)

// defaultDaysToDeadline is assumed when a goal has no deadline.
const defaultDaysToDeadline = 30

// Goal is a caller-supplied goal record. The optimizer reads Progress and
// Deadline, overwrites Priority, SuggestedTimeline and LastOptimized, and
// passes everything else through unchanged (Extra included).
type Goal struct {
	ID                string                 `json:"id,omitempty"`
	Title             string                 `json:"title,omitempty"`
	Progress          float64                `json:"progress"` // 0.0-1.0
	Deadline          *time.Time             `json:"deadline,omitempty"`
	Priority          GoalPriority           `json:"priority,omitempty"`
	SuggestedTimeline string                 `json:"suggested_timeline,omitempty"`
	LastOptimized     time.Time              `json:"last_optimized,omitempty"`
	Extra             map[string]interface{} `json:"extra,omitempty"`
}

// BehaviorSignals carries observed user behavior. The current ladder decides
// from progress and deadline alone; signals are reserved for model-backed
// enrichment.
type BehaviorSignals map[string]interface{}

// GoalOptimizer recomputes goal priorities and timeline suggestions.
type GoalOptimizer struct{}

// NewGoalOptimizer creates an optimizer.
func NewGoalOptimizer() *GoalOptimizer {
	return &GoalOptimizer{}
}

// Optimize returns a freshly built record per input goal, in input order.
// Each goal is scored independently; there is no cross-goal interaction.
// Caller data is never mutated.
func (o *GoalOptimizer) Optimize(goals []Goal, behavior BehaviorSignals, now time.Time) []Goal {
	optimized := make([]Goal, 0, len(goals))
	for _, g := range goals {
		days := daysToDeadline(g.Deadline, now)

		out := g
		if g.Extra != nil {
			out.Extra = make(map[string]interface{}, len(g.Extra))
			for k, v := range g.Extra {
				out.Extra[k] = v
			}
		}
		out.Priority = goalPriority(g.Progress, days)
		out.SuggestedTimeline = suggestTimeline(g.Progress, days)
		out.LastOptimized = now
		optimized = append(optimized, out)
	}
	return optimized
}

func daysToDeadline(deadline *time.Time, now time.Time) float64 {
	if deadline == nil {
		return defaultDaysToDeadline
	}
	return deadline.Sub(now).Hours() / 24
}

func goalPriority(progress, days float64) GoalPriority {
	switch {
	case progress < 0.3 && days < 7:
		return GoalPriorityHigh
	case progress < 0.5 && days < 14:
		return GoalPriorityMedium
	default:
		return GoalPriorityLow
	}
}

func suggestTimeline(progress, days float64) string {
	switch {
	case progress < 0.3 && days < 7:
		return TimelineExtendOrSplit
	case progress > 0.7 && days > 14:
		return TimelineAddTargets
	default:
		return TimelineAppropriate
	}
}
