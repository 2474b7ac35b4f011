package relsdk

import (
	"strings"
	"testing"
	"time"
)

// ══════════════════════════════════════════════
// FollowUpScheduler tests
// ══════════════════════════════════════════════

type sentRecord struct {
	userID string
	text   string
}

func collectSends(sent *[]sentRecord) SendFn {
	return func(userID, text string) error {
		*sent = append(*sent, sentRecord{userID: userID, text: text})
		return nil
	}
}

func alwaysNudge(text string) NudgeCheckFn {
	return func(userID string, now time.Time) (string, bool) {
		return text, true
	}
}

func TestFollowUpScheduler_SendsToEnabledUsers(t *testing.T) {
	var sent []sentRecord
	s := NewFollowUpScheduler(time.Hour, collectSends(&sent), nil)
	s.AddNudge("ping", alwaysNudge("hello"))

	s.EnableUser("u1")
	s.RunOnce(time.Now())

	if len(sent) != 1 || sent[0].userID != "u1" || sent[0].text != "hello" {
		t.Fatalf("unexpected sends: %v", sent)
	}
}

func TestFollowUpScheduler_OncePerDay(t *testing.T) {
	var sent []sentRecord
	s := NewFollowUpScheduler(time.Hour, collectSends(&sent), nil)
	s.AddNudge("ping", alwaysNudge("hello"))
	s.EnableUser("u1")

	now := time.Now()
	s.RunOnce(now)
	s.RunOnce(now.Add(time.Minute))
	if len(sent) != 1 {
		t.Fatalf("expected one send per day, got %d", len(sent))
	}

	// The next day the nudge goes out again.
	s.RunOnce(now.Add(24 * time.Hour))
	if len(sent) != 2 {
		t.Fatalf("expected a second send the next day, got %d", len(sent))
	}
}

func TestFollowUpScheduler_DisabledUserSkipped(t *testing.T) {
	var sent []sentRecord
	s := NewFollowUpScheduler(time.Hour, collectSends(&sent), nil)
	s.AddNudge("ping", alwaysNudge("hello"))

	s.EnableUser("u1")
	s.DisableUser("u1")
	s.RunOnce(time.Now())

	if len(sent) != 0 {
		t.Fatalf("disabled user should not be nudged: %v", sent)
	}
}

func TestFollowUpScheduler_SkipsWhenCheckDeclines(t *testing.T) {
	var sent []sentRecord
	s := NewFollowUpScheduler(time.Hour, collectSends(&sent), nil)
	s.AddNudge("quiet", func(userID string, now time.Time) (string, bool) {
		return "", false
	})
	s.EnableUser("u1")
	s.RunOnce(time.Now())

	if len(sent) != 0 {
		t.Fatalf("declined check should not send: %v", sent)
	}
}

func TestFollowUpScheduler_PanickingNudgeIsContained(t *testing.T) {
	var sent []sentRecord
	s := NewFollowUpScheduler(time.Hour, collectSends(&sent), nil)
	s.AddNudge("bad", func(userID string, now time.Time) (string, bool) {
		panic("nudge bug")
	})
	s.AddNudge("good", alwaysNudge("still here"))
	s.EnableUser("u1")

	s.RunOnce(time.Now())
	if len(sent) != 1 || sent[0].text != "still here" {
		t.Fatalf("healthy nudges should survive a panicking one: %v", sent)
	}
}

func TestFollowUpScheduler_StartStopIdempotent(t *testing.T) {
	s := NewFollowUpScheduler(time.Hour, nil, nil)
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}

// ══════════════════════════════════════════════
// Built-in nudge checks
// ══════════════════════════════════════════════

func TestFadingRelationshipNudge(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	history := map[string][]ConversationMessage{
		"fading": {msg("user", "hi", now.Add(-6*24*time.Hour))},
		"active": {
			msg("user", "hi", now.Add(-time.Hour)),
			msg("user", "hello", now.Add(-2*time.Hour)),
		},
		"silent": {},
	}
	check := FadingRelationshipNudge(e, func(userID string) []ConversationMessage {
		return history[userID]
	}, 0.3)

	if text, send := check("fading", now); !send || !strings.Contains(text, "check-in") {
		t.Fatalf("expected nudge for fading relationship, got %q send=%v", text, send)
	}
	if _, send := check("active", now); send {
		t.Fatal("active relationship should not be nudged")
	}
	// No history at all means nothing to revive.
	if _, send := check("silent", now); send {
		t.Fatal("empty history should not be nudged")
	}
}

func TestGoalDeadlineNudge(t *testing.T) {
	now := time.Now()
	soon := now.Add(2 * 24 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	goals := map[string][]Goal{
		"behind":  {{Title: "Ship v2", Progress: 0.2, Deadline: &soon}},
		"ahead":   {{Title: "Ship v2", Progress: 0.9, Deadline: &soon}},
		"distant": {{Title: "Ship v2", Progress: 0.2, Deadline: &far}},
		"no_dl":   {{Title: "Ship v2", Progress: 0.2}},
	}
	check := GoalDeadlineNudge(func(userID string) []Goal {
		return goals[userID]
	}, 7)

	if text, send := check("behind", now); !send || !strings.Contains(text, "Ship v2") {
		t.Fatalf("expected nudge for behind goal, got %q send=%v", text, send)
	}
	if _, send := check("ahead", now); send {
		t.Fatal("well-progressed goal should not be nudged")
	}
	if _, send := check("distant", now); send {
		t.Fatal("distant deadline should not be nudged")
	}
	if _, send := check("no_dl", now); send {
		t.Fatal("goal without deadline should not be nudged")
	}
}
