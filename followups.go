package relsdk

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Follow-Up Scheduler — proactive relationship nudges
// ──────────────────────────────────────────────

// Built-in nudge names.
const (
	NudgeFadingRelationship = "fading_relationship"
	NudgeGoalDeadline       = "goal_deadline"
)

// SendFn delivers a nudge to a user. Injected by the host; the engine owns
// no transport.
type SendFn func(userID, text string) error

// NudgeCheckFn decides whether a user should be nudged right now.
// It returns the message text and true to send, or false to skip.
type NudgeCheckFn func(userID string, now time.Time) (string, bool)

// FollowUpStore tracks per-user nudge opt-in and send history. Provide a
// custom implementation for database persistence (see the store package);
// nil means in-memory, lost on restart.
type FollowUpStore interface {
	IsEnabled(userID, nudge string) bool
	Enable(userID, nudge string)
	Disable(userID, nudge string)
	EnabledUsers(nudge string) []string
	RecordSent(userID, nudge string, at time.Time)
	SentOn(userID, nudge, day string) bool
}

// ──────────────────────────────────────────────
// InMemoryFollowUpStore (default)
// ──────────────────────────────────────────────

// InMemoryFollowUpStore is a thread-safe in-memory FollowUpStore.
type InMemoryFollowUpStore struct {
	mu      sync.RWMutex
	optIn   map[string]map[string]bool // nudge -> userID -> true
	sentDay map[string]string          // "userID|nudge" -> "2006-01-02"
}

// NewInMemoryFollowUpStore creates an empty in-memory store.
func NewInMemoryFollowUpStore() *InMemoryFollowUpStore {
	return &InMemoryFollowUpStore{
		optIn:   make(map[string]map[string]bool),
		sentDay: make(map[string]string),
	}
}

func (s *InMemoryFollowUpStore) IsEnabled(userID, nudge string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.optIn[nudge][userID]
}

func (s *InMemoryFollowUpStore) Enable(userID, nudge string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.optIn[nudge] == nil {
		s.optIn[nudge] = make(map[string]bool)
	}
	s.optIn[nudge][userID] = true
}

func (s *InMemoryFollowUpStore) Disable(userID, nudge string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.optIn[nudge], userID)
}

func (s *InMemoryFollowUpStore) EnabledUsers(nudge string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]string, 0, len(s.optIn[nudge]))
	for uid := range s.optIn[nudge] {
		users = append(users, uid)
	}
	return users
}

func (s *InMemoryFollowUpStore) RecordSent(userID, nudge string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentDay[userID+"|"+nudge] = at.Format("2006-01-02")
}

func (s *InMemoryFollowUpStore) SentOn(userID, nudge, day string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sentDay[userID+"|"+nudge] == day
}

// ──────────────────────────────────────────────
// FollowUpScheduler
// ──────────────────────────────────────────────

// FollowUpScheduler polls registered nudges and delivers at most one message
// per user per nudge per day.
//
// Usage:
//
//	scheduler := relsdk.NewFollowUpScheduler(time.Hour, sendFn, nil)
//	scheduler.AddNudge(relsdk.NudgeFadingRelationship,
//	    relsdk.FadingRelationshipNudge(engine, historyFn, 0.3))
//	scheduler.EnableUser("user_001")
//	scheduler.Start()
//	defer scheduler.Stop()
type FollowUpScheduler struct {
	interval time.Duration
	sendFn   SendFn
	store    FollowUpStore

	mu      sync.RWMutex
	nudges  map[string]NudgeCheckFn
	order   []string
	stopCh  chan struct{}
	running bool
}

// NewFollowUpScheduler creates a scheduler. A nil store falls back to the
// in-memory implementation.
func NewFollowUpScheduler(interval time.Duration, sendFn SendFn, store FollowUpStore) *FollowUpScheduler {
	if store == nil {
		store = NewInMemoryFollowUpStore()
	}
	return &FollowUpScheduler{
		interval: interval,
		sendFn:   sendFn,
		store:    store,
		nudges:   make(map[string]NudgeCheckFn),
		stopCh:   make(chan struct{}),
	}
}

// AddNudge registers a named nudge check.
func (s *FollowUpScheduler) AddNudge(name string, check NudgeCheckFn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.nudges[name]; !exists {
		s.order = append(s.order, name)
	}
	s.nudges[name] = check
	log.Printf("[FollowUpScheduler] Nudge registered: %s", name)
}

// EnableUser opts the user into the given nudges, or all registered nudges
// when none are named.
func (s *FollowUpScheduler) EnableUser(userID string, nudges ...string) {
	for _, name := range s.nudgeNames(nudges) {
		s.store.Enable(userID, name)
	}
}

// DisableUser opts the user out of the given nudges, or all of them.
func (s *FollowUpScheduler) DisableUser(userID string, nudges ...string) {
	for _, name := range s.nudgeNames(nudges) {
		s.store.Disable(userID, name)
	}
}

func (s *FollowUpScheduler) nudgeNames(requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.order...)
}

// Start launches the background poll loop. Non-blocking.
func (s *FollowUpScheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	go s.pollLoop()
	log.Printf("[FollowUpScheduler] Started (interval=%s)", s.interval)
}

// Stop halts the background poll loop.
func (s *FollowUpScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	log.Println("[FollowUpScheduler] Stopped")
}

func (s *FollowUpScheduler) pollLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.RunOnce(time.Now())
		}
	}
}

// RunOnce evaluates every nudge for every opted-in user. Exported so hosts
// driving their own scheduling (cron, serverless) can trigger a pass.
func (s *FollowUpScheduler) RunOnce(now time.Time) {
	s.mu.RLock()
	names := append([]string{}, s.order...)
	s.mu.RUnlock()

	for _, name := range names {
		s.runNudge(name, now)
	}
}

func (s *FollowUpScheduler) runNudge(name string, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[FollowUpScheduler] Nudge %q panic: %v", name, r)
		}
	}()

	s.mu.RLock()
	check := s.nudges[name]
	s.mu.RUnlock()
	if check == nil {
		return
	}

	today := now.Format("2006-01-02")
	for _, userID := range s.store.EnabledUsers(name) {
		if s.store.SentOn(userID, name, today) {
			continue
		}
		text, send := check(userID, now)
		if !send || text == "" {
			continue
		}
		if s.sendFn == nil {
			log.Printf("[FollowUpScheduler] SendFn not set, skipping send to %s", userID)
			continue
		}
		if err := s.sendFn(userID, text); err != nil {
			log.Printf("[FollowUpScheduler] Send failed | nudge=%s user=%s error=%v", name, userID, err)
			continue
		}
		s.store.RecordSent(userID, name, now)
		log.Printf("[FollowUpScheduler] Sent | nudge=%s user=%s", name, userID)
	}
}

// ──────────────────────────────────────────────
// Built-in nudge checks
// ──────────────────────────────────────────────

// HistoryFn loads a user's recent conversation history.
type HistoryFn func(userID string) []ConversationMessage

// GoalsFn loads a user's stored goals.
type GoalsFn func(userID string) []Goal

// FadingRelationshipNudge nudges when relationship strength drops below
// threshold: the thread has gone quiet and a follow-up is overdue.
func FadingRelationshipNudge(engine *Engine, history HistoryFn, threshold float64) NudgeCheckFn {
	return func(userID string, now time.Time) (string, bool) {
		messages := history(userID)
		if len(messages) == 0 {
			return "", false
		}
		strength := engine.actions.RelationshipStrength(messages, now)
		if strength >= threshold {
			return "", false
		}
		return fmt.Sprintf(
			"It's been a while since your last exchange - a quick check-in could keep this relationship warm (strength %.2f).",
			strength), true
	}
}

// GoalDeadlineNudge nudges when a behind-schedule goal has a deadline within
// the given number of days.
func GoalDeadlineNudge(goals GoalsFn, withinDays int) NudgeCheckFn {
	return func(userID string, now time.Time) (string, bool) {
		for _, g := range goals(userID) {
			if g.Deadline == nil || g.Progress >= 0.5 {
				continue
			}
			days := g.Deadline.Sub(now).Hours() / 24
			if days >= 0 && days < float64(withinDays) {
				return fmt.Sprintf(
					"Your goal %q is %d%% done with its deadline %d day(s) away - want to plan the next step?",
					g.Title, int(g.Progress*100), int(days)), true
			}
		}
		return "", false
	}
}
