package notify

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/service"
)

// Poll intervals per feature. The daily reminder polls tightly so it
// fires close to the configured time; the rest are coarse.
const (
	dailyReminderPoll = time.Minute
	weeklyReportPoll  = time.Hour

	goalReminderDailyPoll  = time.Hour
	goalReminderWeeklyPoll = 24 * time.Hour

	encouragementHighPoll   = 6 * time.Hour
	encouragementMediumPoll = 12 * time.Hour
	encouragementLowPoll    = 24 * time.Hour
)

var zeroIntakeMessages = []string{
	"Great job staying alcohol-free today!",
	"You're doing amazing! Keep up the healthy choices!",
	"Your future self will thank you for this!",
}

var moderationMessages = []string{
	"You're staying well within healthy limits!",
	"Great moderation today!",
	"Your mindful drinking is paying off!",
}

// Scheduler periodically re-evaluates reminder conditions and delivers
// messages through a Notifier. The last-notified-date guard is shared
// by the daily reminder and the weekly report, lives only in memory,
// and therefore resets on restart.
type Scheduler struct {
	mu           sync.Mutex
	db           *sql.DB
	notifier     Notifier
	settings     model.NotificationSettings
	lastNotified string
	baseCtx      context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewScheduler creates a scheduler with the currently stored settings.
func NewScheduler(db *sql.DB, notifier Notifier) *Scheduler {
	return &Scheduler{
		db:       db,
		notifier: notifier,
		settings: service.GetNotificationSettings(db),
	}
}

// Start arms one recurring timer per enabled feature. Nothing is armed
// when the global flag is off or permission has not been granted.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	s.baseCtx = ctx
	ctx, s.cancel = context.WithCancel(ctx)
	settings := s.settings
	s.mu.Unlock()

	if !settings.Enabled {
		slog.Info("notifications disabled, scheduler idle")
		return
	}
	if service.GetPermission(s.db) != service.PermissionGranted {
		slog.Info("notification permission not granted, scheduler idle")
		return
	}

	if settings.DailyReminder.Enabled {
		s.poll(ctx, dailyReminderPoll, s.checkDailyReminder)
		s.checkDailyReminder(time.Now())
	}
	if settings.WeeklyReport.Enabled {
		s.poll(ctx, weeklyReportPoll, s.checkWeeklyReport)
		s.checkWeeklyReport(time.Now())
	}
	if settings.GoalReminders.Enabled {
		interval := goalReminderWeeklyPoll
		if settings.GoalReminders.Frequency == "daily" {
			interval = goalReminderDailyPoll
		}
		s.poll(ctx, interval, s.checkGoalReminder)
	}
	if settings.Encouragement.Enabled {
		var interval time.Duration
		switch settings.Encouragement.Frequency {
		case "high":
			interval = encouragementHighPoll
		case "low":
			interval = encouragementLowPoll
		default:
			interval = encouragementMediumPoll
		}
		s.poll(ctx, interval, s.checkEncouragement)
	}
}

// Stop cancels every armed timer and waits for in-flight checks.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// UpdateSettings persists new settings, then clears all timers and
// re-arms from scratch when running.
func (s *Scheduler) UpdateSettings(settings model.NotificationSettings) error {
	if err := service.SaveNotificationSettings(s.db, settings); err != nil {
		return err
	}
	s.mu.Lock()
	s.settings = settings
	running := s.cancel != nil
	ctx := s.baseCtx
	s.mu.Unlock()

	if running {
		s.Stop()
		s.Start(ctx)
	}
	return nil
}

func (s *Scheduler) poll(ctx context.Context, interval time.Duration, check func(time.Time)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				check(t)
			}
		}
	}()
}

func (s *Scheduler) alreadyNotified(today string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastNotified == today
}

func (s *Scheduler) markNotified(today string) {
	s.mu.Lock()
	s.lastNotified = today
	s.mu.Unlock()
}

func (s *Scheduler) send(title, body string) {
	if err := s.notifier.Send(title, body); err != nil {
		slog.Warn("notification delivery failed", "title", title, "err", err)
	}
}

func (s *Scheduler) snapshot() ([]model.DrinkEntry, model.Goals, bool) {
	entries, err := service.ListDrinks(s.db)
	if err != nil {
		slog.Warn("load drink history", "err", err)
		return nil, model.Goals{}, false
	}
	return entries, service.GetGoals(s.db), true
}

// timeOfDayReached reports whether now has passed hh:mm of its own day.
func timeOfDayReached(now time.Time, hhmm string) bool {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		slog.Warn("invalid reminder time", "value", hhmm, "err", err)
		return false
	}
	target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return !now.Before(target)
}

func (s *Scheduler) checkDailyReminder(now time.Time) {
	s.mu.Lock()
	cfg := s.settings.DailyReminder
	enabled := cfg.Enabled && s.settings.Enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	today := now.Format(model.DateLayout)
	if s.alreadyNotified(today) {
		return
	}
	if timeOfDayReached(now, cfg.Time) {
		s.send("Daily Reminder", cfg.Message)
		s.markNotified(today)
	}
}

func (s *Scheduler) checkWeeklyReport(now time.Time) {
	s.mu.Lock()
	cfg := s.settings.WeeklyReport
	enabled := cfg.Enabled && s.settings.Enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	today := now.Format(model.DateLayout)
	if s.alreadyNotified(today) {
		return
	}
	if !strings.EqualFold(now.Weekday().String(), cfg.Day) {
		return
	}
	if !timeOfDayReached(now, cfg.Time) {
		return
	}

	entries, goals, ok := s.snapshot()
	if !ok {
		return
	}
	weeklyIntake := service.SumUnits(service.WeeklyEntries(entries, now))
	streak := service.Streak(entries, goals, now)

	var b strings.Builder
	fmt.Fprintf(&b, "Units this week: %.1f/%.1f\n", weeklyIntake, goals.WeeklyLimit)
	fmt.Fprintf(&b, "Current streak: %d days\n", streak)
	if weeklyIntake <= goals.WeeklyLimit {
		b.WriteString("Great job staying within your goals!")
	} else {
		b.WriteString("Consider adjusting your goals for next week.")
	}
	s.send("Weekly Report", b.String())
	s.markNotified(today)
}

// checkGoalReminder fires every poll while today's intake exceeds 80% of
// the daily limit. Deliberately no dedup.
func (s *Scheduler) checkGoalReminder(now time.Time) {
	s.mu.Lock()
	enabled := s.settings.GoalReminders.Enabled && s.settings.Enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	entries, goals, ok := s.snapshot()
	if !ok {
		return
	}
	todayIntake := service.SumUnits(service.TodaysEntries(entries, now))
	dailyLimit := service.DailyLimit(goals)

	if todayIntake > dailyLimit*0.8 {
		s.send("Goal Reminder", fmt.Sprintf(
			"You're approaching your daily limit (%.1f/%.1f units). Consider your goals!",
			todayIntake, dailyLimit))
	}
}

// checkEncouragement sends a randomly chosen message while today's
// intake is zero or at most half the daily limit. No dedup.
func (s *Scheduler) checkEncouragement(now time.Time) {
	s.mu.Lock()
	enabled := s.settings.Encouragement.Enabled && s.settings.Enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	entries, goals, ok := s.snapshot()
	if !ok {
		return
	}
	todayIntake := service.SumUnits(service.TodaysEntries(entries, now))
	dailyLimit := service.DailyLimit(goals)

	switch {
	case todayIntake == 0:
		s.send("Encouragement", zeroIntakeMessages[rand.IntN(len(zeroIntakeMessages))])
	case todayIntake <= dailyLimit*0.5:
		s.send("Encouragement", moderationMessages[rand.IntN(len(moderationMessages))])
	}
}

// CheckStreakMilestones is event-triggered: call it right after logging
// an entry. A milestone fires only on an exact streak match.
func (s *Scheduler) CheckStreakMilestones(now time.Time) {
	s.mu.Lock()
	cfg := s.settings.StreakCelebration
	enabled := cfg.Enabled && s.settings.Enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	entries, goals, ok := s.snapshot()
	if !ok {
		return
	}
	streak := service.Streak(entries, goals, now)
	if service.ReachedMilestone(streak, cfg.Milestones) {
		s.send("Streak Milestone!", fmt.Sprintf(
			"Congratulations! You've reached a %d-day streak of staying within your goals!", streak))
	}
}

// CheckWarningAlerts is event-triggered: call it right after logging an
// entry. Thresholds are inclusive.
func (s *Scheduler) CheckWarningAlerts(now time.Time) {
	s.mu.Lock()
	cfg := s.settings.WarningAlerts
	enabled := cfg.Enabled && s.settings.Enabled
	s.mu.Unlock()
	if !enabled {
		return
	}

	entries, _, ok := s.snapshot()
	if !ok {
		return
	}
	todayIntake := service.SumUnits(service.TodaysEntries(entries, now))
	weeklyIntake := service.SumUnits(service.WeeklyEntries(entries, now))

	if service.WarningTriggered(todayIntake, cfg.DailyThreshold) {
		s.send("Daily Limit Warning", fmt.Sprintf(
			"You've reached %.1f units today. Consider your health goals.", todayIntake))
	}
	if service.WarningTriggered(weeklyIntake, cfg.WeeklyThreshold) {
		s.send("Weekly Limit Warning", fmt.Sprintf(
			"You've reached %.1f units this week. Consider taking a break.", weeklyIntake))
	}
}
