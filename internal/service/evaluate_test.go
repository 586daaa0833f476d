package service_test

import (
	"testing"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/service"
)

func TestDailyLimitDerivedFromWeekly(t *testing.T) {
	t.Parallel()
	goals := model.Goals{WeeklyLimit: 14}
	if got := service.DailyLimit(goals); got != 2 {
		t.Fatalf("expected daily limit 2, got %v", got)
	}
	if got := service.DailyLimit(model.Goals{}); got != 0 {
		t.Fatalf("expected daily limit 0 for zero weekly, got %v", got)
	}
}

func TestOverLimitChecksAreStrict(t *testing.T) {
	t.Parallel()
	goals := model.Goals{WeeklyLimit: 14} // daily limit 2

	if service.IsOverDailyLimit(2, goals) {
		t.Fatal("intake exactly at the daily limit must not count as over")
	}
	if !service.IsOverDailyLimit(2.1, goals) {
		t.Fatal("intake above the daily limit must count as over")
	}
	if service.IsOverWeeklyLimit(14, goals) {
		t.Fatal("intake exactly at the weekly limit must not count as over")
	}
	if !service.IsOverWeeklyLimit(14.5, goals) {
		t.Fatal("intake above the weekly limit must count as over")
	}
}

func TestWarningThresholdIsInclusive(t *testing.T) {
	t.Parallel()
	if !service.WarningTriggered(4, 4) {
		t.Fatal("intake at the threshold must trigger a warning")
	}
	if service.WarningTriggered(3.9, 4) {
		t.Fatal("intake under the threshold must not trigger")
	}
}

func TestHeavyDayTriggersWarningButAggregateStaysUnderWeeklyLimit(t *testing.T) {
	t.Parallel()
	goals := model.Goals{WeeklyLimit: 14}
	dayIntake := 5.0

	if !service.IsOverDailyLimit(dayIntake, goals) {
		t.Fatal("5 units in one day exceeds a 2-unit daily limit")
	}
	if service.IsOverWeeklyLimit(dayIntake, goals) {
		t.Fatal("5 units does not exceed a 14-unit weekly limit")
	}
	if !service.WarningTriggered(dayIntake, 4) {
		t.Fatal("5 units meets the default daily warning threshold")
	}
}

func TestIsWithinGuidelines(t *testing.T) {
	t.Parallel()
	if !service.IsWithinGuidelines(model.Goals{WeeklyLimit: 14}) {
		t.Fatal("14 units per week is within the guideline")
	}
	if !service.IsWithinGuidelines(model.Goals{WeeklyLimit: 10}) {
		t.Fatal("10 units per week is within the guideline")
	}
	if service.IsWithinGuidelines(model.Goals{WeeklyLimit: 15}) {
		t.Fatal("15 units per week is outside the guideline")
	}
}

func TestReachedMilestoneExactMatchOnly(t *testing.T) {
	t.Parallel()
	milestones := []int{3, 7, 14}

	if !service.ReachedMilestone(7, milestones) {
		t.Fatal("streak 7 is a milestone")
	}
	if service.ReachedMilestone(8, milestones) {
		t.Fatal("streak 8 must not match a passed milestone")
	}
	if service.ReachedMilestone(0, milestones) {
		t.Fatal("zero streak never matches")
	}
	if service.ReachedMilestone(3, nil) {
		t.Fatal("empty milestone list never matches")
	}
}
