package service

import "github.com/Madhacks12/drinktrack/internal/model"

// GuidelineWeeklyUnits is the national low-risk guideline: at most 14
// units per week.
const GuidelineWeeklyUnits = 14

// DailyLimit derives the daily limit from the weekly one. There is no
// independently stored daily limit.
func DailyLimit(goals model.Goals) float64 {
	return goals.WeeklyLimit / 7
}

// IsOverDailyLimit reports whether today's intake strictly exceeds the
// derived daily limit.
func IsOverDailyLimit(todayIntake float64, goals model.Goals) bool {
	return todayIntake > DailyLimit(goals)
}

// IsOverWeeklyLimit reports whether the rolling week's intake strictly
// exceeds the weekly limit.
func IsOverWeeklyLimit(weeklyIntake float64, goals model.Goals) bool {
	return weeklyIntake > goals.WeeklyLimit
}

// IsWithinGuidelines reports whether the configured weekly limit sits
// within the national guideline.
func IsWithinGuidelines(goals model.Goals) bool {
	return goals.WeeklyLimit <= GuidelineWeeklyUnits
}

// ReachedMilestone reports an exact match of the current streak against
// the milestone list. A missed check is never fired retroactively.
func ReachedMilestone(streak int, milestones []int) bool {
	if streak <= 0 {
		return false
	}
	for _, m := range milestones {
		if m == streak {
			return true
		}
	}
	return false
}

// WarningTriggered fires when intake meets or exceeds the threshold.
// Inclusive, unlike the strict comparison used for over-limit checks.
func WarningTriggered(intake, threshold float64) bool {
	return intake >= threshold
}
