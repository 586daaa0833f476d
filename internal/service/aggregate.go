package service

import (
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
)

// The aggregation functions are pure: they take an entries snapshot and
// a reference time so callers (and tests) control "now".

// TodaysEntries returns entries whose date string matches now's calendar
// day exactly. No timezone normalization beyond formatting now.
func TodaysEntries(entries []model.DrinkEntry, now time.Time) []model.DrinkEntry {
	today := now.Format(model.DateLayout)
	out := make([]model.DrinkEntry, 0)
	for _, e := range entries {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}

// SumUnits adds up the units field. An empty snapshot sums to 0.
func SumUnits(entries []model.DrinkEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Units
	}
	return sum
}

// WeeklyEntries returns entries within the rolling 7x24h window ending
// at now, inclusive lower bound. Entries with undecodable dates are
// excluded. This is a full time comparison, not a calendar-week bucket.
func WeeklyEntries(entries []model.DrinkEntry, now time.Time) []model.DrinkEntry {
	lower := now.AddDate(0, 0, -7)
	out := make([]model.DrinkEntry, 0)
	for _, e := range entries {
		t, err := time.ParseInLocation(model.DateLayout, e.Date, now.Location())
		if err != nil {
			continue
		}
		if !t.Before(lower) {
			out = append(out, e)
		}
	}
	return out
}

// streakScanDays caps the backward day-by-day streak walk.
const streakScanDays = 30

// Streak counts consecutive days, starting today and walking backward,
// whose unit total stayed at or under the derived daily limit
// (weeklyLimit/7). The scan stops at the first day over the limit and
// that day is not counted. A day with no entries sums to 0 and counts.
// With no entries at all the streak is the full scan cap.
func Streak(entries []model.DrinkEntry, goals model.Goals, now time.Time) int {
	dailyLimit := goals.WeeklyLimit / 7

	byDate := make(map[string]float64, len(entries))
	for _, e := range entries {
		byDate[e.Date] += e.Units
	}

	streak := 0
	for i := 0; i < streakScanDays; i++ {
		day := now.AddDate(0, 0, -i).Format(model.DateLayout)
		if byDate[day] <= dailyLimit {
			streak++
		} else {
			break
		}
	}
	return streak
}

// TypeStat accumulates per-drink-type totals across all history.
type TypeStat struct {
	Count int     `json:"count"`
	Units float64 `json:"units"`
}

// TypeStats maps drink-type label to serving count and unit totals.
// Count sums the quantity field; Units sums units. Not time-bounded.
func TypeStats(entries []model.DrinkEntry) map[string]TypeStat {
	stats := make(map[string]TypeStat)
	for _, e := range entries {
		s := stats[e.Type]
		s.Count += e.Quantity
		s.Units += e.Units
		stats[e.Type] = s
	}
	return stats
}

// DrinksByDateRange filters entries whose parsed date falls within
// [start, end], inclusive on both ends.
func DrinksByDateRange(entries []model.DrinkEntry, start, end time.Time) []model.DrinkEntry {
	out := make([]model.DrinkEntry, 0)
	for _, e := range entries {
		t, err := time.ParseInLocation(model.DateLayout, e.Date, start.Location())
		if err != nil {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// AverageDailyIntake divides the unit total over the trailing window by
// days. Days without entries still divide into the average.
func AverageDailyIntake(entries []model.DrinkEntry, days int, now time.Time) float64 {
	if days <= 0 {
		return 0
	}
	start := now.AddDate(0, 0, -days)
	window := DrinksByDateRange(entries, start, now)
	return SumUnits(window) / float64(days)
}

// WeekTotal is the unit total of one 7-day bucket counting back from now.
type WeekTotal struct {
	WeekStart string  `json:"weekStart"`
	Units     float64 `json:"units"`
}

// WeeklyTotals buckets the trailing weeks*7 days into 7-day windows
// ending at now, oldest first. Bucket 0 in the result is the oldest.
func WeeklyTotals(entries []model.DrinkEntry, now time.Time, weeks int) []WeekTotal {
	if weeks <= 0 {
		return nil
	}
	out := make([]WeekTotal, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		end := now.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -6)
		bucket := DrinksByDateRange(entries, start, end)
		out = append(out, WeekTotal{
			WeekStart: start.Format(model.DateLayout),
			Units:     SumUnits(bucket),
		})
	}
	return out
}

// WeeklyTrend is the difference between the average of the two most
// recent weekly totals and the average of the two before them. Negative
// means consumption is falling.
func WeeklyTrend(entries []model.DrinkEntry, now time.Time) float64 {
	totals := WeeklyTotals(entries, now, 4)
	older := (totals[0].Units + totals[1].Units) / 2
	recent := (totals[2].Units + totals[3].Units) / 2
	return recent - older
}

// DayTotal is the unit total of one calendar day.
type DayTotal struct {
	Date  string  `json:"date"`
	Units float64 `json:"units"`
}

// DailyTotals returns per-day unit totals for the trailing days window
// ending at now, oldest first, with zero-filled days.
func DailyTotals(entries []model.DrinkEntry, now time.Time, days int) []DayTotal {
	if days <= 0 {
		return nil
	}
	byDate := make(map[string]float64, len(entries))
	for _, e := range entries {
		byDate[e.Date] += e.Units
	}
	out := make([]DayTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(model.DateLayout)
		out = append(out, DayTotal{Date: date, Units: byDate[date]})
	}
	return out
}

// MonthIntake maps day-of-month to unit totals for one calendar month.
func MonthIntake(entries []model.DrinkEntry, year int, month time.Month) map[int]float64 {
	out := make(map[int]float64)
	for _, e := range entries {
		t, err := time.Parse(model.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			out[t.Day()] += e.Units
		}
	}
	return out
}
