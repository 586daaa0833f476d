package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/service"
)

func day(now time.Time, offset int) string {
	return now.AddDate(0, 0, offset).Format(model.DateLayout)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTodaysEntriesMatchesDateStringExactly(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 21, 30, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{ID: "a", Type: "Beer (Pint)", Units: 2.3, Quantity: 1, Date: day(now, 0)},
		{ID: "b", Type: "Wine (Large Glass)", Units: 3.3, Quantity: 1, Date: day(now, -1)},
		{ID: "c", Type: "Spirits (Single)", Units: 1.0, Quantity: 1, Date: day(now, 0)},
	}

	today := service.TodaysEntries(entries, now)
	if len(today) != 2 {
		t.Fatalf("expected 2 entries for today, got %d", len(today))
	}
	if got := service.SumUnits(today); !approx(got, 3.3) {
		t.Fatalf("expected 3.3 units today, got %v", got)
	}
}

func TestWeeklyEntriesRollingWindowInclusiveLowerBound(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{ID: "in-today", Units: 1, Quantity: 1, Date: day(now, 0)},
		{ID: "in-edge", Units: 1, Quantity: 1, Date: day(now, -7)},
		{ID: "out-old", Units: 1, Quantity: 1, Date: day(now, -8)},
		{ID: "bad-date", Units: 1, Quantity: 1, Date: "not-a-date"},
	}

	// At midnight the lower bound lands exactly on day -7's parsed
	// timestamp, so that entry is included.
	week := service.WeeklyEntries(entries, now)
	if len(week) != 2 {
		t.Fatalf("expected 2 entries in rolling week, got %d", len(week))
	}
	for _, e := range week {
		if e.ID == "out-old" || e.ID == "bad-date" {
			t.Fatalf("entry %s should have been excluded", e.ID)
		}
	}
}

func TestWeeklyEntriesWindowRollsWithClockTime(t *testing.T) {
	t.Parallel()
	// The window is 7x24h from the clock, not seven calendar days:
	// entries parse to midnight, so by midday the entry dated exactly
	// seven days ago has already fallen out.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{ID: "in-today", Units: 1, Quantity: 1, Date: day(now, 0)},
		{ID: "aged-out", Units: 1, Quantity: 1, Date: day(now, -7)},
	}

	week := service.WeeklyEntries(entries, now)
	if len(week) != 1 {
		t.Fatalf("expected 1 entry in rolling week, got %d", len(week))
	}
	if week[0].ID != "in-today" {
		t.Fatalf("expected only today's entry, got %s", week[0].ID)
	}
}

func TestStreakEmptyHistoryCountsFullScan(t *testing.T) {
	t.Parallel()
	now := time.Now()
	goals := model.Goals{WeeklyLimit: 14}

	if got := service.Streak(nil, goals, now); got != 30 {
		t.Fatalf("expected streak 30 with no history, got %d", got)
	}
}

func TestStreakBreaksOnFirstOverLimitDay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	goals := model.Goals{WeeklyLimit: 14} // daily limit 2

	entries := []model.DrinkEntry{
		{ID: "a", Units: 1.5, Quantity: 1, Date: day(now, 0)},
		{ID: "b", Units: 2.0, Quantity: 1, Date: day(now, -1)}, // at limit, counts
		{ID: "c", Units: 4.6, Quantity: 2, Date: day(now, -2)}, // over, breaks
		{ID: "d", Units: 0.5, Quantity: 1, Date: day(now, -3)}, // unreachable
	}

	if got := service.Streak(entries, goals, now); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestStreakZeroWeeklyLimitOnlyDryDaysCount(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	goals := model.Goals{WeeklyLimit: 0}

	entries := []model.DrinkEntry{
		{ID: "a", Units: 0.5, Quantity: 1, Date: day(now, -2)},
	}

	// Today and yesterday are dry, the day before breaks the walk.
	if got := service.Streak(entries, goals, now); got != 2 {
		t.Fatalf("expected streak 2 with zero limit, got %d", got)
	}
}

func TestStreakMonotonicInWeeklyLimit(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{ID: "a", Units: 2, Quantity: 1, Date: day(now, -1)},
		{ID: "b", Units: 3, Quantity: 1, Date: day(now, -4)},
		{ID: "c", Units: 5, Quantity: 1, Date: day(now, -9)},
	}

	prev := -1
	for _, limit := range []float64{0, 7, 14, 21, 28, 70} {
		got := service.Streak(entries, model.Goals{WeeklyLimit: limit}, now)
		if got < prev {
			t.Fatalf("streak decreased from %d to %d when weekly limit rose to %v", prev, got, limit)
		}
		prev = got
	}
}

func TestTypeStatsSumsQuantityAndUnits(t *testing.T) {
	t.Parallel()
	entries := []model.DrinkEntry{
		{Type: "Beer (Pint)", Units: 4.6, Quantity: 2},
		{Type: "Beer (Pint)", Units: 2.3, Quantity: 1},
		{Type: "Wine (Small Glass)", Units: 1.5, Quantity: 1},
	}

	stats := service.TypeStats(entries)
	beer := stats["Beer (Pint)"]
	if beer.Count != 3 {
		t.Fatalf("expected 3 beer servings, got %d", beer.Count)
	}
	if !approx(beer.Units, 6.9) {
		t.Fatalf("expected 6.9 beer units, got %v", beer.Units)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 drink types, got %d", len(stats))
	}
}

func TestDrinksByDateRangeInclusiveBothEnds(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{ID: "before", Units: 1, Date: "2026-02-28"},
		{ID: "at-start", Units: 1, Date: "2026-03-01"},
		{ID: "inside", Units: 1, Date: "2026-03-03"},
		{ID: "at-end", Units: 1, Date: "2026-03-05"},
		{ID: "after", Units: 1, Date: "2026-03-06"},
	}

	window := service.DrinksByDateRange(entries, start, end)
	if len(window) != 3 {
		t.Fatalf("expected 3 entries in range, got %d", len(window))
	}
}

func TestAverageDailyIntakeDividesByWindowDays(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{Units: 10, Quantity: 1, Date: day(now, -1)},
		{Units: 20, Quantity: 1, Date: day(now, -3)},
	}

	// Days without entries still divide into the average.
	if got := service.AverageDailyIntake(entries, 30, now); got != 1 {
		t.Fatalf("expected average 1.0 over 30 days, got %v", got)
	}
	if got := service.AverageDailyIntake(entries, 0, now); got != 0 {
		t.Fatalf("expected 0 for empty window, got %v", got)
	}
}

func TestWeeklyTotalsOldestFirstAndZeroFilled(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{Units: 3, Quantity: 1, Date: day(now, 0)},
		{Units: 5, Quantity: 1, Date: day(now, -8)},
	}

	totals := service.WeeklyTotals(entries, now, 4)
	if len(totals) != 4 {
		t.Fatalf("expected 4 weekly buckets, got %d", len(totals))
	}
	if totals[3].Units != 3 {
		t.Fatalf("expected 3 units in newest bucket, got %v", totals[3].Units)
	}
	if totals[2].Units != 5 {
		t.Fatalf("expected 5 units in second-newest bucket, got %v", totals[2].Units)
	}
	if totals[0].Units != 0 || totals[1].Units != 0 {
		t.Fatalf("expected empty older buckets, got %v and %v", totals[0].Units, totals[1].Units)
	}
}

func TestWeeklyTrendDirection(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	falling := []model.DrinkEntry{
		{Units: 10, Quantity: 1, Date: day(now, -22)},
		{Units: 10, Quantity: 1, Date: day(now, -15)},
		{Units: 2, Quantity: 1, Date: day(now, -8)},
		{Units: 2, Quantity: 1, Date: day(now, -1)},
	}
	if trend := service.WeeklyTrend(falling, now); trend >= 0 {
		t.Fatalf("expected negative trend for falling intake, got %v", trend)
	}

	rising := []model.DrinkEntry{
		{Units: 2, Quantity: 1, Date: day(now, -22)},
		{Units: 10, Quantity: 1, Date: day(now, -1)},
	}
	if trend := service.WeeklyTrend(rising, now); trend <= 0 {
		t.Fatalf("expected positive trend for rising intake, got %v", trend)
	}
}

func TestDailyTotalsZeroFilledOldestFirst(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	entries := []model.DrinkEntry{
		{Units: 2.3, Quantity: 1, Date: day(now, 0)},
		{Units: 1.1, Quantity: 1, Date: day(now, -6)},
	}

	totals := service.DailyTotals(entries, now, 7)
	if len(totals) != 7 {
		t.Fatalf("expected 7 days, got %d", len(totals))
	}
	if totals[0].Date != day(now, -6) || totals[0].Units != 1.1 {
		t.Fatalf("unexpected oldest day %+v", totals[0])
	}
	if totals[6].Date != day(now, 0) || totals[6].Units != 2.3 {
		t.Fatalf("unexpected newest day %+v", totals[6])
	}
	for _, d := range totals[1:6] {
		if d.Units != 0 {
			t.Fatalf("expected zero-filled day %s, got %v", d.Date, d.Units)
		}
	}
}

func TestMonthIntakeGroupsByDayOfMonth(t *testing.T) {
	t.Parallel()
	entries := []model.DrinkEntry{
		{Units: 2, Date: "2026-03-01"},
		{Units: 3, Date: "2026-03-01"},
		{Units: 4, Date: "2026-03-15"},
		{Units: 9, Date: "2026-04-01"},
		{Units: 1, Date: "garbage"},
	}

	intake := service.MonthIntake(entries, 2026, time.March)
	if len(intake) != 2 {
		t.Fatalf("expected 2 days with intake, got %d", len(intake))
	}
	if intake[1] != 5 {
		t.Fatalf("expected 5 units on the 1st, got %v", intake[1])
	}
	if intake[15] != 4 {
		t.Fatalf("expected 4 units on the 15th, got %v", intake[15])
	}
}
