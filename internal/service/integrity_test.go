package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/service"
)

func TestCheckIntegrityHealthyStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.AddDrink(db, service.AddDrinkInput{Type: "Beer (Pint)", Units: 2.3, Date: "2026-03-01"}); err != nil {
		t.Fatalf("add drink: %v", err)
	}
	if err := service.Register(db, "sam@example.com", "Sam", "longenough"); err != nil {
		t.Fatalf("register: %v", err)
	}

	report, err := service.CheckIntegrity(db)
	if err != nil {
		t.Fatalf("check integrity: %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy store, got problems %v", report.Problems)
	}
	if report.Entries != 1 || report.RegisteredUser != 1 {
		t.Fatalf("unexpected counts %+v", report)
	}
}

func TestCheckIntegrityFlagsMalformedData(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// Plant rows that bypass AddDrink validation.
	if _, err := db.Exec(`INSERT INTO drinks(id, type, units, quantity, time, date) VALUES('x', '', 1, 1, '', 'garbage')`); err != nil {
		t.Fatalf("plant bad entry: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO kv(key, value) VALUES('notifications', '{broken')`); err != nil {
		t.Fatalf("plant corrupt blob: %v", err)
	}
	if err := service.SaveGoals(db, model.Goals{WeeklyLimit: 0}); err != nil {
		t.Fatalf("save zero-limit goals: %v", err)
	}

	report, err := service.CheckIntegrity(db)
	if err != nil {
		t.Fatalf("check integrity: %v", err)
	}
	if report.Healthy() {
		t.Fatal("expected problems to be reported")
	}

	joined := strings.Join(report.Problems, "\n")
	for _, want := range []string{"empty type", "undecodable date", "does not decode", "weekly limit is 0"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected a problem mentioning %q, got:\n%s", want, joined)
		}
	}

	// Report only: nothing was repaired or removed.
	entries, err := service.ListDrinks(db)
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected planted entry to survive, got %d entries", len(entries))
	}
}

func TestSeedDemoData(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	if err := service.SeedDemoData(db, now); err != nil {
		t.Fatalf("seed demo data: %v", err)
	}

	entries, err := service.ListDrinks(db)
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 demo entries, got %d", len(entries))
	}
	for _, e := range entries {
		if _, err := time.Parse(model.DateLayout, e.Date); err != nil {
			t.Fatalf("demo entry %s has bad date %q", e.ID, e.Date)
		}
	}
	if goals := service.GetGoals(db); goals.WeeklyLimit != 14 || goals.ReductionTarget != 20 {
		t.Fatalf("unexpected demo goals %+v", goals)
	}
}
