package service_test

import (
	"encoding/json"
	"testing"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/Madhacks12/drinktrack/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src := newTestDB(t)
	defer src.Close()

	if _, err := service.AddDrink(src, service.AddDrinkInput{Type: "Beer (Pint)", Units: 2.3, Quantity: 1, Date: "2026-03-01"}); err != nil {
		t.Fatalf("add drink: %v", err)
	}
	if err := service.SaveGoals(src, model.Goals{WeeklyLimit: 10, ReductionTarget: 30, Motivation: "Save money"}); err != nil {
		t.Fatalf("save goals: %v", err)
	}
	if err := service.SaveCurrentUser(src, model.User{Name: "Sam", Email: "sam@example.com"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	data, err := service.ExportJSON(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestDB(t)
	defer dst.Close()

	if err := service.ImportJSON(dst, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	entries, err := service.ListDrinks(dst)
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != "Beer (Pint)" {
		t.Fatalf("unexpected imported entries %+v", entries)
	}
	if goals := service.GetGoals(dst); goals.WeeklyLimit != 10 || goals.Motivation != "Save money" {
		t.Fatalf("unexpected imported goals %+v", goals)
	}
	if u := service.CurrentUser(dst); u == nil || u.Email != "sam@example.com" {
		t.Fatalf("unexpected imported session %+v", u)
	}
}

func TestImportRejectsBadShapesWithoutPartialWrite(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	existing, err := service.AddDrink(db, service.AddDrinkInput{Type: "Cocktail", Units: 1.5, Date: "2026-03-01"})
	if err != nil {
		t.Fatalf("add drink: %v", err)
	}

	bad := []string{
		`not json at all`,
		`{"goals":{},"settings":{}}`,
		`{"drinks":{},"goals":{},"settings":{}}`,
		`{"drinks":null,"goals":{},"settings":{}}`,
		`{"drinks":[],"goals":null,"settings":{}}`,
		`{"drinks":[],"goals":{},"settings":"dark"}`,
	}
	for _, doc := range bad {
		if err := service.ImportJSON(db, []byte(doc)); err == nil {
			t.Fatalf("expected rejection of %s", doc)
		}
	}

	entries, err := service.ListDrinks(db)
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != existing.ID {
		t.Fatalf("rejected imports must not touch stored entries, got %+v", entries)
	}
}

func TestImportToleratesMissingUserSection(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	doc := `{"drinks":[],"goals":{"weeklyLimit":12,"reductionTarget":10,"motivation":"m"},"settings":{"theme":"dark","units":"uk","notifications":true,"dataSharing":false,"analytics":false}}`
	if err := service.ImportJSON(db, []byte(doc)); err != nil {
		t.Fatalf("import without user: %v", err)
	}
	if u := service.CurrentUser(db); u != nil {
		t.Fatalf("expected no session after user-less import, got %+v", u)
	}
	if goals := service.GetGoals(db); goals.WeeklyLimit != 12 {
		t.Fatalf("unexpected goals %+v", goals)
	}
}

func TestExportShapeIsStable(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	data, err := service.ExportJSON(db)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	for _, key := range []string{"drinks", "goals", "user", "settings"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("export missing %q section", key)
		}
	}
	// An empty store exports an empty list, not null.
	if string(doc["drinks"]) == "null" {
		t.Fatal("drinks section must be a list even when empty")
	}
}
