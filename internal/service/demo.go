package service

import (
	"database/sql"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/google/uuid"
)

// SeedDemoData replaces the entry history and goals with a small sample
// set for trying the app out.
func SeedDemoData(db *sql.DB, now time.Time) error {
	yesterday := now.AddDate(0, 0, -1).Format(model.DateLayout)
	twoDaysAgo := now.AddDate(0, 0, -2).Format(model.DateLayout)

	demo := []model.DrinkEntry{
		{ID: uuid.NewString(), Type: "Beer (Pint)", Units: 2.3, Quantity: 1, Time: "19:30", Date: yesterday},
		{ID: uuid.NewString(), Type: "Wine (Medium Glass)", Units: 2.1, Quantity: 1, Time: "20:15", Date: yesterday},
		{ID: uuid.NewString(), Type: "Beer (Half Pint)", Units: 1.2, Quantity: 1, Time: "18:45", Date: twoDaysAgo},
	}
	if err := ReplaceDrinks(db, demo); err != nil {
		return err
	}
	return SaveGoals(db, model.Goals{
		WeeklyLimit:     14,
		ReductionTarget: 20,
		Motivation:      "Improve my health and save money",
	})
}
