package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Madhacks12/drinktrack/internal/model"
)

// ExportData is the portable snapshot: one JSON document covering
// entries, goals, session user, and app settings.
type ExportData struct {
	Drinks   []model.DrinkEntry `json:"drinks"`
	Goals    model.Goals        `json:"goals"`
	User     model.User         `json:"user"`
	Settings model.AppSettings  `json:"settings"`
}

// ExportSnapshot assembles the current state for export.
func ExportSnapshot(db *sql.DB) (*ExportData, error) {
	drinks, err := ListDrinks(db)
	if err != nil {
		return nil, err
	}
	out := &ExportData{
		Drinks:   drinks,
		Goals:    GetGoals(db),
		Settings: GetAppSettings(db),
	}
	if u := CurrentUser(db); u != nil {
		out.User = *u
	}
	return out, nil
}

// ExportJSON renders the snapshot pretty-printed.
func ExportJSON(db *sql.DB) ([]byte, error) {
	data, err := ExportSnapshot(db)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return b, nil
}

// rawImport defers decoding of each section so its shape can be checked
// before anything is written.
type rawImport struct {
	Drinks   json.RawMessage `json:"drinks"`
	Goals    json.RawMessage `json:"goals"`
	User     json.RawMessage `json:"user"`
	Settings json.RawMessage `json:"settings"`
}

// ImportJSON validates and applies a snapshot atomically: if any part
// fails validation or persistence, nothing is written.
func ImportJSON(db *sql.DB, data []byte) error {
	var raw rawImport
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse import document: %w", err)
	}

	var drinks []model.DrinkEntry
	if len(raw.Drinks) == 0 || json.Unmarshal(raw.Drinks, &drinks) != nil || drinks == nil {
		return fmt.Errorf("invalid drinks data: expected a list")
	}
	var goals model.Goals
	if len(raw.Goals) == 0 || json.Unmarshal(raw.Goals, &goals) != nil || string(raw.Goals) == "null" {
		return fmt.Errorf("invalid goals data: expected an object")
	}
	var settings model.AppSettings
	if len(raw.Settings) == 0 || json.Unmarshal(raw.Settings, &settings) != nil || string(raw.Settings) == "null" {
		return fmt.Errorf("invalid settings data: expected an object")
	}
	var user model.User
	if len(raw.User) > 0 {
		// A malformed user section is ignored rather than fatal.
		_ = json.Unmarshal(raw.User, &user)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := replaceDrinksTx(tx, drinks); err != nil {
		return err
	}
	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("marshal imported goals: %w", err)
	}
	if err := saveKVTx(tx, kvGoals, string(goalsJSON)); err != nil {
		return err
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal imported settings: %w", err)
	}
	if err := saveKVTx(tx, kvSettings, string(settingsJSON)); err != nil {
		return err
	}
	if user.Name != "" && user.Email != "" {
		sessionJSON, err := json.Marshal(sessionBlob{User: &user})
		if err != nil {
			return fmt.Errorf("marshal imported user: %w", err)
		}
		if err := saveKVTx(tx, kvSession, string(sessionJSON)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}
	return nil
}
