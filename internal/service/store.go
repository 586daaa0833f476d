package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
	"github.com/google/uuid"
)

// Keys for the JSON blobs held in the kv table. Drink entries and the
// registered-user ledger live in their own tables.
const (
	kvGoals         = "goals"
	kvSettings      = "settings"
	kvNotifications = "notifications"
	kvSession       = "auth"
	kvPermission    = "notify_permission"
)

type AddDrinkInput struct {
	Type     string
	Units    float64
	Quantity int
	Time     string
	Date     string
}

// UpdateDrinkInput carries a partial update; nil fields are left as-is.
type UpdateDrinkInput struct {
	Type     *string
	Units    *float64
	Quantity *int
	Time     *string
	Date     *string
}

// ListDrinks returns every entry in insertion order.
func ListDrinks(db *sql.DB) ([]model.DrinkEntry, error) {
	rows, err := db.Query(`SELECT id, type, units, quantity, time, date FROM drinks ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	defer rows.Close()

	entries := make([]model.DrinkEntry, 0)
	for rows.Next() {
		var e model.DrinkEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Units, &e.Quantity, &e.Time, &e.Date); err != nil {
			return nil, fmt.Errorf("scan drink: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drinks: %w", err)
	}
	return entries, nil
}

// AddDrink persists a new entry, assigning a fresh opaque id.
func AddDrink(db *sql.DB, in AddDrinkInput) (model.DrinkEntry, error) {
	in.Type = strings.TrimSpace(in.Type)
	if in.Type == "" {
		return model.DrinkEntry{}, fmt.Errorf("drink type is required")
	}
	if in.Units < 0 {
		return model.DrinkEntry{}, fmt.Errorf("units must be >= 0")
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if strings.TrimSpace(in.Date) == "" {
		in.Date = time.Now().Format(model.DateLayout)
	}
	if _, err := time.Parse(model.DateLayout, in.Date); err != nil {
		return model.DrinkEntry{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", in.Date)
	}

	entry := model.DrinkEntry{
		ID:       uuid.NewString(),
		Type:     in.Type,
		Units:    in.Units,
		Quantity: in.Quantity,
		Time:     strings.TrimSpace(in.Time),
		Date:     in.Date,
	}
	if _, err := db.Exec(`
INSERT INTO drinks(id, type, units, quantity, time, date)
VALUES(?, ?, ?, ?, ?, ?)
`, entry.ID, entry.Type, entry.Units, entry.Quantity, entry.Time, entry.Date); err != nil {
		return model.DrinkEntry{}, fmt.Errorf("insert drink: %w", err)
	}
	return entry, nil
}

// RemoveDrink deletes an entry by id, reporting whether one existed.
func RemoveDrink(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM drinks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete drink %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected for drink %s: %w", id, err)
	}
	return affected > 0, nil
}

// UpdateDrink applies a partial update, reporting whether the entry existed.
func UpdateDrink(db *sql.DB, id string, in UpdateDrinkInput) (bool, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if in.Type != nil {
		if strings.TrimSpace(*in.Type) == "" {
			return false, fmt.Errorf("drink type cannot be empty")
		}
		sets = append(sets, "type = ?")
		args = append(args, strings.TrimSpace(*in.Type))
	}
	if in.Units != nil {
		if *in.Units < 0 {
			return false, fmt.Errorf("units must be >= 0")
		}
		sets = append(sets, "units = ?")
		args = append(args, *in.Units)
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return false, fmt.Errorf("quantity must be > 0")
		}
		sets = append(sets, "quantity = ?")
		args = append(args, *in.Quantity)
	}
	if in.Time != nil {
		sets = append(sets, "time = ?")
		args = append(args, strings.TrimSpace(*in.Time))
	}
	if in.Date != nil {
		if _, err := time.Parse(model.DateLayout, *in.Date); err != nil {
			return false, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *in.Date)
		}
		sets = append(sets, "date = ?")
		args = append(args, *in.Date)
	}
	if len(sets) == 0 {
		return false, fmt.Errorf("no fields to update")
	}
	args = append(args, id)

	res, err := db.Exec(`UPDATE drinks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return false, fmt.Errorf("update drink %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected for drink %s: %w", id, err)
	}
	return affected > 0, nil
}

// ReplaceDrinks swaps the entire entry collection inside one transaction.
func ReplaceDrinks(db *sql.DB, entries []model.DrinkEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := replaceDrinksTx(tx, entries); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	return nil
}

func replaceDrinksTx(tx *sql.Tx, entries []model.DrinkEntry) error {
	if _, err := tx.Exec(`DELETE FROM drinks`); err != nil {
		return fmt.Errorf("clear drinks: %w", err)
	}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Quantity <= 0 {
			e.Quantity = 1
		}
		if _, err := tx.Exec(`
INSERT INTO drinks(id, type, units, quantity, time, date)
VALUES(?, ?, ?, ?, ?, ?)
`, e.ID, e.Type, e.Units, e.Quantity, e.Time, e.Date); err != nil {
			return fmt.Errorf("insert drink %s: %w", e.ID, err)
		}
	}
	return nil
}

// ClearAll removes every persisted record: entries, configuration blobs,
// the session, and the registered-user ledger.
func ClearAll(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin clear tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM drinks`,
		`DELETE FROM kv`,
		`DELETE FROM users`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear all data: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear tx: %w", err)
	}
	return nil
}

// getKV reads a raw blob. A missing key or a read failure both report
// absence; read failures are logged, never raised.
func getKV(db *sql.DB, key string) (string, bool) {
	var value string
	err := db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Warn("read persisted blob", "key", key, "err", err)
		return "", false
	}
	return value, true
}

func saveKV(db *sql.DB, key, value string) error {
	if _, err := db.Exec(`
INSERT INTO kv(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func saveKVTx(tx *sql.Tx, key, value string) error {
	if _, err := tx.Exec(`
INSERT INTO kv(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// decodeKV unmarshals a stored blob into out. A corrupt blob is treated
// as absent: the condition is logged and false returned so callers fall
// back to defaults.
func decodeKV(db *sql.DB, key string, out any) bool {
	raw, ok := getKV(db, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("corrupt persisted blob, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

func saveJSON(db *sql.DB, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return saveKV(db, key, string(b))
}

// GetGoals returns the active goals, falling back to defaults when
// nothing valid is stored.
func GetGoals(db *sql.DB) model.Goals {
	var g model.Goals
	if decodeKV(db, kvGoals, &g) {
		return g
	}
	return model.DefaultGoals()
}

func SaveGoals(db *sql.DB, g model.Goals) error {
	if g.WeeklyLimit < 0 {
		return fmt.Errorf("weekly limit must be >= 0")
	}
	if g.ReductionTarget < 0 || g.ReductionTarget > 100 {
		return fmt.Errorf("reduction target must be between 0 and 100")
	}
	return saveJSON(db, kvGoals, g)
}

func GetAppSettings(db *sql.DB) model.AppSettings {
	var s model.AppSettings
	if decodeKV(db, kvSettings, &s) {
		return s
	}
	return model.DefaultAppSettings()
}

func SaveAppSettings(db *sql.DB, s model.AppSettings) error {
	switch s.Theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("invalid theme %q (expected light, dark, or system)", s.Theme)
	}
	switch s.Units {
	case "uk", "us":
	default:
		return fmt.Errorf("invalid units system %q (expected uk or us)", s.Units)
	}
	return saveJSON(db, kvSettings, s)
}

func GetNotificationSettings(db *sql.DB) model.NotificationSettings {
	var s model.NotificationSettings
	if decodeKV(db, kvNotifications, &s) {
		return s
	}
	return model.DefaultNotificationSettings()
}

func SaveNotificationSettings(db *sql.DB, s model.NotificationSettings) error {
	switch s.GoalReminders.Frequency {
	case "daily", "weekly":
	default:
		return fmt.Errorf("invalid goal reminder frequency %q (expected daily or weekly)", s.GoalReminders.Frequency)
	}
	switch s.Encouragement.Frequency {
	case "high", "medium", "low":
	default:
		return fmt.Errorf("invalid encouragement frequency %q (expected high, medium, or low)", s.Encouragement.Frequency)
	}
	return saveJSON(db, kvNotifications, s)
}

type sessionBlob struct {
	User *model.User `json:"user"`
}

// CurrentUser returns the active session user, or nil when logged out.
func CurrentUser(db *sql.DB) *model.User {
	var s sessionBlob
	if decodeKV(db, kvSession, &s) {
		return s.User
	}
	return nil
}

func SaveCurrentUser(db *sql.DB, u model.User) error {
	return saveJSON(db, kvSession, sessionBlob{User: &u})
}

func ClearCurrentUser(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM kv WHERE key = ?`, kvSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Notification permission mirrors the host facility's three-state model.
const (
	PermissionDefault = "default"
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

func GetPermission(db *sql.DB) string {
	raw, ok := getKV(db, kvPermission)
	if !ok {
		return PermissionDefault
	}
	switch raw {
	case PermissionGranted, PermissionDenied, PermissionDefault:
		return raw
	}
	slog.Warn("corrupt permission state, using default", "value", raw)
	return PermissionDefault
}

func SetPermission(db *sql.DB, state string) error {
	switch state {
	case PermissionGranted, PermissionDenied, PermissionDefault:
	default:
		return fmt.Errorf("invalid permission state %q", state)
	}
	return saveKV(db, kvPermission, state)
}
