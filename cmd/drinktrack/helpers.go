package drinktrack

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Madhacks12/drinktrack/internal/app"
	"github.com/Madhacks12/drinktrack/internal/db"
	"github.com/Madhacks12/drinktrack/internal/model"
)

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func parseDateOrToday(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format(model.DateLayout), nil
	}
	if _, err := time.Parse(model.DateLayout, value); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return value, nil
}

func parseDateArg(name, value string) (time.Time, error) {
	t, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, value)
	}
	return t, nil
}
