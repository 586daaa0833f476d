package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Madhacks12/drinktrack/internal/model"
)

// IntegrityReport lists conditions worth surfacing without mutating
// anything.
type IntegrityReport struct {
	Entries        int      `json:"entries"`
	RegisteredUser int      `json:"registered_users"`
	Problems       []string `json:"problems,omitempty"`
}

func (r *IntegrityReport) Healthy() bool {
	return len(r.Problems) == 0
}

// CheckIntegrity inspects stored data for malformed entries and
// undecodable configuration blobs. Report only; nothing is repaired.
func CheckIntegrity(db *sql.DB) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	entries, err := ListDrinks(db)
	if err != nil {
		return nil, err
	}
	report.Entries = len(entries)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			report.Problems = append(report.Problems, fmt.Sprintf("duplicate entry id %s", e.ID))
		}
		seen[e.ID] = true
		if e.Units < 0 {
			report.Problems = append(report.Problems, fmt.Sprintf("entry %s has negative units", e.ID))
		}
		if e.Quantity <= 0 {
			report.Problems = append(report.Problems, fmt.Sprintf("entry %s has non-positive quantity", e.ID))
		}
		if e.Type == "" {
			report.Problems = append(report.Problems, fmt.Sprintf("entry %s has an empty type", e.ID))
		}
		if _, err := time.Parse(model.DateLayout, e.Date); err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("entry %s has undecodable date %q", e.ID, e.Date))
		}
	}

	for _, key := range []string{kvGoals, kvSettings, kvNotifications, kvSession} {
		raw, ok := getKV(db, key)
		if !ok {
			continue
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("blob %q does not decode: falls back to defaults", key))
		}
	}

	if goals := GetGoals(db); goals.WeeklyLimit == 0 {
		report.Problems = append(report.Problems, "weekly limit is 0: any intake today resets the streak")
	}

	n, err := RegisteredUserCount(db)
	if err != nil {
		return nil, err
	}
	report.RegisteredUser = n

	return report, nil
}
