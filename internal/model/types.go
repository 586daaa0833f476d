package model

// DateLayout is the day-granularity format used for entry dates. All
// date-based grouping compares these strings directly.
const DateLayout = "2006-01-02"

// DrinkEntry is a single consumption event. Units carries the full
// alcohol content of the event (serving units already multiplied by
// quantity); Quantity is informational only.
type DrinkEntry struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Units    float64 `json:"units"`
	Quantity int     `json:"quantity"`
	Time     string  `json:"time"`
	Date     string  `json:"date"`
}

// Goals is the active target configuration. The daily limit is always
// derived as WeeklyLimit/7 and never stored independently.
type Goals struct {
	WeeklyLimit     float64 `json:"weeklyLimit"`
	ReductionTarget float64 `json:"reductionTarget"`
	Motivation      string  `json:"motivation"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AppSettings struct {
	Theme         string `json:"theme"`
	Units         string `json:"units"`
	Notifications bool   `json:"notifications"`
	DataSharing   bool   `json:"dataSharing"`
	Analytics     bool   `json:"analytics"`
}

type DailyReminderSettings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

type WeeklyReportSettings struct {
	Enabled bool   `json:"enabled"`
	Day     string `json:"day"`
	Time    string `json:"time"`
}

type GoalReminderSettings struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"` // daily or weekly
}

type EncouragementSettings struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"` // high, medium, or low
}

type StreakCelebrationSettings struct {
	Enabled    bool  `json:"enabled"`
	Milestones []int `json:"milestones"`
}

type WarningAlertSettings struct {
	Enabled         bool    `json:"enabled"`
	WeeklyThreshold float64 `json:"weeklyThreshold"`
	DailyThreshold  float64 `json:"dailyThreshold"`
}

// NotificationSettings holds the global enable flag plus per-feature
// configuration. A feature is effectively enabled only when both its own
// flag and the global flag are set; the stored flags are independent.
type NotificationSettings struct {
	Enabled           bool                      `json:"enabled"`
	DailyReminder     DailyReminderSettings     `json:"dailyReminder"`
	WeeklyReport      WeeklyReportSettings      `json:"weeklyReport"`
	GoalReminders     GoalReminderSettings      `json:"goalReminders"`
	Encouragement     EncouragementSettings     `json:"encouragement"`
	StreakCelebration StreakCelebrationSettings `json:"streakCelebration"`
	WarningAlerts     WarningAlertSettings      `json:"warningAlerts"`
}

func DefaultGoals() Goals {
	return Goals{
		WeeklyLimit:     14,
		ReductionTarget: 10,
		Motivation:      "Improve my health",
	}
}

func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme:         "system",
		Units:         "uk",
		Notifications: true,
		DataSharing:   false,
		Analytics:     false,
	}
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled: true,
		DailyReminder: DailyReminderSettings{
			Enabled: true,
			Time:    "20:00",
			Message: "Don't forget to log your drinks for today!",
		},
		WeeklyReport: WeeklyReportSettings{
			Enabled: true,
			Day:     "sunday",
			Time:    "18:00",
		},
		GoalReminders: GoalReminderSettings{
			Enabled:   true,
			Frequency: "weekly",
		},
		Encouragement: EncouragementSettings{
			Enabled:   true,
			Frequency: "medium",
		},
		StreakCelebration: StreakCelebrationSettings{
			Enabled:    true,
			Milestones: []int{3, 7, 14, 30, 60, 90},
		},
		WarningAlerts: WarningAlertSettings{
			Enabled:         true,
			WeeklyThreshold: 14,
			DailyThreshold:  4,
		},
	}
}
