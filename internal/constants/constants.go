package constants

// HabitType represents the cadence of a habit
type HabitType string

// Priority represents the priority of a task
type Priority string

const (
	AppName           = "dailygrow"
	DefaultKeyringKey = "gemini-api-key"
	DefaultConfigPath = "~/.config/dailygrow/dailygrow.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// UserProfileID is the fixed key of the singleton user profile record
	UserProfileID = "user-profile"

	// Habit type constants
	HabitDaily  HabitType = "Daily"
	HabitWeekly HabitType = "Weekly"

	// Priority constants
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"

	// DefaultReminderTime is the reminder pre-filled in add forms
	DefaultReminderTime = "09:00"

	// DefaultColor is the color pre-selected in add forms
	DefaultColor = "blue"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dailygrow-"
	BackupFileSuffix = ".db"

	// OnFireStreak is the streak length that unlocks the "On Fire" achievement
	OnFireStreak = 7
)

// Colors are the selectable habit color tags, used for display grouping only
var Colors = []string{
	"rose", "orange", "amber", "emerald", "teal",
	"cyan", "blue", "indigo", "purple", "pink",
}

// ValidPriority reports whether p is one of the known task priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidHabitType reports whether t is one of the known habit cadences.
func ValidHabitType(t HabitType) bool {
	return t == HabitDaily || t == HabitWeekly
}
