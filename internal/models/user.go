package models

// Achievement is an unlockable record on the user profile. The list is
// append-only in practice.
type Achievement struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	UnlockedDate string `json:"unlocked_date,omitempty"` // YYYY-MM-DD format
}

// UserProfile is the singleton profile record, located by a fixed id.
type UserProfile struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	AvatarURL            string        `json:"avatar_url"`
	TotalHabitsCompleted int           `json:"total_habits_completed"`
	TotalTasksCompleted  int           `json:"total_tasks_completed"`
	BestStreak           int           `json:"best_streak"`
	Achievements         []Achievement `json:"achievements"`
}

// HasAchievement reports whether an achievement with the given id has
// already been unlocked.
func (p UserProfile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
