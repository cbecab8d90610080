// Package validation checks user-supplied habit and task fields before
// they reach the tracker.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/manasgurde21/DailyGrow/internal/constants"
)

// ValidateTime checks that the string is a valid HH:MM wall-clock time.
func ValidateTime(timeStr string) error {
	if _, err := time.Parse(constants.TimeFormat, timeStr); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", timeStr)
	}
	return nil
}

// ValidateDate checks that the string is a valid YYYY-MM-DD calendar date.
func ValidateDate(dateStr string) error {
	if _, err := time.Parse(constants.DateFormat, dateStr); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateStr)
	}
	return nil
}

// ValidateName checks that a habit name or task title is non-blank.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// ValidatePriority checks that the string is a known task priority.
func ValidatePriority(p string) error {
	if !constants.ValidPriority(constants.Priority(p)) {
		return fmt.Errorf("invalid priority %q (expected Low, Medium, or High)", p)
	}
	return nil
}

// ValidateHabitType checks that the string is a known habit cadence.
func ValidateHabitType(t string) error {
	if !constants.ValidHabitType(constants.HabitType(t)) {
		return fmt.Errorf("invalid habit type %q (expected Daily or Weekly)", t)
	}
	return nil
}

// ValidateColor checks that the color is one of the selectable tags.
func ValidateColor(color string) error {
	for _, c := range constants.Colors {
		if c == color {
			return nil
		}
	}
	return fmt.Errorf("invalid color %q (expected one of %s)", color, strings.Join(constants.Colors, ", "))
}
