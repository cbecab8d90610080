package validation

import "testing"

func TestValidateTime(t *testing.T) {
	valid := []string{"00:00", "09:00", "23:59"}
	for _, v := range valid {
		if err := ValidateTime(v); err != nil {
			t.Errorf("expected %q valid: %v", v, err)
		}
	}

	invalid := []string{"", "9am", "24:00", "12:60", "12", "noon"}
	for _, v := range invalid {
		if err := ValidateTime(v); err == nil {
			t.Errorf("expected %q invalid", v)
		}
	}
}

func TestValidateDate(t *testing.T) {
	valid := []string{"2026-08-28", "2024-02-29", "1999-01-01"}
	for _, v := range valid {
		if err := ValidateDate(v); err != nil {
			t.Errorf("expected %q valid: %v", v, err)
		}
	}

	invalid := []string{"", "28-08-2026", "2026-13-01", "2026-02-30", "today"}
	for _, v := range invalid {
		if err := ValidateDate(v); err == nil {
			t.Errorf("expected %q invalid", v)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Drink Water"); err != nil {
		t.Errorf("expected valid name: %v", err)
	}
	for _, v := range []string{"", "   ", "\t"} {
		if err := ValidateName(v); err == nil {
			t.Errorf("expected %q invalid", v)
		}
	}
}

func TestValidatePriority(t *testing.T) {
	for _, v := range []string{"Low", "Medium", "High"} {
		if err := ValidatePriority(v); err != nil {
			t.Errorf("expected %q valid: %v", v, err)
		}
	}
	for _, v := range []string{"", "low", "Urgent", "HIGH"} {
		if err := ValidatePriority(v); err == nil {
			t.Errorf("expected %q invalid", v)
		}
	}
}

func TestValidateHabitType(t *testing.T) {
	for _, v := range []string{"Daily", "Weekly"} {
		if err := ValidateHabitType(v); err != nil {
			t.Errorf("expected %q valid: %v", v, err)
		}
	}
	for _, v := range []string{"", "daily", "Monthly"} {
		if err := ValidateHabitType(v); err == nil {
			t.Errorf("expected %q invalid", v)
		}
	}
}

func TestValidateColor(t *testing.T) {
	for _, v := range []string{"blue", "rose", "pink"} {
		if err := ValidateColor(v); err != nil {
			t.Errorf("expected %q valid: %v", v, err)
		}
	}
	for _, v := range []string{"", "Blue", "magenta"} {
		if err := ValidateColor(v); err == nil {
			t.Errorf("expected %q invalid", v)
		}
	}
}
