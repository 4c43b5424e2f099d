package domain

// Goals is the user's daily workload configuration.
type Goals struct {
	DailyNew      int // new problems per day
	DailyReview   int // reviews per day
	TimeBudgetMin int // minutes available per day, >= 10
}

// DefaultGoals returns the out-of-the-box goal configuration.
func DefaultGoals() Goals {
	return Goals{DailyNew: 3, DailyReview: 8, TimeBudgetMin: 45}
}

// Normalize clamps out-of-range goal values to their domain bounds.
func (g Goals) Normalize() Goals {
	if g.DailyNew < 0 {
		g.DailyNew = 0
	}
	if g.DailyReview < 0 {
		g.DailyReview = 0
	}
	if g.TimeBudgetMin < 10 {
		g.TimeBudgetMin = 10
	}
	return g
}

// Settings holds the remaining configuration surface: the first review
// interval for newly added items and the auto-log-on-add flag.
type Settings struct {
	ID                string // single row, always "default"
	Goals             Goals
	FirstIntervalDays int // 1-30
	AutoLogOnAdd      bool
}

// DefaultSettings returns the seeded settings row.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                "default",
		Goals:             DefaultGoals(),
		FirstIntervalDays: 1,
		AutoLogOnAdd:      false,
	}
}

// Normalize clamps settings fields to their documented ranges.
func (s *Settings) Normalize() {
	s.Goals = s.Goals.Normalize()
	if s.FirstIntervalDays < 1 {
		s.FirstIntervalDays = 1
	}
	if s.FirstIntervalDays > 30 {
		s.FirstIntervalDays = 30
	}
}
