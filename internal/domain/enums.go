package domain

// Rating is the user's self-assessment of a review attempt.
type Rating int

const (
	RatingForgot Rating = 0
	RatingHard   Rating = 1
	RatingGood   Rating = 2
	RatingEasy   Rating = 3
)

// IsValid reports whether r is one of the four defined ratings. Unknown
// values are still accepted by the interval engine, which falls back to a
// Good-like default rather than failing.
func (r Rating) IsValid() bool {
	return r >= RatingForgot && r <= RatingEasy
}

// Failed reports whether the rating counts as a failed recall.
func (r Rating) Failed() bool {
	return r <= RatingHard
}

func (r Rating) String() string {
	switch r {
	case RatingForgot:
		return "forgot"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// ParseRating maps a rating name to its value. Returns RatingGood and false
// for unrecognized names.
func ParseRating(s string) (Rating, bool) {
	switch s {
	case "forgot", "0":
		return RatingForgot, true
	case "hard", "1":
		return RatingHard, true
	case "good", "2":
		return RatingGood, true
	case "easy", "3":
		return RatingEasy, true
	}
	return RatingGood, false
}

type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyUnknown Difficulty = "unknown"
)

// NormalizeDifficulty lowercases and validates a difficulty string,
// mapping anything unrecognized to DifficultyUnknown.
func NormalizeDifficulty(s string) Difficulty {
	switch s {
	case "easy", "Easy", "EASY":
		return DifficultyEasy
	case "medium", "Medium", "MEDIUM":
		return DifficultyMedium
	case "hard", "Hard", "HARD":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}
