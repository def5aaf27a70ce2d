package domain

// Question is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so Question values are shared freely across requests.
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Category     string   `json:"category"`
	FunFact      string   `json:"funFact"`
}

// Catalog is the ordered question list the daily selector indexes into.
type Catalog []Question

// AnswerRecord is one scored answer, keyed by day in UserRecord.AnswerHistory.
type AnswerRecord struct {
	Correct bool `json:"correct"`
}

// UserRecord is the per-user daily-play state. It is mutated only through
// the answer processor (scored answers) and the username refresh on submit.
type UserRecord struct {
	FID               int64                   `json:"fid"`
	Username          string                  `json:"username,omitempty"`
	CurrentStreak     int                     `json:"currentStreak"`
	LongestStreak     int                     `json:"longestStreak"`
	LastPlayedDay     DayKey                  `json:"lastPlayed,omitempty"`
	LastAnswerCorrect bool                    `json:"lastAnswerCorrect"`
	TotalPlayed       int                     `json:"totalPlayed"`
	TotalCorrect      int                     `json:"totalCorrect"`
	AnswerHistory     map[DayKey]AnswerRecord `json:"answerHistory"`
}

// NewUserRecord returns a zeroed record for a first-time player.
func NewUserRecord(fid int64) UserRecord {
	return UserRecord{
		FID:           fid,
		AnswerHistory: make(map[DayKey]AnswerRecord),
	}
}

// Clone deep-copies the record so callers can mutate without aliasing
// store-internal state.
func (r UserRecord) Clone() UserRecord {
	out := r
	out.AnswerHistory = make(map[DayKey]AnswerRecord, len(r.AnswerHistory))
	for day, ans := range r.AnswerHistory {
		out.AnswerHistory[day] = ans
	}
	return out
}

// AnswerOn returns the scored answer for a given day, if any.
func (r UserRecord) AnswerOn(day DayKey) (AnswerRecord, bool) {
	ans, ok := r.AnswerHistory[day]
	return ans, ok
}

// LeaderboardEntry is one ranked row. Streak carries the user's longest
// streak, Total the lifetime correct count.
type LeaderboardEntry struct {
	FID      int64  `json:"fid"`
	Username string `json:"username,omitempty"`
	Streak   int    `json:"streak"`
	Total    int    `json:"total"`
}

// SubmitResult summarizes a scored submission.
type SubmitResult struct {
	Correct      bool       `json:"isCorrect"`
	CorrectIndex int        `json:"correctAnswer"`
	FunFact      string     `json:"funFact"`
	User         UserRecord `json:"user"`
}

// TodaysAnswer is the stored answer for the current day, surfaced when a
// user has already played.
type TodaysAnswer struct {
	Correct bool   `json:"correct"`
	Date    DayKey `json:"date"`
}
