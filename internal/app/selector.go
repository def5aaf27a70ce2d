package app

import (
	"daily-trivia-service/internal/domain"
)

// NumberPolicy controls how the public question number is derived from the
// day key.
type NumberPolicy string

const (
	// NumberPolicyEpoch counts days since a fixed launch date, 1-based and
	// continuously increasing across year boundaries. The default.
	NumberPolicyEpoch NumberPolicy = "epoch"
	// NumberPolicyYearly uses the day-of-year, resetting to 1 each January.
	NumberPolicyYearly NumberPolicy = "yearly"
)

// DefaultEpoch is the launch date used by the epoch numbering policy when
// none is configured.
const DefaultEpoch = domain.DayKey("2024-01-01")

// Numbering maps day keys to the public question number.
type Numbering struct {
	Policy NumberPolicy
	Epoch  domain.DayKey
}

// DefaultNumbering is the epoch policy anchored at DefaultEpoch.
func DefaultNumbering() Numbering {
	return Numbering{Policy: NumberPolicyEpoch, Epoch: DefaultEpoch}
}

// QuestionNumber returns the ordinal shown for the given day.
func (n Numbering) QuestionNumber(day domain.DayKey) int {
	if n.Policy == NumberPolicyYearly {
		return day.YearDay()
	}
	epoch := n.Epoch
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	return day.DaysSince(epoch) + 1
}

// SelectQuestion picks the catalog entry for a day: the date folded into an
// integer, reduced modulo the catalog size. Identical across calls and
// processes for a fixed catalog; cycles once the catalog is exhausted.
func SelectQuestion(catalog domain.Catalog, day domain.DayKey) (domain.Question, error) {
	if len(catalog) == 0 {
		return domain.Question{}, domain.ErrEmptyCatalog
	}
	return catalog[day.Seed()%len(catalog)], nil
}
