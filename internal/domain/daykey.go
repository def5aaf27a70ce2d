package domain

import (
	"fmt"
	"time"
)

// dayKeyLayout is the canonical wire and storage format for day keys.
const dayKeyLayout = "2006-01-02"

// DayKey is a calendar date at day granularity in the service's reference
// zone. It is the unit of "one question per day": selection, the one-scored-
// attempt rule, and streak arithmetic all operate on day keys.
type DayKey string

// DayKeyOf truncates a wall-clock instant to its day key.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// ParseDayKey validates a stored or client-supplied day key.
func ParseDayKey(s string) (DayKey, error) {
	if _, err := time.Parse(dayKeyLayout, s); err != nil {
		return "", fmt.Errorf("parse day key %q: %w", s, err)
	}
	return DayKey(s), nil
}

func (d DayKey) String() string { return string(d) }

// IsZero reports whether the key is unset (user has never played).
func (d DayKey) IsZero() bool { return d == "" }

// Time returns the key's midnight instant in UTC. Keys produced by DayKeyOf
// always parse; a zero time is returned for malformed keys.
func (d DayKey) Time() time.Time {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Prev returns the key for the preceding calendar day.
func (d DayKey) Prev() DayKey {
	return DayKeyOf(d.Time().AddDate(0, 0, -1))
}

// Next returns the key for the following calendar day.
func (d DayKey) Next() DayKey {
	return DayKeyOf(d.Time().AddDate(0, 0, 1))
}

// Seed folds the date into the deterministic integer the selector reduces
// modulo the catalog size: year*10000 + month*100 + day.
func (d DayKey) Seed() int {
	t := d.Time()
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// DaysSince returns the number of whole days from epoch to d. Negative when
// d precedes the epoch.
func (d DayKey) DaysSince(epoch DayKey) int {
	return int(d.Time().Sub(epoch.Time()) / (24 * time.Hour))
}

// YearDay returns the 1-based day-of-year of the key.
func (d DayKey) YearDay() int {
	return d.Time().YearDay()
}
