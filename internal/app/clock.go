package app

import (
	"time"

	"daily-trivia-service/internal/domain"
)

// DayClock derives day keys from wall-clock time in a single reference zone
// (UTC), so day boundaries do not move with deployment region or DST.
type DayClock struct {
	now func() time.Time
	loc *time.Location
}

// NewDayClock returns the production clock.
func NewDayClock() *DayClock {
	return NewDayClockWith(time.Now)
}

// NewDayClockWith allows deterministic "today" in tests.
func NewDayClockWith(now func() time.Time) *DayClock {
	return &DayClock{now: now, loc: time.UTC}
}

// Today returns the current day key.
func (c *DayClock) Today() domain.DayKey {
	return domain.DayKeyOf(c.now().In(c.loc))
}

// Yesterday returns the day key preceding Today.
func (c *DayClock) Yesterday() domain.DayKey {
	return c.Today().Prev()
}
