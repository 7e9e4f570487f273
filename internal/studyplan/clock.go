package studyplan

import "fmt"

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses "HH:MM" into a Clock.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return NewClock(h, m), nil
}

// Add returns the clock advanced by n minutes.
func (c Clock) Add(n int) Clock {
	return c + Clock(n)
}

// Minutes returns the raw minutes-since-midnight value.
func (c Clock) Minutes() int {
	return int(c)
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
