// Package week implements the ISO-week identifier used throughout the
// timesheet domain. A week is written "2025-S43" (the French "semaine"
// marker); the interchangeable "W" marker is accepted on input and
// normalized to "S".
package week

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DaysPerFiche is the number of worked days seeded on a new fiche (Mon-Fri).
const DaysPerFiche = 5

var weekIDPattern = regexp.MustCompile(`^(\d{4})-[SW](\d{1,2})$`)

// ID identifies one ISO year/week pair.
type ID struct {
	Year int
	Week int
}

// Parse parses a week identifier such as "2025-S43" or "2025-W43".
// The week number must be in [1, 53].
func Parse(s string) (ID, error) {
	m := weekIDPattern.FindStringSubmatch(s)
	if m == nil {
		return ID{}, fmt.Errorf("invalid week identifier %q: expected YYYY-Sww", s)
	}
	year, _ := strconv.Atoi(m[1])
	wk, _ := strconv.Atoi(m[2])
	if wk < 1 || wk > 53 {
		return ID{}, fmt.Errorf("invalid week identifier %q: week %d out of range [1,53]", s, wk)
	}
	return ID{Year: year, Week: wk}, nil
}

// MustParse parses a week identifier and panics on failure. Test helper.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromTime returns the ID of the ISO week containing t.
func FromTime(t time.Time) ID {
	year, wk := t.ISOWeek()
	return ID{Year: year, Week: wk}
}

// String renders the canonical form, e.g. "2025-S03".
func (id ID) String() string {
	return fmt.Sprintf("%04d-S%02d", id.Year, id.Week)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id.Year == 0 && id.Week == 0
}

// Monday returns the Monday of the week at 00:00 UTC.
func (id ID) Monday() time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(id.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	firstMonday := jan4.AddDate(0, 0, -(weekday - 1))
	return firstMonday.AddDate(0, 0, (id.Week-1)*7)
}

// Friday returns the Friday of the week at 00:00 UTC.
func (id ID) Friday() time.Time {
	return id.Monday().AddDate(0, 0, DaysPerFiche-1)
}

// Weekdays returns the five worked dates of the week, Monday through Friday.
func (id ID) Weekdays() [DaysPerFiche]time.Time {
	var days [DaysPerFiche]time.Time
	monday := id.Monday()
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// Next returns the following ISO week.
func (id ID) Next() ID {
	return FromTime(id.Monday().AddDate(0, 0, 7))
}

// Previous returns the preceding ISO week.
func (id ID) Previous() ID {
	return FromTime(id.Monday().AddDate(0, 0, -7))
}

// Contains reports whether t falls on one of the seven days of the week.
func (id ID) Contains(t time.Time) bool {
	return FromTime(t) == id
}
