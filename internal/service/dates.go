package service

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate parses an ISO calendar date (YYYY-MM-DD).
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a YYYY-MM-DD date: %q", s)
	}
	return t, nil
}
