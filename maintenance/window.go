// Package maintenance decides whether capacity changes are permitted at a given
// time of day.
//
// Windows are same-day ranges. A window that crosses midnight (start after end)
// is rejected as a configuration error; configure it as two windows instead,
// e.g. "23:00-23:59,00:00-01:00".
package maintenance

import (
	"fmt"
	"strings"
	"time"

	"github.com/gsiscaler/autoscaler/models"
)

const timeOfDayLayout = "15:04"

type Window struct {
	Start string
	End   string
}

// Contains compares the zero-padded HHMM form of t against the window bounds,
// both inclusive.
func (w Window) Contains(t time.Time) bool {
	now := t.UTC().Format("1504")
	return now >= w.Start && now <= w.End
}

// ParseWindows parses a comma-separated list such as "00:00-01:00,10:00-11:00".
func ParseWindows(windows string) ([]Window, error) {
	var result []Window
	for _, raw := range strings.Split(windows, ",") {
		raw = strings.TrimSpace(raw)
		start, end, found := strings.Cut(raw, "-")
		if !found {
			return nil, fmt.Errorf("%w: malformed maintenance window %q: missing '-' separator", models.ErrConfiguration, raw)
		}
		startHHMM, err := parseTimeOfDay(start)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed maintenance window %q: %s", models.ErrConfiguration, raw, err.Error())
		}
		endHHMM, err := parseTimeOfDay(end)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed maintenance window %q: %s", models.ErrConfiguration, raw, err.Error())
		}
		if startHHMM > endHHMM {
			return nil, fmt.Errorf("%w: maintenance window %q crosses midnight, which is not supported", models.ErrConfiguration, raw)
		}
		result = append(result, Window{Start: startHHMM, End: endHHMM})
	}
	return result, nil
}

// IsPermitted reports whether now falls inside one of the windows. An empty
// window list always permits changes. A malformed list fails closed and returns
// the parse error.
func IsPermitted(windows string, now time.Time) (bool, error) {
	if strings.TrimSpace(windows) == "" {
		return true, nil
	}

	parsed, err := ParseWindows(windows)
	if err != nil {
		return false, err
	}

	for _, w := range parsed {
		if w.Contains(now) {
			return true, nil
		}
	}
	return false, nil
}

func parseTimeOfDay(value string) (string, error) {
	t, err := time.Parse(timeOfDayLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("expected HH:MM, got %q", value)
	}
	return t.Format("1504"), nil
}
