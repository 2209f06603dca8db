package httpadapter

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"creative-pulse/internal/core/domain"
)

const defaultWindowDays = 30

// parseWindow resolves the reporting window of a request. An explicit
// startDate and endDate pair wins over days, which wins over the default
// trailing 30 days. A lone startDate or endDate is ignored.
func parseWindow(q url.Values, now time.Time) (domain.DateRange, error) {
	start, end := q.Get("startDate"), q.Get("endDate")
	if start != "" && end != "" {
		from, err := parseDate(start)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid startDate %q", start)
		}
		to, err := parseDate(end)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid endDate %q", end)
		}
		return domain.DateRange{Start: from, End: to}, nil
	}

	days := defaultWindowDays
	if raw := q.Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return domain.DateRange{}, fmt.Errorf("invalid days %q: must be a positive integer", raw)
		}
		days = n
	}
	return domain.DateRange{Start: now.AddDate(0, 0, -days), End: now}, nil
}

// parseDate accepts RFC3339 timestamps and plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
