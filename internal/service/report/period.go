package report

import "time"

const dateLayout = "2006-01-02"

// weekStart returns the Monday of the week containing date, at midnight UTC.
func weekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// weekEnd returns the Sunday closing the week that starts on start.
func weekEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 6)
}

// datesBetween lists every day of the inclusive range in order.
func datesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// parseDayInWindow parses a provider-supplied date string and returns it only
// when it falls inside [start, end]. Anything unparsable or out of window
// yields nil.
func parseDayInWindow(raw string, start, end time.Time) *time.Time {
	if raw == "" {
		return nil
	}
	day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil
	}
	if day.Before(start) || day.After(end) {
		return nil
	}
	return &day
}
