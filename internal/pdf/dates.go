package pdf

import "time"

// istZone is the fixed display offset for normalized timestamps (UTC+5:30).
var istZone = time.FixedZone("IST", 5*3600+30*60)

// NormalizeDate converts a PDF date convention string
// (D:YYYYMMDDHHmmSSOHH'mm') into "YYYY-MM-DD HH:MM:SS IST" at UTC+5:30.
//
// The function never fails: an empty input yields an empty string, and any
// input that cannot be interpreted as a calendar date is returned unchanged.
// A malformed timezone suffix silently falls back to UTC.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}

	s := raw
	if len(s) >= 2 && s[:2] == "D:" {
		s = s[2:]
	}

	// Year, month and day are mandatory; the remaining components default
	// to zero when absent.
	year, ok := digits(s, 0, 4)
	if !ok {
		return DisplayString(raw)
	}
	month, ok := digits(s, 4, 2)
	if !ok {
		return DisplayString(raw)
	}
	day, ok := digits(s, 6, 2)
	if !ok {
		return DisplayString(raw)
	}
	hour, ok := timePart(s, 8)
	if !ok {
		return DisplayString(raw)
	}
	minute, ok := timePart(s, 10)
	if !ok {
		return DisplayString(raw)
	}
	second, ok := timePart(s, 12)
	if !ok {
		return DisplayString(raw)
	}

	loc := time.UTC
	if len(s) > 14 {
		loc = parseOffset(s[14:])
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	// time.Date normalizes out-of-range components (month 13 becomes January
	// of the next year); reject anything that did not round-trip.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return DisplayString(raw)
	}

	return t.In(istZone).Format("2006-01-02 15:04:05 MST")
}

// timePart reads a two-digit time component at off. A component that is
// absent defaults to zero; one that is present but non-numeric rejects the
// whole string.
func timePart(s string, off int) (int, bool) {
	if len(s) < off+2 {
		return 0, true
	}
	return digits(s, off, 2)
}

// digits parses n decimal digits of s starting at off. The second return is
// false when the slice is short or any byte is not a digit; signs and spaces
// count as non-numeric.
func digits(s string, off, n int) (int, bool) {
	if len(s) < off+n {
		return 0, false
	}
	v := 0
	for i := off; i < off+n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// parseOffset interprets a PDF timezone suffix of the form sign, two-digit
// hour, apostrophe, two-digit minute, apostrophe. Anything it cannot parse
// degrades to UTC.
func parseOffset(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	sign := tz[0]
	if sign != '+' && sign != '-' {
		return time.UTC
	}
	hours, ok := digits(tz, 1, 2)
	if !ok {
		return time.UTC
	}
	minutes := 0
	if len(tz) >= 6 {
		if m, ok := digits(tz, 4, 2); ok {
			minutes = m
		} else {
			return time.UTC
		}
	}
	offset := hours*3600 + minutes*60
	if sign == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset)
}
