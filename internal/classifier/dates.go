package classifier

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateSegmentOffset is the number of leading segments skipped before
// looking for dates (the empty root, a category and an owner/year folder).
const dateSegmentOffset = 3

// Semester codes map to a representative month, not a calendar one.
const (
	firstHalfMonth  = time.January
	secondHalfMonth = time.July
)

// ErrMalformedDate indicates a date-like substring that is not a valid date.
var ErrMalformedDate = errors.New("malformed date")

var (
	fullDatePattern = regexp.MustCompile(
		`(([0-9][0-9](/|-))?[0-9][0-9](/|-)[0-9][0-9][0-9]?[0-9]?)` +
			`|([0-9][0-9][0-9]?[0-9]?(/|-)[0-9][0-9]((/|-)[0-9][0-9])?)`)
	yearPattern     = regexp.MustCompile(`20[0-9][0-9]`)
	semesterPattern = regexp.MustCompile(`(1c|2c|c1|c2)`)
)

// dateOrder is the field order of a day-first or month-first date.
type dateOrder int

const (
	dayMonthYear dateOrder = iota
	monthDayYear
)

// dateLocale describes how a locale writes numeric dates.
type dateLocale struct {
	name  string
	order dateOrder
}

// dateLocales are tried in order until one yields a valid date.
var dateLocales = []dateLocale{
	{name: "es", order: dayMonthYear},
	{name: "en", order: monthDayYear},
}

// DateResult is the outcome of a date extraction.
type DateResult struct {
	// Date is nil when no year could be determined.
	Date *time.Time

	// Malformed lists date-like substrings that failed to parse.
	Malformed []error
}

// DateExtractor synthesises a best-effort date from path segments.
type DateExtractor struct{}

// NewDateExtractor returns a DateExtractor.
func NewDateExtractor() *DateExtractor {
	return &DateExtractor{}
}

// Extract scans the content segments of a normalised path.
//
// A full date found in a segment overwrites year, month and day, so the last
// one wins. A bare year and a semester code only fill fields still unset.
// Month and day default to 1 when only the year is known.
func (e *DateExtractor) Extract(path string) DateResult {
	var (
		result            DateResult
		year, month, day  int
		hasYear, hasMonth bool
		hasDay            bool
	)

	for _, segment := range skipSegments(Segments(path), dateSegmentOffset) {
		if match := fullDatePattern.FindString(segment); match != "" {
			y, m, d, err := ParseNumericDate(match)
			if err != nil {
				result.Malformed = append(result.Malformed, err)
			} else {
				year, month, day = y, m, d
				hasYear, hasMonth, hasDay = true, true, true
			}
		}

		if !hasYear {
			if match := yearPattern.FindString(segment); match != "" {
				year, _ = strconv.Atoi(match)
				hasYear = true
			}
		}

		if !hasMonth {
			switch semesterPattern.FindString(segment) {
			case "1c", "c1":
				month, hasMonth = int(firstHalfMonth), true
			case "2c", "c2":
				month, hasMonth = int(secondHalfMonth), true
			}
		}
	}

	if !hasYear {
		return result
	}
	if !hasMonth {
		month = 1
	}
	if !hasDay {
		day = 1
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	result.Date = &date
	return result
}

// ParseNumericDate parses the numeric date forms recognised in paths:
// day/month/year or month/day/year (slash or hyphen, 2 or 4 digit years),
// month/year, and year-first ISO forms. Day-first is preferred; month-first
// is the fallback. A missing day is 1.
func ParseNumericDate(s string) (year, month, day int, err error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		nums[i] = n
	}

	switch {
	case len(parts) == 3 && len(parts[0]) >= 3:
		if len(parts[0]) == 4 && validDate(nums[0], nums[1], nums[2]) {
			return nums[0], nums[1], nums[2], nil
		}

	case len(parts) == 3:
		y, ok := expandYear(parts[2], nums[2])
		if !ok {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		for _, loc := range dateLocales {
			m, d := nums[1], nums[0]
			if loc.order == monthDayYear {
				m, d = nums[0], nums[1]
			}
			if validDate(y, m, d) {
				return y, m, d, nil
			}
		}

	case len(parts) == 2 && len(parts[0]) >= 3:
		if len(parts[0]) == 4 && validDate(nums[0], nums[1], 1) {
			return nums[0], nums[1], 1, nil
		}

	case len(parts) == 2:
		y, ok := expandYear(parts[1], nums[1])
		if ok && validDate(y, nums[0], 1) {
			return y, nums[0], 1, nil
		}
	}

	return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

// expandYear turns a 2 or 4 digit year into a full year. Two-digit years
// below 69 are in the 2000s, the rest in the 1900s.
func expandYear(raw string, n int) (int, bool) {
	switch len(raw) {
	case 4:
		return n, true
	case 2:
		if n < 69 {
			return 2000 + n, true
		}
		return 1900 + n, true
	default:
		return 0, false
	}
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
