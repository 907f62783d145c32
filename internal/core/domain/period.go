package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReportPeriod selects a slice of a fiscal year: the whole year, a quarter or a month.
type ReportPeriod string

const (
	PeriodAnnual ReportPeriod = "Annual"
	PeriodQ1     ReportPeriod = "Q1"
	PeriodQ2     ReportPeriod = "Q2"
	PeriodQ3     ReportPeriod = "Q3"
	PeriodQ4     ReportPeriod = "Q4"
)

// MonthPeriod returns the single-month period for m, e.g. "M05".
func MonthPeriod(m time.Month) ReportPeriod {
	return ReportPeriod(fmt.Sprintf("M%02d", int(m)))
}

// ParseReportPeriod accepts annual/year, q1..q4 and m1..m12 (case-insensitive).
// The empty string is the annual period.
func ParseReportPeriod(s string) (ReportPeriod, error) {
	p := strings.ToLower(strings.TrimSpace(s))
	switch p {
	case "", "annual", "year", "yearly":
		return PeriodAnnual, nil
	case "q1":
		return PeriodQ1, nil
	case "q2":
		return PeriodQ2, nil
	case "q3":
		return PeriodQ3, nil
	case "q4":
		return PeriodQ4, nil
	}
	if strings.HasPrefix(p, "m") {
		if n, err := strconv.Atoi(p[1:]); err == nil && n >= 1 && n <= 12 {
			return MonthPeriod(time.Month(n)), nil
		}
	}
	return "", fmt.Errorf("unknown report period %q", s)
}

// MonthRange returns the first and last month (inclusive) covered by the period.
// Unknown periods cover the whole year.
func (p ReportPeriod) MonthRange() (time.Month, time.Month) {
	switch p {
	case PeriodQ1:
		return time.January, time.March
	case PeriodQ2:
		return time.April, time.June
	case PeriodQ3:
		return time.July, time.September
	case PeriodQ4:
		return time.October, time.December
	}
	if len(p) == 3 && p[0] == 'M' {
		if n, err := strconv.Atoi(string(p[1:])); err == nil && n >= 1 && n <= 12 {
			return time.Month(n), time.Month(n)
		}
	}
	return time.January, time.December
}

// Contains reports whether t falls in year and within the period's months.
// Periods are calendar ranges in UTC, whatever location t carries.
func (p ReportPeriod) Contains(year int, t time.Time) bool {
	t = t.UTC()
	if t.Year() != year {
		return false
	}
	from, to := p.MonthRange()
	return t.Month() >= from && t.Month() <= to
}
