package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// ResolvePeriod turns a period selector into inclusive day boundaries relative to today.
// Only the custom selector can fail; unknown selectors resolve like the last 30 days.
func ResolvePeriod(period domain.ReportPeriod, customStart, customEnd string, today time.Time) (domain.ResolvedPeriod, error) {
	today = midnight(today)

	switch period {
	case domain.PeriodToday:
		return bounded(today, today), nil
	case domain.PeriodYesterday:
		day := today.AddDate(0, 0, -1)
		return bounded(day, day), nil
	case domain.PeriodLast7Days:
		return bounded(today.AddDate(0, 0, -7), today.AddDate(0, 0, -1)), nil
	case domain.PeriodThisMonth:
		first := firstOfMonth(today)
		return bounded(first, lastOfMonth(first)), nil
	case domain.PeriodLastMonth:
		first := firstOfMonth(today).AddDate(0, -1, 0)
		return bounded(first, lastOfMonth(first)), nil
	case domain.PeriodNext7Days:
		return bounded(today.AddDate(0, 0, 1), today.AddDate(0, 0, 7)), nil
	case domain.PeriodNext30Days:
		return bounded(today.AddDate(0, 0, 1), today.AddDate(0, 0, 30)), nil
	case domain.PeriodNextMonth:
		first := firstOfMonth(today).AddDate(0, 1, 0)
		return bounded(first, lastOfMonth(first)), nil
	case domain.PeriodAllTime:
		return domain.ResolvedPeriod{}, nil
	case domain.PeriodCustom:
		return resolveCustom(customStart, customEnd, today.Location())
	default:
		return bounded(today.AddDate(0, 0, -30), today.AddDate(0, 0, -1)), nil
	}
}

func resolveCustom(customStart, customEnd string, loc *time.Location) (domain.ResolvedPeriod, error) {
	start, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(customStart), loc)
	if err != nil {
		return domain.ResolvedPeriod{}, NewReportError(ErrInvalidRange, fmt.Sprintf("start date %q", customStart))
	}

	end, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(customEnd), loc)
	if err != nil {
		return domain.ResolvedPeriod{}, NewReportError(ErrInvalidRange, fmt.Sprintf("end date %q", customEnd))
	}

	if start.After(end) {
		return domain.ResolvedPeriod{}, NewReportError(ErrInvalidRange, fmt.Sprintf("%s is after %s", customStart, customEnd))
	}

	return bounded(start, end), nil
}

func bounded(start, end time.Time) domain.ResolvedPeriod {
	return domain.ResolvedPeriod{Start: start, End: end, Bounded: true}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func lastOfMonth(first time.Time) time.Time {
	return first.AddDate(0, 1, -1)
}
