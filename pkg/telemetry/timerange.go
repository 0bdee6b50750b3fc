package telemetry

import "time"

// TimeRange is the human-selectable chart window, ending at "now".
type TimeRange string

const (
	TimeRange30Min  TimeRange = "30min"
	TimeRange1Hour  TimeRange = "1hour"
	TimeRange6Hours TimeRange = "6hours"
	TimeRange1Day   TimeRange = "1day"
	TimeRange1Week  TimeRange = "1week"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case TimeRange30Min, TimeRange1Hour, TimeRange6Hours, TimeRange1Day, TimeRange1Week:
		return TimeRange(s), nil
	}
	return "", NewValidationError("invalid time range: %q", s)
}

func (tr TimeRange) Duration() time.Duration {
	switch tr {
	case TimeRange30Min:
		return 30 * time.Minute
	case TimeRange1Hour:
		return time.Hour
	case TimeRange6Hours:
		return 6 * time.Hour
	case TimeRange1Week:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Window maps the range onto concrete [start, end] bounds ending at now.
func (tr TimeRange) Window(now time.Time) (time.Time, time.Time) {
	return now.Add(-tr.Duration()), now
}
