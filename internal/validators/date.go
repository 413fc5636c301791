package validators

import "time"

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func IsDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func IsClockTime(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// ClockTimeBefore reports whether a is strictly earlier than b.
// Both must already be valid "15:04" strings.
func ClockTimeBefore(a, b string) bool {
	ta, err := time.Parse(clockLayout, a)
	if err != nil {
		return false
	}
	tb, err := time.Parse(clockLayout, b)
	if err != nil {
		return false
	}
	return ta.Before(tb)
}
