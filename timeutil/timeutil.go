package timeutil

import "time"

const (
	UTCLayout  = "2006-01-02T15:04:05Z"
	DateLayout = "2006-01-02"
)

// FormatUTC renders t in UTC as yyyy-mm-ddThh:mm:ssZ.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(UTCLayout)
}

// FormatDate renders t as yyyy-mm-dd, the form the service expects for date
// filters. The date is taken in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseUTC(s string) (time.Time, error) {
	return time.ParseInLocation(UTCLayout, s, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
