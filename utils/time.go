package utils

import (
	"fmt"
	"time"
)

// sqlite hands timestamps back as strings in a handful of layouts
// depending on how they were written.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
}

func ParseSQLiteTime(timeStr string) (time.Time, error) {
	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time %q with any known format", timeStr)
}
