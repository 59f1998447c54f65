package store

import (
	"fmt"
	"time"
)

// timeLayouts are the textual forms backends hand back for timestamp columns
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
}

// Timestamp scans a timestamp column from any supported backend into UTC
type Timestamp struct {
	Time time.Time
}

// Scan implements sql.Scanner
func (ts *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		ts.Time = v.UTC()
		return nil
	case string:
		t, err := ParseTime(v)
		if err != nil {
			return err
		}
		ts.Time = t
		return nil
	case []byte:
		t, err := ParseTime(string(v))
		if err != nil {
			return err
		}
		ts.Time = t
		return nil
	case nil:
		return fmt.Errorf("cannot scan NULL into timestamp")
	default:
		return fmt.Errorf("cannot scan %T into timestamp", value)
	}
}

// ParseTime parses a textual timestamp read from the database. Values without
// a zone are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}

// FormatTime renders t the way the sqlite backend stores it
func FormatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}
