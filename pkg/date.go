package pkg

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date. An empty value yields today's date (UTC).
func ParseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return TruncateToDate(now), nil
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date [%s], expected YYYY-MM-DD", value)
	}
	return d, nil
}

func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date is a calendar date serialized as YYYY-MM-DD, or null when zero.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: TruncateToDate(t)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s, expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date %s, expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}
