package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Wire format for every timestamp: 2006-01-02T15:04:05, no zone.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime is a time.Time that marshals with the second-precision
// layout the API speaks.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.Truncate(time.Second)}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("datetime: not a JSON string: %s", s)
	}
	t, err := time.Parse(DateTimeLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("datetime: %w", err)
	}
	d.Time = t
	return nil
}

func (d DateTime) Value() (driver.Value, error) { return d.Time, nil }

func (d *DateTime) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("datetime: cannot scan %T", src)
	}
	d.Time = t
	return nil
}
