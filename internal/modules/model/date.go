package model

import (
	"bytes"
	"errors"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// Date is a calendar date stored as SQL DATE and encoded as "YYYY-MM-DD" in JSON.
type Date struct {
	datatypes.Date
}

func NewDate(t time.Time) Date {
	return Date{Date: datatypes.Date(t)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		return errors.New("date must not be empty")
	}
	if v, err := ParseDate(s); err == nil {
		*d = v
		return nil
	}
	// full timestamps are accepted too
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}
