package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

// Location is the zone every calendar-day comparison is made in.
func Location() *time.Location {
	return saoPauloLocation
}

// Clock returns the current instant. Services take one so tests can pin "now".
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(saoPauloLocation).Date()
	by, bm, bd := b.In(saoPauloLocation).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBefore returns t moved back n local calendar days, keeping the wall clock.
func DaysBefore(t time.Time, n int) time.Time {
	return t.In(saoPauloLocation).AddDate(0, 0, -n)
}

// DayKey formats t as YYYY-MM-DD in the local zone.
func DayKey(t time.Time) string {
	return t.In(saoPauloLocation).Format(dateLayout)
}

// ClockTime formats t as HH:MM in the local zone.
func ClockTime(t time.Time) string {
	return t.In(saoPauloLocation).Format("15:04")
}

// Date is a calendar date without time of day, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, saoPauloLocation)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.In(saoPauloLocation).Format(dateLayout) + `"`), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.In(saoPauloLocation).Format(dateLayout)
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Date", value)
	}
}
