package timeslot

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"schedule-service/internal/apperr"
)

// Clock is a time of day stored as the offset from midnight.
type Clock time.Duration

// ParseClock parses a zero-padded 24h "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	return parse(s, false)
}

func parse(s string, allowSeconds bool) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && !(allowSeconds && len(parts) == 3) {
		return 0, apperr.Validation("invalid time %q, expected HH:MM", s)
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, part := range parts {
		if len(part) != 2 {
			return 0, apperr.Validation("invalid time %q, expected HH:MM", s)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return 0, apperr.Validation("invalid time %q, expected HH:MM", s)
		}
		d += time.Duration(n) * units[i]
	}
	return Clock(d), nil
}

func (c Clock) hoursMinutes() (int, int) {
	d := time.Duration(c)
	return int(d / time.Hour), int(d % time.Hour / time.Minute)
}

func (c Clock) String() string {
	h, m := c.hoursMinutes()
	return fmt.Sprintf("%02d:%02d", h, m)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return apperr.Validation("time must be a string")
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value renders the clock for a postgres time column.
func (c Clock) Value() (driver.Value, error) {
	h, m := c.hoursMinutes()
	return fmt.Sprintf("%02d:%02d:00", h, m), nil
}

func (c *Clock) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = 0
		return nil
	case time.Time:
		*c = Clock(time.Duration(v.Hour())*time.Hour + time.Duration(v.Minute())*time.Minute + time.Duration(v.Second())*time.Second)
		return nil
	case []byte:
		return c.scanText(string(v))
	case string:
		return c.scanText(v)
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
}

func (c *Clock) scanText(s string) error {
	// postgres may append fractional seconds
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parsed, err := parse(s, true)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
