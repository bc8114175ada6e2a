package models

import (
	"encoding/json"
	"strings"
	"time"
)

// FilterDate is a day-granular date constraint for StatsFilter. It can be
// built from a time.Time or from an already-formatted ISO-8601 string; the
// service's date filters only look at the calendar date, so either form is
// narrowed to YYYY-MM-DD on the wire.
type FilterDate struct {
	t        time.Time
	s        string
	isString bool
}

// DateOf builds a FilterDate from a time.Time.
func DateOf(t time.Time) *FilterDate {
	return &FilterDate{t: t}
}

// DateString builds a FilterDate from a preformatted date or timestamp
// string. The string is taken as-is; no parsing or validation happens.
func DateString(s string) *FilterDate {
	return &FilterDate{s: s, isString: true}
}

// Calendar returns the calendar-date portion as YYYY-MM-DD. Time-of-day and
// any timezone offset are discarded. String inputs are truncated at the time
// separator, never recomputed in UTC or local time: a timestamp near midnight
// keeps the date component it was written with.
func (d *FilterDate) Calendar() string {
	if d.isString {
		if date, _, found := strings.Cut(d.s, "T"); found {
			return date
		}
		return d.s
	}
	return d.t.Format("2006-01-02")
}

// MarshalJSON encodes the calendar-date form.
func (d *FilterDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Calendar())
}

// UnmarshalJSON accepts either a JSON string (date or timestamp) or an
// RFC 3339 value produced by time.Time marshaling; both land in string form.
func (d *FilterDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d.s = s
	d.isString = true
	return nil
}
