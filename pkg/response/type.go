package response

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateTimeFormat      = "2006-01-02T15:04:05"
	DefaultErrorMessage = "internal server error"
)

// Resp is the JSON error body.
type Resp struct {
	Error      string `json:"error"`
	StackTrace string `json:"stack_trace,omitempty"`
}

// DateTime is a local datetime that marshals as DateTimeFormat.
// On input both DateTimeFormat and RFC3339 are accepted.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// ParseDateTime parses DateTimeFormat in local time, falling back to RFC3339.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeFormat, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: expected %s", s, DateTimeFormat)
	}
	return t, nil
}
