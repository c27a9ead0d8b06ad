package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// Optional tells apart a field that was left out of a JSON body, one sent as
// null and one sent with a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the field carries a value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Cleared reports whether the field was sent as an explicit null.
func (o Optional[T]) Cleared() bool {
	return o.Set && o.Null
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if strings.TrimSpace(string(data)) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return sonic.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return sonic.Marshal(o.Value)
}

const dateLayout = "2006-01-02"

// DateInput accepts either a plain date ("1990-05-17") or an RFC 3339
// timestamp and keeps the calendar date it names.
type DateInput struct {
	time.Time
}

func NewDateInput(t time.Time) DateInput {
	return DateInput{Time: DateOnly(t)}
}

func (d *DateInput) UnmarshalJSON(data []byte) error {
	var raw string
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("birth_date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("birth_date %q is not a valid date", raw)
	}
	// the calendar day as written, whatever the offset
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (d DateInput) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return sonic.Marshal(d.Format(dateLayout))
}

// DateOnly truncates t to midnight of its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
