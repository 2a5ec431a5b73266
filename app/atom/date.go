package atom

import (
	"strings"
	"time"
)

// DefaultTimeFormat renders an RFC 3339 timestamp in UTC with second
// precision, e.g. 2021-01-01T00:00:00Z. The trailing Z is a literal.
const DefaultTimeFormat = "2006-01-02T15:04:05Z"

// Date is an Atom Date construct (RFC 4287 section 3.3).
//
// The stored time is exactly what the layout can represent, so rendering a
// Date and parsing the result with the same layout yields an equal Date.
type Date struct {
	t      time.Time
	layout string
}

// NewDate builds a Date with DefaultTimeFormat. Sub-second precision is
// dropped and the time is converted to UTC. Years outside 0000-9999 cannot
// be rendered and parsed back, and are rejected.
func NewDate(t time.Time) (Date, error) {
	return NewDateFormat(t, DefaultTimeFormat)
}

// NewDateFormat builds a Date rendered with a Go time layout. An empty
// layout means DefaultTimeFormat.
func NewDateFormat(t time.Time, layout string) (Date, error) {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	if strings.TrimSpace(layout) == "" {
		return Date{}, invalid("date", "format", "layout is blank")
	}
	if layout == DefaultTimeFormat {
		t = t.UTC()
	}
	if y := t.Year(); y < 0 || y > 9999 {
		return Date{}, invalid("date", "time", "year %d is outside 0000-9999", y)
	}
	d, err := canonicalDate(t, layout)
	if err != nil {
		return Date{}, invalid("date", "format", "layout %q cannot be parsed back: %v", layout, err)
	}
	return d, nil
}

// ParseDate parses timestamp with layout, or DefaultTimeFormat when layout
// is empty.
func ParseDate(timestamp, layout string) (Date, error) {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	t, err := time.Parse(layout, timestamp)
	if err != nil {
		return Date{}, &FormatError{Value: timestamp, Layout: layout, Err: err}
	}
	return Date{t: t, layout: layout}, nil
}

func canonicalDate(t time.Time, layout string) (Date, error) {
	if layout == DefaultTimeFormat {
		t = t.UTC()
	}
	parsed, err := time.Parse(layout, t.Format(layout))
	if err != nil {
		return Date{}, err
	}
	return Date{t: parsed, layout: layout}, nil
}

// Render formats the date with its layout.
func (d Date) Render() string {
	return d.t.Format(d.layout)
}

func (d Date) Time() time.Time { return d.t }
func (d Date) Format() string  { return d.layout }

// Equal reports whether both dates denote the same instant and layout.
func (d Date) Equal(o Date) bool {
	return d.layout == o.layout && d.t.Equal(o.t)
}

// IsZero reports whether d was never built.
func (d Date) IsZero() bool { return d.layout == "" }

func (d Date) String() string { return d.Render() }
