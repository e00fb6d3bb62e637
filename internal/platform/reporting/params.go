package reporting

import (
	"math"
	"strconv"
	"time"
)

// Params carries the raw string parameters of a report invocation, usually
// taken straight from the query string.
type Params map[string]string

// IntParam returns the named parameter as an int, or def when absent or
// empty. Malformed or negative values are out of domain.
func IntParam(p Params, name string, def int) (int, error) {
	raw, ok := p[name]
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, InvalidParam(name, "not an integer: %q", raw)
	}
	if n < 0 {
		return 0, InvalidParam(name, "must not be negative, got %d", n)
	}
	return n, nil
}

// FloatParam returns the named parameter as a float64, or def when absent.
func FloatParam(p Params, name string, def float64) (float64, error) {
	raw, ok := p[name]
	if !ok || raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, InvalidParam(name, "not a number: %q", raw)
	}
	if f < 0 {
		return 0, InvalidParam(name, "must not be negative, got %v", f)
	}
	return f, nil
}

// DateParam returns the named parameter as a calendar date (2006-01-02), or
// nil when absent.
func DateParam(p Params, name string) (*time.Time, error) {
	raw, ok := p[name]
	if !ok || raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, InvalidParam(name, "not a date (expected YYYY-MM-DD): %q", raw)
	}
	return &d, nil
}

// StringParam returns the named parameter, or an error when absent and
// required.
func StringParam(p Params, name string, required bool) (string, error) {
	raw := p[name]
	if raw == "" && required {
		return "", InvalidParam(name, "is required")
	}
	return raw, nil
}

// Round2 rounds to two decimal places, the precision every monetary and
// percentage column in the catalog reports at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
