package planner

import (
	"errors"
	"fmt"
)

// Request fields named in validation errors.
const (
	FieldRoute      = "route"
	FieldTransport  = "transport"
	FieldHotel      = "hotel"
	FieldDays       = "days"
	FieldPassengers = "passengers"
	FieldBudget     = "budget"
)

// LookupError reports a selection key missing from its table.
type LookupError struct {
	Field string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Key)
}

// RangeError reports a numeric input outside its configured bounds.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s out of range [%s, %s]",
		e.Field, trimFloat(e.Value), trimFloat(e.Min), trimFloat(e.Max))
}

// IsLookup reports whether err is or wraps a *LookupError.
func IsLookup(err error) bool {
	var target *LookupError
	return errors.As(err, &target)
}

// IsRange reports whether err is or wraps a *RangeError.
func IsRange(err error) bool {
	var target *RangeError
	return errors.As(err, &target)
}

// ErrorField returns the offending request field for validation errors,
// or "" for anything else.
func ErrorField(err error) string {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Field
	}
	var re *RangeError
	if errors.As(err, &re) {
		return re.Field
	}
	return ""
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
