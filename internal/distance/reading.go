package distance

import "strconv"

// Reading is the raw distance value carried by one request. Value is never
// validated; Present records whether the query key occurred at all.
type Reading struct {
	Value   string
	Present bool
}

// String renders the reading for log lines and the response body. An absent
// reading renders the same as an empty one.
func (r Reading) String() string { return r.Value }

// Kind labels the reading as "absent", "empty" or "present".
func (r Reading) Kind() string {
	switch {
	case !r.Present:
		return "absent"
	case r.Value == "":
		return "empty"
	default:
		return "present"
	}
}

// Centimeters parses the value as a float. ok is false for absent or
// non-numeric readings.
func (r Reading) Centimeters() (cm float64, ok bool) {
	if r.Value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(r.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
