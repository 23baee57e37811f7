package api

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumeric marks a numeric field that was present but unparsable.
// Absent, null or empty fields default to zero instead.
var ErrInvalidNumeric = errors.New("invalid numeric input")

// Numeric accepts a JSON number, a numeric string, null or an empty string.
// The browser form submits strings, so a plain float64 field would reject
// valid requests.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return ErrInvalidNumeric
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrInvalidNumeric
	}
	*n = Numeric(v)
	return nil
}

// AsInt converts to int, rejecting fractional values. Count-like fields
// (bath, bhk, property_age) must be whole numbers; "2.5" bathrooms is bad
// input, not something to truncate.
func (n Numeric) AsInt() (int, bool) {
	if n != Numeric(math.Trunc(float64(n))) {
		return 0, false
	}
	return int(n), true
}

// swagger:model api.PredictRequest
type PredictRequest struct {
	TotalSqft   Numeric `json:"total_sqft"`
	Bath        Numeric `json:"bath"`
	BHK         Numeric `json:"bhk"`
	PropertyAge Numeric `json:"property_age"`
	Location    string  `json:"location"`
}
