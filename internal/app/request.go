package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAge is returned when yourAge is neither a number nor a string
// starting with an integer.
var ErrInvalidAge = errors.New("yourAge must be an integer")

// Request is the body of a calculation submission.
type Request struct {
	YourName             string `json:"yourName" validate:"required"`
	YourAge              Age    `json:"yourAge" validate:"required"`
	CrushName            string `json:"crushName" validate:"required"`
	CalculatedPercentage *int   `json:"calculatedPercentage" validate:"required"`
}

// Age is a whole number of years. In JSON it may be a number or a string
// such as "23"; strings are read up to the first non-digit, so "23 years"
// is 23.
type Age int

// UnmarshalJSON implements json.Unmarshaler.
func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := ParseAge(s)
		if err != nil {
			return err
		}
		*a = n
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAge, data)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("%w: %s out of range", ErrInvalidAge, data)
	}
	*a = Age(math.Trunc(f))
	return nil
}

// ParseAge reads the leading integer of s, ignoring leading whitespace.
func ParseAge(s string) (Age, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAge, s)
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAge, s)
	}
	return Age(n), nil
}

func (r Request) trimmed() Request {
	r.YourName = strings.TrimSpace(r.YourName)
	r.CrushName = strings.TrimSpace(r.CrushName)
	return r
}
