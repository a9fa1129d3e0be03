package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The billing form posts money fields ("hall_rent", "discount",
// "pre_booking_amount") as raw text and select values ("hall_id") as
// strings. Coercion to int with a silent default mirrors the form's
// parseInt-or-zero behavior; it is centralized here instead of scattered
// through handlers.

// ParseNumericOrDefault parses raw as a base-10 integer, returning def for
// blank or malformed input. A float string like "12.5" is truncated to its
// integer part.
func ParseNumericOrDefault(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return def
}

// CoerceInt converts a decoded JSON value (number, numeric string, nil, ...)
// to an int, returning def when it cannot.
func CoerceInt(v any, def int) int {
	switch t := v.(type) {
	case nil:
		return def
	case float64:
		return int(t)
	case int:
		return t
	case json.Number:
		return ParseNumericOrDefault(t.String(), def)
	case string:
		return ParseNumericOrDefault(t, def)
	default:
		return def
	}
}

// FlexInt is an int that unmarshals from either a JSON number or a numeric
// string, defaulting to 0 for blank or malformed input. Payload structs use
// it for fields the frontends send as text.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*f = FlexInt(ParseNumericOrDefault(raw, 0))
		return nil
	}
	*f = FlexInt(ParseNumericOrDefault(s, 0))
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

func (f FlexInt) Int() int { return int(f) }

// FormatINR renders an amount with Indian digit grouping: the last three
// digits, then groups of two (12,34,567).
func FormatINR(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + tail
}
