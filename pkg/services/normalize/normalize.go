// Package normalize converts messy raw cell values into canonical typed
// values. Every function here is total: malformed input degrades to a defined
// default (0, "No", -1) instead of an error, so a single bad cell never aborts
// a whole aggregation.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Canonical labels for boolean-like columns.
const (
	Yes = "Yes"
	No  = "No"
)

var affirmativeTokens = map[string]bool{
	"sim":  true,
	"s":    true,
	"yes":  true,
	"true": true,
	"1":    true,
}

// Currency parses a Brazilian-formatted currency string ("R$ 1.234,56") into
// a float. A plain numeric string is returned as-is. Unparseable input yields
// 0.0.
func Currency(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Plain numeric cell, e.g. a column the source already exports as numbers.
	if !strings.Contains(s, ",") && !strings.Contains(s, "R$") {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Boolean classifies a raw cell as Yes or No. Only the fixed affirmative
// token set maps to Yes; anything else, including empty and unknown tokens,
// is No. Idempotent on its own output ("yes" is in the token set).
func Boolean(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if affirmativeTokens[s] {
		return Yes
	}
	return No
}

// HourUnknown is the sentinel for "hour could not be determined".
const HourUnknown = -1

// Hour extracts the hour of day from a free-text time cell. Supported shapes
// are "HH:MM", "HH:MM:SS" and "YYYY-MM-DD HH:MM:SS" (the part after the last
// space is taken as the time of day). Returns a value in [0,23], or
// HourUnknown for anything else. No timezone handling; the hour is read
// literally.
func Hour(raw string) int {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	if s == "" || lower == "nan" || lower == "none" || lower == "nat" {
		return HourUnknown
	}

	timePart := s
	if idx := strings.LastIndex(s, " "); idx >= 0 {
		timePart = s[idx+1:]
	}

	colon := strings.Index(timePart, ":")
	if colon < 0 {
		return HourUnknown
	}

	h, err := strconv.Atoi(strings.TrimSpace(timePart[:colon]))
	if err != nil || h < 0 || h > 23 {
		return HourUnknown
	}
	return h
}

var dateLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// Date parses a raw date cell, day-first for slash-separated forms as the
// source spreadsheets use. Returns nil when the cell cannot be parsed.
func Date(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
