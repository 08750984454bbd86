package fees

import (
	"fmt"
	"time"
)

// monthKeyLayout is the canonical monthly period key format, e.g. "2026-03".
const monthKeyLayout = "2006-01"

// MonthKey returns the canonical monthly period key for t.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ExpandPeriod maps a period key to the monthly keys it credits. The engine's
// unit of account is always months: a monthly key YYYY-MM credits itself and a
// quarterly key YYYY-QN credits the three months of that quarter. Malformed
// keys credit nothing.
func ExpandPeriod(key string) []string {
	if len(key) != 7 || key[4] != '-' {
		return nil
	}
	year := key[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return nil
		}
	}

	if key[5] == 'Q' {
		q := int(key[6] - '0')
		if q < 1 || q > 4 {
			return nil
		}
		first := (q-1)*3 + 1
		months := make([]string, 0, 3)
		for m := first; m < first+3; m++ {
			months = append(months, fmt.Sprintf("%s-%02d", year, m))
		}
		return months
	}

	if _, err := time.Parse(monthKeyLayout, key); err != nil {
		return nil
	}
	return []string{key}
}
