package report

import (
	"strings"
	"time"
)

// ExpandVars substitutes placeholders in config-provided text such as the report title.
//
// Supported variables:
//   - {.CurrentDate} => YYYY-MM-DD (UTC)
//   - {.CurrentTime} => HH:MM (UTC)
func ExpandVars(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	now = now.UTC()
	return strings.NewReplacer(
		"{.CurrentDate}", now.Format("2006-01-02"),
		"{.CurrentTime}", now.Format("15:04"),
	).Replace(s)
}
