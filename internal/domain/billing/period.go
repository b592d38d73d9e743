package billing

import (
	"strings"
	"time"
)

// CurrentPeriodLabel formats the month-name label for the given instant,
// e.g. "February 2026". Admins conventionally use this label when generating
// a monthly batch, but the period field itself stays free text.
func CurrentPeriodLabel(now time.Time) string {
	return now.Format("January 2006")
}

// IsCurrentPeriod classifies a free-text period label as belonging to the
// current billing cycle. The match is literal substring containment against
// the computed month label, so "Water Bill February 2026" is current in
// February 2026 while "Feb 2026" is not. Kept as a single pure function so
// the fuzzy-match policy can be tested and replaced in isolation.
func IsCurrentPeriod(period string, now time.Time) bool {
	label := CurrentPeriodLabel(now)
	return strings.Contains(strings.ToLower(period), strings.ToLower(label))
}

// GroupByPeriod buckets bills by their literal period string, preserving
// first-seen order of the labels.
func GroupByPeriod(bills []*Bill) ([]string, map[string][]*Bill) {
	order := make([]string, 0)
	groups := make(map[string][]*Bill)
	for _, bill := range bills {
		if _, ok := groups[bill.Period]; !ok {
			order = append(order, bill.Period)
		}
		groups[bill.Period] = append(groups[bill.Period], bill)
	}
	return order, groups
}
