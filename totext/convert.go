package totext

import (
	"slices"

	"github.com/teambition/rrule-go"
)

var commonOptions = []string{"count", "until", "interval", "byweekday", "bymonthday", "bymonth"}

// implemented lists, per frequency, the option keys that show up in the
// rendered text. SECONDLY has no entry.
var implemented = map[rrule.Frequency][]string{
	rrule.YEARLY:   append([]string{"byweekno", "byyearday"}, commonOptions...),
	rrule.MONTHLY:  commonOptions,
	rrule.WEEKLY:   append([]string{"byhour"}, commonOptions...),
	rrule.DAILY:    append([]string{"byhour"}, commonOptions...),
	rrule.HOURLY:   commonOptions,
	rrule.MINUTELY: commonOptions,
}

// alwaysAllowed keys never make a rule approximate.
var alwaysAllowed = []string{"dtstart", "tzid", "wkst", "freq"}

// IsFullyConvertible reports whether every option the caller supplied is
// expressed by the rendered text. A rule with both UNTIL and COUNT is never
// fully convertible, since only UNTIL is rendered.
func IsFullyConvertible(r Rule) bool {
	supported, ok := implemented[r.Options.Freq]
	if !ok {
		return false
	}
	if r.Options.Until.IsPresent() && r.Options.Count.IsPresent() {
		return false
	}

	for _, key := range r.SuppliedKeys() {
		if slices.Contains(alwaysAllowed, key) {
			continue
		}
		if !slices.Contains(supported, key) {
			return false
		}
	}
	return true
}
