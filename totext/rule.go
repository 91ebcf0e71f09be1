package totext

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"
)

var ErrInvalidRule = errors.New("totext: invalid recurrence rule")

// Weekday is a BYDAY entry.
type Weekday struct {
	// Day is 0 for Sunday through 6 for Saturday.
	Day int
	// N is the occurrence within the period (+1 first, -1 last). Zero means
	// every occurrence.
	N int
}

func weekdayFromRRule(w rrule.Weekday) Weekday {
	// rrule-go counts from Monday.
	return Weekday{Day: (w.Day() + 1) % 7, N: w.N()}
}

// Options are the normalized options of a rule. Every list holds only values
// the caller supplied; an empty list means the constraint is absent.
type Options struct {
	Freq     rrule.Frequency
	Interval int
	Count    mo.Option[int]
	Until    mo.Option[time.Time]

	Bymonth []int
	// Bymonthday holds the positive month days, Bynmonthday the negative ones.
	Bymonthday  []int
	Bynmonthday []int
	Byweekday   []Weekday
	Byhour      []int
	Byminute    []int
	Bysecond    []int
	Byyearday   []int
	Byweekno    []int
	Bysetpos    []int
}

// Rule pairs the normalized options with the options exactly as supplied.
type Rule struct {
	Options  Options
	Original rrule.ROption
}

// NewRule normalizes caller-supplied options. Zero values in orig (a zero
// Count, a zero Until, nil or empty lists) count as not supplied.
func NewRule(orig rrule.ROption) Rule {
	opts := Options{
		Freq:      orig.Freq,
		Interval:  orig.Interval,
		Bymonth:   nonEmpty(orig.Bymonth),
		Byhour:    nonEmpty(orig.Byhour),
		Byminute:  nonEmpty(orig.Byminute),
		Bysecond:  nonEmpty(orig.Bysecond),
		Byyearday: nonEmpty(orig.Byyearday),
		Byweekno:  nonEmpty(orig.Byweekno),
		Bysetpos:  nonEmpty(orig.Bysetpos),
	}
	if opts.Interval < 1 {
		opts.Interval = 1
	}
	if orig.Count > 0 {
		opts.Count = mo.Some(orig.Count)
	}
	if !orig.Until.IsZero() {
		opts.Until = mo.Some(orig.Until)
	}

	for _, d := range orig.Bymonthday {
		switch {
		case d > 0:
			opts.Bymonthday = append(opts.Bymonthday, d)
		case d < 0:
			opts.Bynmonthday = append(opts.Bynmonthday, d)
		}
	}

	for _, w := range orig.Byweekday {
		opts.Byweekday = append(opts.Byweekday, weekdayFromRRule(w))
	}

	return Rule{Options: opts, Original: orig}
}

// ParseRule parses RFC 5545 rule text: "FREQ=...", "RRULE:FREQ=..." or a
// "DTSTART...\nRRULE:..." pair.
func ParseRule(text string) (Rule, error) {
	opt, err := rrule.StrToROption(text)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	return NewRule(*opt), nil
}

// FromRRule builds a Rule from the options r was created with.
func FromRRule(r *rrule.RRule) Rule {
	return NewRule(r.OrigOptions)
}

// SuppliedKeys returns the option keys the caller set, lower-case, in RFC
// order. freq is always present.
func (r Rule) SuppliedKeys() []string {
	o := r.Original
	keys := []string{"freq"}
	if !o.Dtstart.IsZero() {
		keys = append(keys, "dtstart")
	}
	if o.Interval > 0 {
		keys = append(keys, "interval")
	}
	if o.Count > 0 {
		keys = append(keys, "count")
	}
	if !o.Until.IsZero() {
		keys = append(keys, "until")
	}

	lists := []struct {
		key string
		n   int
	}{
		{"bysetpos", len(o.Bysetpos)},
		{"bymonth", len(o.Bymonth)},
		{"bymonthday", len(o.Bymonthday)},
		{"byyearday", len(o.Byyearday)},
		{"byweekno", len(o.Byweekno)},
		{"byweekday", len(o.Byweekday)},
		{"byhour", len(o.Byhour)},
		{"byminute", len(o.Byminute)},
		{"bysecond", len(o.Bysecond)},
		{"byeaster", len(o.Byeaster)},
	}
	for _, l := range lists {
		if l.n > 0 {
			keys = append(keys, l.key)
		}
	}
	return keys
}

// String returns the rule in RRULE property-value form.
func (r Rule) String() string {
	return r.Original.RRuleString()
}

func nonEmpty(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	return xs
}
