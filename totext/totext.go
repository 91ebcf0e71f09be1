package totext

import (
	"strconv"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"

	"github.com/nmichkarev/rrule/i18n"
)

// ErrorText is returned by Render for frequencies that cannot be rendered.
const ErrorText = "RRule error: Unable to fully convert this rrule to text"

// Option configures a ToText.
type Option func(*ToText)

// WithTemplates selects the locale bundle. A nil bundle keeps English.
func WithTemplates(t *i18n.Templates) Option {
	return func(tt *ToText) {
		if t != nil {
			tt.templates = t
		}
	}
}

// WithDateFormatter overrides how the until date is written. By default the
// bundle's date format locale and options are used.
func WithDateFormatter(f i18n.DateFormatter) Option {
	return func(tt *ToText) {
		tt.formatDate = f
	}
}

// ToText renders one rule. The weekday and month-day views are derived once
// in New and never change.
type ToText struct {
	rule       Rule
	templates  *i18n.Templates
	formatDate i18n.DateFormatter

	weekdays  mo.Option[WeekdayView]
	monthdays mo.Option[[]int]
}

func New(rule Rule, opts ...Option) *ToText {
	t := &ToText{
		rule:      rule,
		templates: i18n.English,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.formatDate == nil {
		t.formatDate = t.templates.DateFormatter()
	}

	t.weekdays = deriveWeekdays(rule.Options.Byweekday)
	t.monthdays = deriveMonthdays(rule.Options.Bymonthday, rule.Options.Bynmonthday)
	return t
}

// Render is a shorthand for New(rule, opts...).Render().
func Render(rule Rule, opts ...Option) string {
	return New(rule, opts...).Render()
}

// Weekdays returns the derived weekday view.
func (t *ToText) Weekdays() mo.Option[WeekdayView] {
	return t.weekdays
}

// Monthdays returns the merged month-day order.
func (t *ToText) Monthdays() mo.Option[[]int] {
	return t.monthdays
}

// IsFullyConvertible reports whether the rendered text covers every option
// of the rule.
func (t *ToText) IsFullyConvertible() bool {
	return IsFullyConvertible(t.rule)
}

// Render assembles the sentence. Options the frequency does not render are
// dropped and the text is marked approximate.
func (t *ToText) Render() string {
	var s sentence

	switch t.rule.Options.Freq {
	case rrule.YEARLY:
		t.yearly(&s)
	case rrule.MONTHLY:
		t.monthly(&s)
	case rrule.WEEKLY:
		t.weekly(&s)
	case rrule.DAILY:
		t.daily(&s)
	case rrule.HOURLY:
		s.add(t.withInterval(t.templates.Hourly, t.rule.Options.Interval))
	case rrule.MINUTELY:
		s.add(t.withInterval(t.templates.Minutely, t.rule.Options.Interval))
	default:
		// SECONDLY has no templates.
		return ErrorText
	}

	o := t.rule.Options
	if until, ok := o.Until.Get(); ok {
		s.add(substitute(t.templates.Until, "date", t.formatDate(until)))
	} else if count, ok := o.Count.Get(); ok {
		c := strconv.Itoa(count)
		s.add(substitute(t.templates.Count.Select(c), "count", c))
	}

	if !t.IsFullyConvertible() {
		s.add("(~ " + t.templates.Approximate + ")")
	}

	return s.String()
}

func (t *ToText) String() string {
	return t.Render()
}

func (t *ToText) daily(s *sentence) {
	o := t.rule.Options
	if t.isWeekdays() {
		s.add(t.withInterval(t.templates.ByweekdayIsWeekdays, o.Interval))
	} else {
		s.add(t.withInterval(t.templates.Daily, o.Interval))
	}

	if len(o.Bymonth) > 0 {
		t.bymonth(s)
	}

	switch {
	case t.monthdays.IsPresent():
		t.bymonthday(s)
	case t.weekdays.IsPresent():
		t.byweekday(s)
	case len(o.Byhour) > 0:
		t.byhour(s)
	}
}

func (t *ToText) weekly(s *sentence) {
	o := t.rule.Options

	switch {
	case t.isWeekdays() && o.Interval == 1:
		s.add(t.withInterval(t.templates.ByweekdayIsWeekdays, o.Interval))
	case t.isEveryDay():
		s.add(t.withInterval(t.templates.Daily, 1))
	default:
		s.add(t.withInterval(t.templates.Weekly, o.Interval))

		if len(o.Bymonth) > 0 {
			t.bymonth(s)
		}

		if t.monthdays.IsPresent() {
			t.bymonthday(s)
		} else if t.weekdays.IsPresent() {
			t.byweekday(s)
		}

		if len(o.Byhour) > 0 {
			t.byhour(s)
		}
	}
}

// monthly and yearly replace the base clause with the month clause when
// BYMONTH is set; daily and weekly append it instead.
func (t *ToText) monthly(s *sentence) {
	if len(t.rule.Options.Bymonth) > 0 {
		t.bymonth(s)
	} else {
		s.add(t.withInterval(t.templates.Monthly, t.rule.Options.Interval))
	}

	switch {
	case t.monthdays.IsPresent():
		t.bymonthday(s)
	case t.isWeekdays():
		// "every month" already covers every workday.
	case t.weekdays.IsPresent():
		t.byweekday(s)
	}
}

// yearly accepts BYYEARDAY and BYWEEKNO without rendering them.
func (t *ToText) yearly(s *sentence) {
	if len(t.rule.Options.Bymonth) > 0 {
		t.bymonth(s)
	} else {
		s.add(t.withInterval(t.templates.Yearly, t.rule.Options.Interval))
	}

	if t.monthdays.IsPresent() {
		t.bymonthday(s)
	} else if t.weekdays.IsPresent() {
		t.byweekday(s)
	}
}

func (t *ToText) bymonthday(s *sentence) {
	days := t.monthdays.OrEmpty()
	nths := make([]string, len(days))
	for i, n := range days {
		nths[i] = nth(t.templates.NthMonthday, t.templates.NthLastMonthday, n)
	}
	s.add(substitute(t.templates.Bymonthday, "monthdays", list(t.templates.And, nths)))
}

func (t *ToText) byweekday(s *sentence) {
	view, ok := t.weekdays.Get()
	if !ok {
		return
	}

	if all, ok := view.AllWeeks.Get(); ok && !view.IsWeekdays {
		names := make([]string, len(all))
		for i, w := range all {
			names[i] = t.weekdayName(w.Day)
		}
		s.add(substitute(t.templates.Byweekday, "weekdays", list(t.templates.And, names)))
	}

	if some, ok := view.SomeWeeks.Get(); ok {
		phrases := make([]string, len(some))
		for i, w := range some {
			phrases[i] = t.weekdayFull(w)
		}
		s.add(substitute(t.templates.Byweekday, "weekdays", list(t.templates.And, phrases)))
	}
}

func (t *ToText) byhour(s *sentence) {
	hours := list(t.templates.And, itoas(t.rule.Options.Byhour))
	s.add(substitute(t.templates.Byhour.Select(""), "hours", hours))
}

func (t *ToText) bymonth(s *sentence) {
	months := list(t.templates.And, itoas(t.rule.Options.Bymonth))
	s.add(substitute(t.templates.Bymonth, "months", months))
}

// weekdayFull renders "the 2nd Monday" style phrases; without an ordinal it
// is just the weekday name.
func (t *ToText) weekdayFull(w Weekday) string {
	name := t.weekdayName(w.Day)
	if w.N == 0 {
		return name
	}
	tpl := nth(t.templates.NthWeekday, t.templates.NthLastWeekday, w.N)
	return substitute(tpl, "weekday", name)
}

func (t *ToText) weekdayName(day int) string {
	return t.templates.WeekdaysByweekday.Select(strconv.Itoa(day))
}

func (t *ToText) withInterval(b i18n.Bucket, interval int) string {
	key := strconv.Itoa(interval)
	return substitute(b.Select(key), "interval", key)
}

func (t *ToText) isWeekdays() bool {
	view, ok := t.weekdays.Get()
	return ok && view.IsWeekdays
}

func (t *ToText) isEveryDay() bool {
	view, ok := t.weekdays.Get()
	return ok && view.IsEveryDay
}
