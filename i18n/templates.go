package i18n

import (
	"fmt"
	"strings"
)

// Templates is a locale bundle. Each field is one semantic key of the bundle
// contract and is either a literal template or a numeric Bucket. Templates
// carry %{placeholder} tokens; the renderer substitutes the first occurrence
// of each token it knows about.
//
// A Templates value is read-only once built and may be shared between
// goroutines.
type Templates struct {
	Yearly   Bucket `yaml:"yearly"`
	Monthly  Bucket `yaml:"monthly"`
	Weekly   Bucket `yaml:"weekly"`
	Daily    Bucket `yaml:"daily"`
	Hourly   Bucket `yaml:"hourly"`
	Minutely Bucket `yaml:"minutely"`
	Secondly Bucket `yaml:"secondly"`

	Dtstart           string `yaml:"dtstart"`
	TimeOfDay         string `yaml:"timeofday"`
	StartingTimeOfDay string `yaml:"startingtimeofday"`
	Infinite          string `yaml:"infinite"`
	Until             string `yaml:"until"`
	Count             Bucket `yaml:"count"`

	// And is the list conjunction, trailing space included ("and ").
	And     string  `yaml:"and"`
	XOfTheY XOfTheY `yaml:"x_of_the_y"`

	Bymonth string `yaml:"bymonth"`
	Months  Bucket `yaml:"months"`

	Byweekday           string `yaml:"byweekday"`
	ByweekdayIsWeekdays Bucket `yaml:"byweekday_is_weekdays"`
	Weekdays            Bucket `yaml:"weekdays"`
	// WeekdaysByweekday holds weekday names in the form used inside the
	// byweekday clause, keyed 0 (Sunday) to 6 (Saturday).
	WeekdaysByweekday Bucket `yaml:"weekdays_byweekday"`
	NthWeekday        Bucket `yaml:"nth_weekday"`
	NthLastWeekday    Bucket `yaml:"-nth_weekday"`

	Byweekno  Bucket `yaml:"byweekno"`
	NthWeekno string `yaml:"nth_weekno"`

	Bymonthday      string `yaml:"bymonthday"`
	NthMonthday     Bucket `yaml:"nth_monthday"`
	NthLastMonthday Bucket `yaml:"-nth_monthday"`

	Byyearday      Bucket `yaml:"byyearday"`
	NthYearday     Bucket `yaml:"nth_yearday"`
	NthLastYearday Bucket `yaml:"-nth_yearday"`

	Byhour        Bucket `yaml:"byhour"`
	NthHour       string `yaml:"nth_hour"`
	Byminute      Bucket `yaml:"byminute"`
	NthMinute     string `yaml:"nth_minute"`
	Bysecond      Bucket `yaml:"bysecond"`
	NthSecond     string `yaml:"nth_second"`
	Bysetpos      string `yaml:"bysetpos"`
	NthSetpos     Bucket `yaml:"nth_setpos"`
	NthLastSetpos Bucket `yaml:"-nth_setpos"`

	Approximate string `yaml:"approximate"`

	DateFormatLocale  string            `yaml:"date_format_locale"`
	DateFormatOptions DateFormatOptions `yaml:"date_format_options"`
}

type XOfTheY struct {
	Yearly  string `yaml:"yearly"`
	Monthly string `yaml:"monthly"`
}

// Validate checks that every bucket the renderer selects by number has a
// fallback and that the clause templates are present.
func (t *Templates) Validate() error {
	var missing []string

	buckets := []struct {
		key    string
		bucket Bucket
	}{
		{"yearly", t.Yearly},
		{"monthly", t.Monthly},
		{"weekly", t.Weekly},
		{"daily", t.Daily},
		{"hourly", t.Hourly},
		{"minutely", t.Minutely},
		{"count", t.Count},
		{"byweekday_is_weekdays", t.ByweekdayIsWeekdays},
		{"nth_weekday", t.NthWeekday},
		{"-nth_weekday", t.NthLastWeekday},
		{"nth_monthday", t.NthMonthday},
		{"-nth_monthday", t.NthLastMonthday},
		{"byhour", t.Byhour},
	}
	for _, b := range buckets {
		if b.bucket.Else == "" {
			missing = append(missing, b.key+".else")
		}
	}

	literals := []struct {
		key   string
		value string
	}{
		{"until", t.Until},
		{"and", t.And},
		{"bymonth", t.Bymonth},
		{"byweekday", t.Byweekday},
		{"bymonthday", t.Bymonthday},
	}
	for _, l := range literals {
		if l.value == "" {
			missing = append(missing, l.key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidBundle, strings.Join(missing, ", "))
	}
	return nil
}

// DateFormatter returns the formatter configured by the bundle's date
// format locale and options.
func (t *Templates) DateFormatter() DateFormatter {
	return DefaultDateFormatter(t.DateFormatLocale, t.DateFormatOptions)
}
