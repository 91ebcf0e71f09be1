package i18n

// English is the default bundle.
var English = &Templates{
	Yearly:   Bucket{Cases: map[string]string{"1": "every year"}, Else: "every %{interval} years"},
	Monthly:  Bucket{Cases: map[string]string{"1": "every month"}, Else: "every %{interval} months"},
	Weekly:   Bucket{Cases: map[string]string{"1": "every week"}, Else: "every %{interval} weeks"},
	Daily:    Bucket{Cases: map[string]string{"1": "every day", "2": "every other day"}, Else: "every %{interval} days"},
	Hourly:   Bucket{Cases: map[string]string{"1": "every hour"}, Else: "every %{interval} hours"},
	Minutely: Bucket{Cases: map[string]string{"1": "every minute"}, Else: "every %{interval} minutes"},
	Secondly: Bucket{Cases: map[string]string{"1": "every second"}, Else: "every %{interval} seconds"},

	Dtstart:           "starting from %{date}",
	TimeOfDay:         "at %{date}",
	StartingTimeOfDay: " starting at %{date}",
	Infinite:          "forever",
	Until:             "until %{date}",
	Count:             Bucket{Cases: map[string]string{"1": "one time"}, Else: "for %{count} times"},

	And: "and ",
	XOfTheY: XOfTheY{
		Yearly:  "%{x} of the year",
		Monthly: "%{x} of the month",
	},

	Bymonth: "in %{months}",
	Months: Bucket{Cases: map[string]string{
		"1": "January", "2": "February", "3": "March", "4": "April",
		"5": "May", "6": "June", "7": "July", "8": "August",
		"9": "September", "10": "October", "11": "November", "12": "December",
	}},

	Byweekday: "on %{weekdays}",
	ByweekdayIsWeekdays: Bucket{
		Cases: map[string]string{"1": "every weekday"},
		Else:  "every %{interval} weekday",
	},
	Weekdays:          Bucket{Cases: englishDayNames},
	WeekdaysByweekday: Bucket{Cases: englishDayNames},
	NthWeekday: Bucket{
		Cases: map[string]string{
			"1": "the 1st %{weekday}",
			"2": "the 2nd %{weekday}",
			"3": "the 3rd %{weekday}",
		},
		Else: "the %{n}th %{weekday}",
	},
	// Negative ordinals are looked up by magnitude.
	NthLastWeekday: Bucket{
		Cases: map[string]string{
			"1": "the last %{weekday}",
			"2": "the 2nd last %{weekday}",
			"3": "the 3rd last %{weekday}",
		},
		Else: "the %{n}th last %{weekday}",
	},

	Byweekno:  Bucket{Cases: map[string]string{"1": " on week %{weeks}"}, Else: " on weeks number %{weeks}"},
	NthWeekno: "%{n}",

	Bymonthday: "on the %{monthdays}",
	NthMonthday: Bucket{
		Cases: map[string]string{
			"1": "1st", "2": "2nd", "3": "3rd",
			"21": "21st", "22": "22nd", "23": "23rd",
			"31": "31st",
		},
		Else: "%{n}th",
	},
	NthLastMonthday: Bucket{
		Cases: map[string]string{
			"1": "last", "2": "2nd last day", "3": "3rd last day",
			"21": "21st last day", "22": "22nd last day", "23": "23rd last day",
			"31": "31st last day",
		},
		Else: "%{n}th last",
	},

	Byyearday:      Bucket{Cases: map[string]string{"1": "on %{yeardays} day"}, Else: "on %{yeardays} days"},
	NthYearday:     Bucket{Cases: map[string]string{"1": "the first", "2": "the second", "3": "the third"}, Else: "the %{n}th"},
	NthLastYearday: Bucket{Cases: map[string]string{"1": "the last", "2": "the 2nd last", "3": "the 3rd last"}, Else: "the %{n}th last"},

	Byhour:        Bucket{Cases: map[string]string{"1": "at %{hours}"}, Else: "at %{hours}"},
	NthHour:       "%{n}h",
	Byminute:      Bucket{Cases: map[string]string{"1": " at minute %{minutes}"}, Else: " at minutes %{minutes}"},
	NthMinute:     "%{n}",
	Bysecond:      Bucket{Cases: map[string]string{"1": " at second %{seconds}"}, Else: " at seconds %{seconds}"},
	NthSecond:     "%{n}",
	Bysetpos:      ", but only %{setpos} instance of this set",
	NthSetpos:     Bucket{Cases: map[string]string{"1": "the first", "2": "the second", "3": "the third"}, Else: "the %{n}th"},
	NthLastSetpos: Bucket{Cases: map[string]string{"1": "the last", "2": "the 2nd last", "3": "the 3rd last"}, Else: "the %{n}th last"},

	Approximate: "approximate",

	DateFormatLocale: "en-US",
	DateFormatOptions: DateFormatOptions{
		Pattern:    "%{month} %{day}, %{year}",
		MonthNames: englishMonthNames,
	},
}

var englishDayNames = map[string]string{
	"0": "Sunday",
	"1": "Monday",
	"2": "Tuesday",
	"3": "Wednesday",
	"4": "Thursday",
	"5": "Friday",
	"6": "Saturday",
}

var englishMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
