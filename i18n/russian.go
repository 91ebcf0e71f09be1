package i18n

// Russian uses nominative weekday names in lists and accusative forms inside
// the "в %{weekdays}" clause.
var Russian = &Templates{
	Yearly: Bucket{
		Cases: map[string]string{"1": "Каждый год", "2": "Каждый 2 год", "3": "Каждый 3 год", "4": "Каждый 4 год"},
		Else:  "Каждые %{interval} лет",
	},
	Monthly: Bucket{
		Cases: map[string]string{"1": "Каждый месяц", "2": "Каждые 2 месяца", "3": "Каждые 3 месяца", "4": "Каждые 4 месяца"},
		Else:  "Каждые %{interval} месяцев",
	},
	Weekly: Bucket{Cases: map[string]string{"1": "Каждую неделю"}, Else: "Каждую %{interval} неделю"},
	Daily:  Bucket{Cases: map[string]string{"1": "Каждый день"}, Else: "Каждый %{interval} день"},
	Hourly: Bucket{
		Cases: map[string]string{
			"1": "Каждый час", "2": "Каждые 2 часа", "3": "Каждые 3 часа", "4": "Каждые 4 часа",
			"21": "Каждый 21 час", "22": "Каждые 22 часа", "23": "Каждые 23 часа", "24": "Каждые 24 часа",
		},
		Else: "Каждые %{interval} часов",
	},
	Minutely: Bucket{
		Cases: map[string]string{
			"1": "Каждую минуту", "2": "Каждые 2 минуты", "3": "Каждые 3 минуты", "4": "Каждые 4 минуты",
			"21": "Каждую 21 минуту", "22": "Каждые 22 минуты", "23": "Каждые 23 минуты", "24": "Каждые 24 минуты",
			"31": "Каждую 31 минуту", "32": "Каждые 32 минуты", "33": "Каждые 33 минуты", "34": "Каждые 34 минуты",
			"41": "Каждую 41 минуту", "42": "Каждые 42 минуты", "43": "Каждые 43 минуты", "44": "Каждые 44 минуты",
			"51": "Каждую 51 минуту", "52": "Каждые 52 минуты", "53": "Каждые 53 минуты", "54": "Каждые 54 минуты",
		},
		Else: "Каждые %{interval} минут",
	},
	Secondly: Bucket{Cases: map[string]string{"1": "Каждую секунду"}, Else: "Каждую %{interval} секунду"},

	Dtstart:           "начиная с %{date}",
	TimeOfDay:         "в %{date}",
	StartingTimeOfDay: "начиная в %{date}",
	Infinite:          "всегда",
	Until:             "до %{date}",
	Count: Bucket{
		Cases: map[string]string{"1": "один раз", "2": "%{count} раза", "3": "%{count} раза", "4": "%{count} раза"},
		Else:  "%{count} раз",
	},

	And: "и ",
	XOfTheY: XOfTheY{
		Yearly:  "%{x} в году",
		Monthly: "%{x} в месяце",
	},

	Bymonth: " %{months}",
	Months: Bucket{Cases: map[string]string{
		"1": "Январь", "2": "Февраль", "3": "Март", "4": "Апрель",
		"5": "Май", "6": "Июнь", "7": "Июль", "8": "Август",
		"9": "Сентябрь", "10": "Октябрь", "11": "Ноябрь", "12": "Декабрь",
	}},

	Byweekday: "в %{weekdays}",
	ByweekdayIsWeekdays: Bucket{
		Cases: map[string]string{"1": "по будням"},
		Else:  "каждый %{interval} будний день",
	},
	Weekdays: Bucket{Cases: map[string]string{
		"0": "Воскресенье", "1": "Понедельник", "2": "Вторник", "3": "Среда",
		"4": "Четверг", "5": "Пятница", "6": "Суббота",
	}},
	WeekdaysByweekday: Bucket{Cases: map[string]string{
		"0": "Воскресенье", "1": "Понедельник", "2": "Вторник", "3": "Среду",
		"4": "Четверг", "5": "Пятницу", "6": "Суббота",
	}},
	NthWeekday: Bucket{Else: "%{n} %{weekday}"},
	NthLastWeekday: Bucket{
		Cases: map[string]string{"1": "последний %{weekday}", "2": "предпоследний %{weekday}"},
		Else:  "%{n} с конца %{weekday}",
	},

	Byweekno:  Bucket{Else: "в неделю №%{weeks}"},
	NthWeekno: "%{n}",

	Bymonthday:  "%{monthdays} числа",
	NthMonthday: Bucket{Else: "%{n}-го"},
	NthLastMonthday: Bucket{
		Cases: map[string]string{"1": "последнего", "2": "предпоследнего"},
		Else:  "%{n}-го с конца",
	},

	Byyearday:  Bucket{Else: "в %{yeardays}-й день"},
	NthYearday: Bucket{Else: "%{n}-й"},
	NthLastYearday: Bucket{
		Cases: map[string]string{"1": "последний", "2": "предпоследний"},
		Else:  "%{n}-й с конца",
	},

	Byhour:    Bucket{Else: "в %{hours}"},
	NthHour:   "%{n}",
	Byminute:  Bucket{Cases: map[string]string{"2": "во %{hours}-ю"}, Else: "в %{hours}-ю"},
	NthMinute: "%{n}",
	Bysecond:  Bucket{Cases: map[string]string{"2": "во %{seconds}-ю"}, Else: "в %{seconds}-ю"},
	NthSecond: "%{n}",

	Approximate: "Примерно",

	DateFormatLocale: "ru",
	DateFormatOptions: DateFormatOptions{
		Pattern: "%{day} %{month} %{year} г.",
		MonthNames: []string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
	},
}
