package totext

import (
	"cmp"
	"slices"

	"github.com/samber/mo"
)

// WeekdayView splits the weekday constraint into every-occurrence and
// nth-occurrence groups. The flags describe the raw set of base days.
type WeekdayView struct {
	AllWeeks   mo.Option[[]Weekday]
	SomeWeeks  mo.Option[[]Weekday]
	IsWeekdays bool
	IsEveryDay bool
}

func deriveWeekdays(days []Weekday) mo.Option[WeekdayView] {
	if len(days) == 0 {
		return mo.None[WeekdayView]()
	}

	var all, some []Weekday
	var seen [7]bool
	for _, w := range days {
		if w.N == 0 {
			all = append(all, w)
		} else {
			some = append(some, w)
		}
		if w.Day >= 0 && w.Day < len(seen) {
			seen[w.Day] = true
		}
	}

	byDay := func(a, b Weekday) int { return cmp.Compare(a.Day, b.Day) }
	slices.SortStableFunc(all, byDay)
	slices.SortStableFunc(some, byDay)

	workweek := seen[1] && seen[2] && seen[3] && seen[4] && seen[5]
	return mo.Some(WeekdayView{
		AllWeeks:   presentSlice(all),
		SomeWeeks:  presentSlice(some),
		IsWeekdays: workweek && !seen[0] && !seen[6],
		IsEveryDay: workweek && seen[0] && seen[6],
	})
}

// deriveMonthdays orders month days as 1, 2, 3, ..., -1, -2, -3.
func deriveMonthdays(positive, negative []int) mo.Option[[]int] {
	pos := slices.Clone(positive)
	neg := slices.Clone(negative)
	slices.Sort(pos)
	slices.SortFunc(neg, func(a, b int) int { return cmp.Compare(b, a) })

	return presentSlice(append(pos, neg...))
}

func presentSlice[T any](xs []T) mo.Option[[]T] {
	if len(xs) == 0 {
		return mo.None[[]T]()
	}
	return mo.Some(xs)
}
