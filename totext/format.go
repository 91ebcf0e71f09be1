package totext

import (
	"strconv"
	"strings"

	"github.com/nmichkarev/rrule/i18n"
)

// sentence collects rendered fragments; they are joined with single spaces.
type sentence []string

func (s *sentence) add(fragment string) {
	*s = append(*s, fragment)
}

func (s sentence) String() string {
	return strings.Join(s, " ")
}

// substitute replaces the first %{name} token in tpl.
func substitute(tpl, name, value string) string {
	return strings.Replace(tpl, "%{"+name+"}", value, 1)
}

// list joins items as "a, b and c" using the bundle's conjunction.
func list(and string, items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + " " + and + items[last]
}

// nth renders a signed ordinal: positive values use pos, negative values
// use neg, and both look up and echo the magnitude.
func nth(pos, neg i18n.Bucket, n int) string {
	family := pos
	if n < 0 {
		family = neg
		n = -n
	}
	key := strconv.Itoa(n)
	return substitute(family.Select(key), "n", key)
}

func itoas(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}
	return out
}
