package recurrence

import (
	"errors"
	"time"

	"github.com/nmichkarev/rrule/totext"
)

// ErrNoRecurrence is returned when a component or RecurrenceInfo has no RRULE.
var ErrNoRecurrence = errors.New("recurrence: no recurrence rule")

// RecurrenceInfo contains all recurrence-related information for an event
type RecurrenceInfo struct {
	RRULE        string      // The RRULE value (an "RRULE:" prefix is accepted)
	Dtstart      time.Time   // Zero when the rule has no anchor
	RDATE        []time.Time // Additional recurrence dates
	EXDATE       []time.Time // Exception dates (excluded occurrences)
	RecurrenceID *time.Time  // For exception instances - which occurrence this overrides
}

// Description is the rendered form of a rule.
type Description struct {
	Text string
	// Approximate is set when some options of the rule are not expressed in
	// Text.
	Approximate bool
	Rule        totext.Rule
}

// ComponentDescription describes one recurring calendar component.
type ComponentDescription struct {
	UID         string
	Summary     string
	Rule        string // RRULE value as written in the component
	Description Description
	Err         error // Set when the component's RRULE could not be parsed
}
