package recurrence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
)

// ExtractRecurrenceInfoFromComponent extracts recurrence information from an iCal component
func ExtractRecurrenceInfoFromComponent(comp *ical.Component) RecurrenceInfo {
	info := RecurrenceInfo{}

	if rruleProp := comp.Props.Get(ical.PropRecurrenceRule); rruleProp != nil && rruleProp.Value != "" {
		info.RRULE = rruleProp.Value
	}

	if dtstart, err := comp.Props.DateTime(ical.PropDateTimeStart, nil); err == nil {
		info.Dtstart = dtstart
	}

	if rdateProp := comp.Props.Get(ical.PropRecurrenceDates); rdateProp != nil {
		info.RDATE = parseDateList(rdateProp.Value, rdateProp.Params)
	}

	if exdateProp := comp.Props.Get(ical.PropExceptionDates); exdateProp != nil {
		info.EXDATE = parseDateList(exdateProp.Value, exdateProp.Params)
	}

	if recurrenceIDProp := comp.Props.Get("RECURRENCE-ID"); recurrenceIDProp != nil && recurrenceIDProp.Value != "" {
		if recID, err := parseDateTime(recurrenceIDProp.Value, recurrenceIDProp.Params); err == nil {
			info.RecurrenceID = &recID
		}
	}

	return info
}

// DescribeCalendar decodes every calendar in r and describes each recurring
// VEVENT, VTODO and VJOURNAL. Overridden instances (RECURRENCE-ID) are
// skipped. A component with a bad rule gets Err set; decoding errors abort.
func (e *Engine) DescribeCalendar(ctx context.Context, r io.Reader) ([]ComponentDescription, error) {
	dec := ical.NewDecoder(r)

	var out []ComponentDescription
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("decoding calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if !isRecurringKind(comp.Name) {
				continue
			}

			info := ExtractRecurrenceInfoFromComponent(comp)
			if info.RRULE == "" || info.RecurrenceID != nil {
				continue
			}

			cd := ComponentDescription{
				UID:     propText(comp, ical.PropUID),
				Summary: propText(comp, ical.PropSummary),
				Rule:    info.RRULE,
			}
			cd.Description, cd.Err = e.Describe(ctx, info)
			if errors.Is(cd.Err, context.Canceled) || errors.Is(cd.Err, context.DeadlineExceeded) {
				return out, cd.Err
			}
			out = append(out, cd)
		}
	}

	e.logger.Debug("described calendar", "components", len(out))
	return out, nil
}

func isRecurringKind(name string) bool {
	switch name {
	case ical.CompEvent, ical.CompToDo, ical.CompJournal:
		return true
	}
	return false
}

func propText(comp *ical.Component, name string) string {
	text, err := comp.Props.Text(name)
	if err != nil {
		return ""
	}
	return text
}

// parseDateList parses a comma-separated RDATE or EXDATE value. Entries that
// fail to parse are dropped.
func parseDateList(value string, params ical.Params) []time.Time {
	var dates []time.Time
	for _, s := range strings.Split(value, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if t, err := parseDateTime(s, params); err == nil {
			dates = append(dates, t)
		}
	}
	return dates
}

// parseDateTime parses a DATE or UTC DATE-TIME value. Date-only values are
// stored as midnight UTC.
func parseDateTime(value string, params ical.Params) (time.Time, error) {
	dateOnly := strings.EqualFold(params.Get("VALUE"), "DATE")

	if !dateOnly {
		if t, err := time.Parse("20060102T150405Z", value); err == nil {
			return t, nil
		}
	}

	t, err := time.Parse("20060102", value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// isAllDayDate checks if a time represents an all-day date (time part is midnight)
func isAllDayDate(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}
