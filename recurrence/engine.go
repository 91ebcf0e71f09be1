package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/teambition/rrule-go"

	"github.com/nmichkarev/rrule/i18n"
	"github.com/nmichkarev/rrule/totext"
)

// Engine renders recurrence rules as text in one language and previews
// their occurrences. It is safe for concurrent use.
type Engine struct {
	cache     *RecurrenceCache
	config    EngineConfig
	templates *i18n.Templates
	logger    *slog.Logger
}

// NewEngine creates an English engine with DefaultEngineConfig.
func NewEngine() *Engine {
	config := DefaultEngineConfig
	config.Templates = i18n.English
	e, _ := NewEngineWithConfig(config)
	return e
}

// Close releases the engine's cache.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// CacheStats reports cache usage; ok is false when caching is disabled.
func (e *Engine) CacheStats() (stats CacheStats, ok bool) {
	if e.cache == nil {
		return CacheStats{}, false
	}
	return e.cache.Stats(), true
}

// Describe renders info.RRULE. RDATE and EXDATE do not change the text.
func (e *Engine) Describe(ctx context.Context, info RecurrenceInfo) (Description, error) {
	if err := ctx.Err(); err != nil {
		return Description{}, err
	}

	ruleText := ruleString(info)
	if ruleText == "" {
		return Description{}, ErrNoRecurrence
	}

	if e.cache != nil {
		if d, ok := e.cache.Get(e.cacheLanguage(), ruleText); ok {
			e.logger.Debug("description cache hit", "rule", ruleText)
			return d, nil
		}
	}

	rule, err := totext.ParseRule(ruleText)
	if err != nil {
		e.logger.Warn("failed to parse recurrence rule", "rule", info.RRULE, "error", err)
		return Description{}, err
	}

	tt := totext.New(rule, totext.WithTemplates(e.templates))
	d := Description{
		Text:        tt.Render(),
		Approximate: !tt.IsFullyConvertible(),
		Rule:        rule,
	}
	if d.Approximate {
		e.logger.Debug("rule only partially rendered", "rule", info.RRULE, "keys", rule.SuppliedKeys())
	}

	if e.cache != nil {
		e.cache.Set(e.cacheLanguage(), ruleText, d)
	}
	return d, nil
}

// DescribeAll renders every rule. Failures are reported per rule; an
// empty rule yields ErrNoRecurrence.
func (e *Engine) DescribeAll(ctx context.Context, rules []string) map[string]mo.Result[Description] {
	out := make(map[string]mo.Result[Description], len(rules))
	for _, rule := range rules {
		if _, done := out[rule]; done {
			continue
		}
		d, err := e.Describe(ctx, RecurrenceInfo{RRULE: rule})
		if err != nil {
			out[rule] = mo.Err[Description](err)
			continue
		}
		out[rule] = mo.Ok(d)
	}
	return out
}

// Next returns up to n occurrences of info at or after from, honoring RDATE
// and EXDATE. The search is capped by MaxPreviewOccurrences and
// PreviewWindow. A rule with no DTSTART, neither in info nor in the rule
// text, is anchored at from.
func (e *Engine) Next(ctx context.Context, info RecurrenceInfo, from time.Time, n int) ([]time.Time, error) {
	if info.RRULE == "" {
		return nil, ErrNoRecurrence
	}
	if limit := e.config.MaxPreviewOccurrences; limit > 0 && n > limit {
		n = limit
	}
	if n <= 0 {
		return nil, nil
	}

	set, err := buildSet(info, from)
	if err != nil {
		return nil, err
	}

	var horizon time.Time
	if e.config.PreviewWindow > 0 {
		horizon = from.Add(e.config.PreviewWindow)
	}

	next := set.Iterator()
	var occurrences []time.Time
	for len(occurrences) < n {
		if err := ctx.Err(); err != nil {
			return occurrences, err
		}
		t, ok := next()
		if !ok || (!horizon.IsZero() && t.After(horizon)) {
			break
		}
		if t.Before(from) || isExcluded(t, info.EXDATE) {
			continue
		}
		occurrences = append(occurrences, t)
	}
	return occurrences, nil
}

func (e *Engine) cacheLanguage() string {
	if e.config.Templates != nil {
		return "custom:" + e.config.Language
	}
	return e.config.Language
}

// ruleString prefixes the rule with DTSTART when the info carries one and
// the rule text does not.
func ruleString(info RecurrenceInfo) string {
	rule := strings.TrimPrefix(strings.TrimSpace(info.RRULE), "RRULE:")
	if rule == "" {
		return ""
	}
	if info.Dtstart.IsZero() || strings.Contains(rule, "\n") {
		return rule
	}
	return fmt.Sprintf("DTSTART:%s\nRRULE:%s", info.Dtstart.UTC().Format("20060102T150405Z"), rule)
}

func buildSet(info RecurrenceInfo, from time.Time) (*rrule.Set, error) {
	rule := strings.TrimPrefix(strings.TrimSpace(info.RRULE), "RRULE:")
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", totext.ErrInvalidRule, err)
	}
	switch {
	case !info.Dtstart.IsZero():
		opt.Dtstart = info.Dtstart
	case opt.Dtstart.IsZero():
		opt.Dtstart = from
	}

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", totext.ErrInvalidRule, err)
	}

	set := &rrule.Set{}
	set.RRule(r)
	for _, rdate := range info.RDATE {
		set.RDate(rdate)
	}
	return set, nil
}

// isExcluded checks if a given time is in the EXDATE list. Date-only
// exceptions (midnight UTC) exclude every occurrence on that day.
func isExcluded(t time.Time, exdates []time.Time) bool {
	for _, exdate := range exdates {
		if t.Equal(exdate) {
			return true
		}

		if exdate.Location() == time.UTC && isAllDayDate(exdate) {
			y, m, d := t.UTC().Date()
			if time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Equal(exdate) {
				return true
			}
		}
	}
	return false
}
