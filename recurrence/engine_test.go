package recurrence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmichkarev/rrule/i18n"
	"github.com/nmichkarev/rrule/totext"
)

func newTestEngine(t *testing.T, config EngineConfig) *Engine {
	t.Helper()
	engine, err := NewEngineWithConfig(config)
	require.NoError(t, err)
	t.Cleanup(engine.Close)
	return engine
}

func TestEngine_Describe(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	tests := []struct {
		name        string
		info        RecurrenceInfo
		text        string
		approximate bool
	}{
		{
			name: "weekly",
			info: RecurrenceInfo{RRULE: "FREQ=WEEKLY;BYDAY=MO"},
			text: "every week on Monday",
		},
		{
			name: "prefixed rule",
			info: RecurrenceInfo{RRULE: "RRULE:FREQ=DAILY;INTERVAL=2"},
			text: "every other day",
		},
		{
			name: "anchored rule",
			info: RecurrenceInfo{
				RRULE:   "FREQ=MONTHLY;BYMONTHDAY=1",
				Dtstart: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			},
			text: "every month on the 1st",
		},
		{
			name:        "partially rendered",
			info:        RecurrenceInfo{RRULE: "FREQ=MONTHLY;BYHOUR=9"},
			text:        "every month (~ approximate)",
			approximate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := engine.Describe(context.Background(), tt.info)
			require.NoError(t, err)
			assert.Equal(t, tt.text, d.Text)
			assert.Equal(t, tt.approximate, d.Approximate)
		})
	}
}

func TestEngine_DescribeErrors(t *testing.T) {
	engine := newTestEngine(t, DisabledCacheConfig)

	_, err := engine.Describe(context.Background(), RecurrenceInfo{})
	assert.ErrorIs(t, err, ErrNoRecurrence)

	_, err = engine.Describe(context.Background(), RecurrenceInfo{RRULE: "FREQ=SOMETIMES"})
	assert.ErrorIs(t, err, totext.ErrInvalidRule)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Describe(ctx, RecurrenceInfo{RRULE: "FREQ=DAILY"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Language(t *testing.T) {
	config := DisabledCacheConfig
	config.Language = "ru-RU"
	engine := newTestEngine(t, config)

	d, err := engine.Describe(context.Background(), RecurrenceInfo{RRULE: "FREQ=WEEKLY;COUNT=20"})
	require.NoError(t, err)
	assert.Equal(t, "Каждую неделю 20 раз", d.Text)

	config.Language = "ja"
	_, err = NewEngineWithConfig(config)
	assert.ErrorIs(t, err, i18n.ErrUnknownLanguage)
}

func TestEngine_CustomTemplates(t *testing.T) {
	custom := *i18n.English
	custom.Approximate = "roughly"

	config := DefaultEngineConfig
	config.Templates = &custom
	config.Language = "xx-invalid-but-unused"
	engine := newTestEngine(t, config)

	d, err := engine.Describe(context.Background(), RecurrenceInfo{RRULE: "FREQ=HOURLY;BYMINUTE=5"})
	require.NoError(t, err)
	assert.Equal(t, "every hour (~ roughly)", d.Text)
}

func TestEngine_Cache(t *testing.T) {
	engine := newTestEngine(t, DefaultEngineConfig)
	ctx := context.Background()

	first, err := engine.Describe(ctx, RecurrenceInfo{RRULE: "FREQ=YEARLY"})
	require.NoError(t, err)
	second, err := engine.Describe(ctx, RecurrenceInfo{RRULE: "FREQ=YEARLY"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats, ok := engine.CacheStats()
	require.True(t, ok)
	assert.Equal(t, 1, stats.TotalEntries)

	_, ok = newTestEngine(t, DisabledCacheConfig).CacheStats()
	assert.False(t, ok)
}

func TestEngine_DescribeAll(t *testing.T) {
	engine := newTestEngine(t, DefaultEngineConfig)

	results := engine.DescribeAll(context.Background(), []string{
		"FREQ=DAILY",
		"FREQ=NEVER",
		"",
		"FREQ=DAILY",
	})
	require.Len(t, results, 3)

	d, err := results["FREQ=DAILY"].Get()
	require.NoError(t, err)
	assert.Equal(t, "every day", d.Text)

	assert.ErrorIs(t, results["FREQ=NEVER"].Error(), totext.ErrInvalidRule)
	assert.ErrorIs(t, results[""].Error(), ErrNoRecurrence)
}

func TestEngine_Next(t *testing.T) {
	masterStart := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		config   EngineConfig
		info     RecurrenceInfo
		from     time.Time
		n        int
		expected []time.Time
	}{
		{
			name:   "daily from the middle of the series",
			config: DisabledCacheConfig,
			info:   RecurrenceInfo{RRULE: "FREQ=DAILY;COUNT=5", Dtstart: masterStart},
			from:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			n:      10,
			expected: []time.Time{
				time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "exdate and rdate",
			config: DisabledCacheConfig,
			info: RecurrenceInfo{
				RRULE:   "FREQ=DAILY;COUNT=3",
				Dtstart: masterStart,
				EXDATE:  []time.Time{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
				RDATE:   []time.Time{time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)},
			},
			from: masterStart,
			n:    10,
			expected: []time.Time{
				time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "anchored at from",
			config: DisabledCacheConfig,
			info:   RecurrenceInfo{RRULE: "FREQ=WEEKLY"},
			from:   masterStart,
			n:      3,
			expected: []time.Time{
				time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "dtstart in rule text",
			config: DisabledCacheConfig,
			info:   RecurrenceInfo{RRULE: "DTSTART:20240101T090000Z\nRRULE:FREQ=DAILY;COUNT=2"},
			from:   time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			n:      5,
			expected: []time.Time{
				time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "capped by max preview",
			config: EngineConfig{MaxPreviewOccurrences: 2},
			info:   RecurrenceInfo{RRULE: "FREQ=DAILY", Dtstart: masterStart},
			from:   masterStart,
			n:      10,
			expected: []time.Time{
				time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "capped by preview window",
			config: EngineConfig{PreviewWindow: 400 * 24 * time.Hour},
			info:   RecurrenceInfo{RRULE: "FREQ=YEARLY", Dtstart: masterStart},
			from:   masterStart,
			n:      10,
			expected: []time.Time{
				time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "nothing requested",
			config: DisabledCacheConfig,
			info:   RecurrenceInfo{RRULE: "FREQ=DAILY"},
			from:   masterStart,
			n:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, tt.config)

			result, err := engine.Next(context.Background(), tt.info, tt.from, tt.n)
			require.NoError(t, err)
			require.Len(t, result, len(tt.expected))
			for i := range tt.expected {
				assert.True(t, tt.expected[i].Equal(result[i]), "occurrence %d: want %s, got %s", i, tt.expected[i], result[i])
			}
		})
	}
}

func TestEngine_NextErrors(t *testing.T) {
	engine := newTestEngine(t, DisabledCacheConfig)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := engine.Next(context.Background(), RecurrenceInfo{}, from, 1)
	assert.ErrorIs(t, err, ErrNoRecurrence)

	_, err = engine.Next(context.Background(), RecurrenceInfo{RRULE: "FREQ=DAILY;BYDAY=XX"}, from, 1)
	assert.ErrorIs(t, err, totext.ErrInvalidRule)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Next(ctx, RecurrenceInfo{RRULE: "FREQ=DAILY"}, from, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsExcluded(t *testing.T) {
	occurrence := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		exdates []time.Time
		want    bool
	}{
		{"exact", []time.Time{occurrence}, true},
		{"same day, date only", []time.Time{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}, true},
		{"other day", []time.Time{time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)}, false},
		{"same day, other time", []time.Time{time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)}, false},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isExcluded(occurrence, tt.exdates))
		})
	}
}
