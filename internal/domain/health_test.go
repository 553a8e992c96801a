package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHealthSnapshot(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	testCases := map[string]struct {
		now        time.Time
		wantUptime time.Duration
	}{
		"at start": {
			now: start,
		},
		"after ninety seconds": {
			now:        start.Add(90 * time.Second),
			wantUptime: 90 * time.Second,
		},
		"clock behind start never goes negative": {
			now: start.Add(-time.Second),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := NewHealthSnapshot(start, tc.now)

			require.Equal(t, StatusHealthy, got.Status)
			require.Equal(t, tc.now, got.Timestamp)
			require.Equal(t, tc.wantUptime, got.Uptime)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, 10, 18, 11, 30, 5, 123_456_789, time.FixedZone("CEST", 2*60*60))

	got := FormatTimestamp(ts)

	require.Equal(t, "2026-10-18T09:30:05.123Z", got)
	parsed, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err)
	require.True(t, parsed.Equal(ts.Truncate(time.Millisecond)))
}
