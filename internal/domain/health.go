package domain

import "time"

const (
	StatusHealthy = "healthy"

	// TimestampLayout is ISO-8601 in UTC with millisecond precision,
	// e.g. 2026-10-18T09:30:00.000Z.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Clock returns the current time. Handlers take one so tests can control it.
type Clock func() time.Time

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// HealthSnapshot is computed fresh for every health request and never stored.
type HealthSnapshot struct {
	Status    string
	Timestamp time.Time
	Uptime    time.Duration
}

func NewHealthSnapshot(startTime, now time.Time) HealthSnapshot {
	uptime := now.Sub(startTime)
	if uptime < 0 {
		uptime = 0
	}

	return HealthSnapshot{
		Status:    StatusHealthy,
		Timestamp: now,
		Uptime:    uptime,
	}
}
