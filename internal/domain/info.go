package domain

import "time"

const (
	AppName    = "Kubernetes Lab Demo"
	Version    = "1.0.0"
	UnknownPod = "unknown"

	StatusHealthy = "healthy"
	StatusReady   = "ready"
)

// TimestampLayout renders UTC instants as ISO-8601 with millisecond
// precision and a literal Z suffix, e.g. 2026-10-19T08:30:00.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp converts t to UTC before formatting with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Status is the body of the liveness and readiness probes.
type Status struct {
	Status string `json:"status"`
}

// Info is the body of GET /api/info. Field order is part of the wire format.
type Info struct {
	App       string `json:"app"`
	Version   string `json:"version"`
	Pod       string `json:"pod"`
	Timestamp string `json:"timestamp"`
}

// Page carries the values rendered into the landing page.
type Page struct {
	Pod       string
	Service   string
	Namespace string
	Time      string
}
