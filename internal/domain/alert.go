package domain

import (
	"context"
	"time"
)

// Alert severities, ordered from informational to critical.
const (
	AlertSeverityAdvisory = "advisory"
	AlertSeverityWatch    = "watch"
	AlertSeverityWarning  = "warning"
)

// WeatherAlert is an active weather or disaster alert for a region.
type WeatherAlert struct {
	Region      string
	Event       string
	Severity    string
	Headline    string
	Description string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// AlertProvider supplies active alerts for a region. The upstream weather
// feed is an external collaborator; implementations wrap it behind this
// interface so the rest of the app never sees the third-party API.
type AlertProvider interface {
	Current(ctx context.Context, region string) ([]WeatherAlert, error)
}
