package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// StaticAlertProvider serves weather alerts from an in-memory set,
// keyed by region. It is the provider used when no live feed is
// configured, and doubles as the test double for handlers.
type StaticAlertProvider struct {
	mu     sync.RWMutex
	alerts map[string][]domain.WeatherAlert
	clock  func() time.Time
}

// NewStaticAlertProvider creates a provider with no alerts loaded.
func NewStaticAlertProvider() *StaticAlertProvider {
	return &StaticAlertProvider{
		alerts: make(map[string][]domain.WeatherAlert),
		clock:  time.Now,
	}
}

// predefinedAlerts is the static advisory set served until a live
// weather feed is wired in. A zero expiry means the entry never ages
// out of Current.
var predefinedAlerts = []domain.WeatherAlert{
	{
		Event:       "Northeast Monsoon",
		Severity:    domain.AlertSeverityAdvisory,
		Headline:    "Seasonal monsoon preparedness advisory",
		Description: "Heavy rainfall is typical between October and December. Review your family emergency plan and keep documents in waterproof storage.",
	},
	{
		Event:       "Coastal Flooding",
		Severity:    domain.AlertSeverityWatch,
		Headline:    "Low-lying coastal areas may flood during high tide",
		Description: "Residents near the shoreline should know their nearest shelter and evacuation route.",
	},
}

// SeedPredefined loads the static alert set for a region, stamping each
// entry with the region and an issue time. A region that already has
// alerts is left untouched, so seeding is idempotent.
func (p *StaticAlertProvider) SeedPredefined(region string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := normalizeRegion(region)
	if len(p.alerts[key]) > 0 {
		return
	}
	now := p.clock()
	seeded := make([]domain.WeatherAlert, 0, len(predefinedAlerts))
	for _, a := range predefinedAlerts {
		a.Region = key
		a.IssuedAt = now
		seeded = append(seeded, a)
	}
	p.alerts[key] = seeded
}

// Set replaces the alerts for a region.
func (p *StaticAlertProvider) Set(region string, alerts []domain.WeatherAlert) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts[normalizeRegion(region)] = alerts
}

// Current returns the unexpired alerts for a region, most severe
// first. An unknown region yields an empty list, not an error.
func (p *StaticAlertProvider) Current(_ context.Context, region string) ([]domain.WeatherAlert, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	now := p.clock()
	var out []domain.WeatherAlert
	for _, a := range p.alerts[normalizeRegion(region)] {
		if a.ExpiresAt.IsZero() || a.ExpiresAt.After(now) {
			out = append(out, a)
		}
	}
	sortBySeverity(out)
	return out, nil
}

func normalizeRegion(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

func sortBySeverity(alerts []domain.WeatherAlert) {
	rank := map[string]int{
		domain.AlertSeverityWarning:  0,
		domain.AlertSeverityWatch:    1,
		domain.AlertSeverityAdvisory: 2,
	}
	for i := 1; i < len(alerts); i++ {
		for j := i; j > 0 && rank[alerts[j].Severity] < rank[alerts[j-1].Severity]; j-- {
			alerts[j], alerts[j-1] = alerts[j-1], alerts[j]
		}
	}
}
