package progress

import (
	"sort"

	"github.com/SANTHOSHG-WEB/disaster/internal/catalog"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// MasterBadge is awarded once every module in the course is complete.
const MasterBadge = "badge-master-disaster-manager"

// ModuleBadge returns the badge identifier for a completed module.
func ModuleBadge(moduleID string) string {
	return "badge-module-" + moduleID
}

// Stats are the aggregates derived from a module-progress map.
type Stats struct {
	Points            int
	Badges            []string
	CompletedCount    int
	CertificateEarned bool
}

// ComputeStats derives points, badges and certificate eligibility from a
// module-progress map. A module counts as complete only when all three
// stage flags hold; that single rule feeds points, badges and the
// certificate alike. The result is rebuilt from scratch on every call, so
// repeated invocations never accumulate duplicate badges.
func ComputeStats(modules map[string]domain.ModuleProgress) Stats {
	stats := Stats{Badges: []string{}}

	ids := make([]string, 0, len(modules))
	for id := range modules {
		ids = append(ids, id)
	}
	// Badge order follows the course sequence, not map iteration order.
	sort.Slice(ids, func(i, j int) bool {
		oi, oj := catalog.Ordinal(ids[i]), catalog.Ordinal(ids[j])
		if oi != oj {
			return oi < oj
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		m := modules[id]
		if !m.Done() {
			continue
		}
		stats.CompletedCount++
		stats.Points += 100 + m.Score
		stats.Badges = append(stats.Badges, ModuleBadge(id))
	}

	if stats.CompletedCount >= catalog.CourseLength {
		stats.Badges = append(stats.Badges, MasterBadge)
		stats.CertificateEarned = true
	}

	return stats
}

// apply merges derived stats into a progress snapshot.
func (s Stats) apply(modules map[string]domain.ModuleProgress) domain.UserProgress {
	return domain.UserProgress{
		Modules:           modules,
		Points:            s.Points,
		Badges:            s.Badges,
		CertificateEarned: s.CertificateEarned,
	}
}

// CanAccess reports whether a module is unlocked for the given progress.
// The first module is always open; every other module requires its
// immediate predecessor in the course sequence to be fully complete.
func CanAccess(progress domain.UserProgress, moduleID string) bool {
	if catalog.Ordinal(moduleID) == 1 {
		return true
	}
	prevID := catalog.PredecessorID(moduleID)
	if prevID == "" {
		return false
	}
	prev, ok := progress.Modules[prevID]
	return ok && prev.CompletedAt != nil
}
