package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/catalog"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// completedModules builds a progress map with the first n modules done,
// each at the given score.
func completedModules(n, score int) map[string]domain.ModuleProgress {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	modules := make(map[string]domain.ModuleProgress, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%d", i)
		modules[id] = domain.ModuleProgress{
			ModuleID:     id,
			VideoWatched: true, GameCompleted: true, QuizCompleted: true,
			Score:       score,
			CompletedAt: &now,
		}
	}
	return modules
}

func TestComputeStatsPoints(t *testing.T) {
	modules := completedModules(3, 67)
	// Partially done modules contribute nothing.
	modules["4"] = domain.ModuleProgress{ModuleID: "4", VideoWatched: true, Score: 100}

	stats := ComputeStats(modules)

	if want := 3 * 167; stats.Points != want {
		t.Errorf("points = %d, want %d", stats.Points, want)
	}
	if stats.CompletedCount != 3 {
		t.Errorf("completed count = %d, want 3", stats.CompletedCount)
	}
}

func TestComputeStatsBadgesFollowCourseOrder(t *testing.T) {
	modules := completedModules(3, 50)

	stats := ComputeStats(modules)

	want := []string{ModuleBadge("1"), ModuleBadge("2"), ModuleBadge("3")}
	if len(stats.Badges) != len(want) {
		t.Fatalf("badges = %v, want %v", stats.Badges, want)
	}
	for i, badge := range want {
		if stats.Badges[i] != badge {
			t.Errorf("badges[%d] = %q, want %q", i, stats.Badges[i], badge)
		}
	}
}

func TestComputeStatsCertificateThreshold(t *testing.T) {
	nine := ComputeStats(completedModules(9, 100))
	if nine.CertificateEarned {
		t.Error("certificate earned at 9 of 10 modules")
	}
	for _, badge := range nine.Badges {
		if badge == MasterBadge {
			t.Error("master badge awarded at 9 of 10 modules")
		}
	}

	ten := ComputeStats(completedModules(catalog.CourseLength, 100))
	if !ten.CertificateEarned {
		t.Error("certificate not earned with the full course complete")
	}
	if got := ten.Badges[len(ten.Badges)-1]; got != MasterBadge {
		t.Errorf("last badge = %q, want %q", got, MasterBadge)
	}
}

func TestCanAccess(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		modules  map[string]domain.ModuleProgress
		moduleID string
		want     bool
	}{
		{
			name:     "first module always open",
			modules:  nil,
			moduleID: "1",
			want:     true,
		},
		{
			name:     "later module locked with no progress",
			modules:  nil,
			moduleID: "5",
			want:     false,
		},
		{
			name: "unlocked by completed predecessor",
			modules: map[string]domain.ModuleProgress{
				"4": {ModuleID: "4", VideoWatched: true, GameCompleted: true, QuizCompleted: true, CompletedAt: &now},
			},
			moduleID: "5",
			want:     true,
		},
		{
			name: "partial predecessor does not unlock",
			modules: map[string]domain.ModuleProgress{
				"4": {ModuleID: "4", VideoWatched: true, GameCompleted: true},
			},
			moduleID: "5",
			want:     false,
		},
		{
			name:     "unknown module stays locked",
			modules:  nil,
			moduleID: "42",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := domain.NewUserProgress()
			for id, m := range tt.modules {
				progress.Modules[id] = m
			}
			if got := CanAccess(progress, tt.moduleID); got != tt.want {
				t.Errorf("CanAccess(%q) = %v, want %v", tt.moduleID, got, tt.want)
			}
		})
	}
}
