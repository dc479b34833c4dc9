// Package activity decides which stored missions are currently relevant and
// in which order they are shown.
package activity

import (
	"math"
	"sort"
	"strings"
	"time"

	"artemisops/internal/domain"
)

// Policy holds the thresholds and status sets of the active-window rules.
type Policy struct {
	// CompletedWindowDays keeps a finished mission visible for this many whole days after launch.
	CompletedWindowDays int
	// InProgressWindowDays keeps a launched, not yet closed-out mission visible.
	InProgressWindowDays int
	CompletedStatuses    []string
	ActiveStatuses       []string
}

// DefaultPolicy returns the 7 and 200 day windows with the stock status sets.
func DefaultPolicy() Policy {
	return Policy{
		CompletedWindowDays:  7,
		InProgressWindowDays: 200,
		CompletedStatuses:    []string{"success", "failure", "partial failure"},
		ActiveStatuses:       []string{"go", "tbd", "tbc", "hold", "in flight"},
	}
}

// Classifier applies a Policy to stored missions.
type Classifier struct {
	policy    Policy
	completed map[string]struct{}
	active    map[string]struct{}
}

// NewClassifier normalises the policy's status sets for lookup.
func NewClassifier(policy Policy) *Classifier {
	return &Classifier{
		policy:    policy,
		completed: statusSet(policy.CompletedStatuses),
		active:    statusSet(policy.ActiveStatuses),
	}
}

func statusSet(statuses []string) map[string]struct{} {
	set := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return set
}

// IsActive applies the active-window rules to one mission at the given instant.
func (c *Classifier) IsActive(m domain.Mission, now time.Time) bool {
	status := strings.ToLower(strings.TrimSpace(m.Status))
	launch, hasLaunch := m.Launch()

	if _, done := c.completed[status]; done {
		return hasLaunch && elapsedDays(now, launch) <= c.policy.CompletedWindowDays
	}

	if hasLaunch {
		if now.Before(launch) {
			return true
		}
		if elapsedDays(now, launch) <= c.policy.InProgressWindowDays {
			return true
		}
	}

	if status == "" {
		return true
	}
	_, ok := c.active[status]
	return ok
}

// ClassifyAndOrder returns the active subset of missions: upcoming launches
// soonest first, then launched missions most recent first, then missions
// without a usable launch timestamp in their original order. The input slice
// is not modified.
func (c *Classifier) ClassifyAndOrder(missions []domain.Mission, now time.Time) []domain.Mission {
	active := make([]domain.Mission, 0, len(missions))
	for _, m := range missions {
		if c.IsActive(m, now) {
			active = append(active, m)
		}
	}
	return Order(active, now)
}

// Order arranges missions in presentation order without filtering any out.
func Order(missions []domain.Mission, now time.Time) []domain.Mission {
	var upcoming, launched, undated []dated
	for _, m := range missions {
		launch, ok := m.Launch()
		switch {
		case !ok:
			undated = append(undated, dated{mission: m})
		case now.Before(launch):
			upcoming = append(upcoming, dated{mission: m, at: launch})
		default:
			launched = append(launched, dated{mission: m, at: launch})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].at.Before(upcoming[j].at) })
	sort.SliceStable(launched, func(i, j int) bool { return launched[i].at.After(launched[j].at) })

	out := make([]domain.Mission, 0, len(missions))
	for _, group := range [][]dated{upcoming, launched, undated} {
		for _, d := range group {
			out = append(out, d.mission)
		}
	}
	return out
}

type dated struct {
	mission domain.Mission
	at      time.Time
}

// elapsedDays is the number of whole days from t to now, rounded down.
func elapsedDays(now, t time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}
