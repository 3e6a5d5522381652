// Package dashboard assembles the role-gated dashboard overview: stat
// cards, quick actions, navigation and the recent-activity feed.
package dashboard

import (
	"fmt"
	"time"

	"connectpro.org/internal/access"
	"connectpro.org/internal/auth"
)

const recentActivityLimit = 10

// Trend is the percentage movement shown next to a stat value.
type Trend struct {
	Value      int  `json:"value"`
	IsPositive bool `json:"is_positive"`
}

// StatCard is a single dashboard figure.
type StatCard struct {
	Title       string `json:"title"`
	Value       int    `json:"value"`
	Description string `json:"description"`
	Trend       *Trend `json:"trend,omitempty"`
}

// Stats holds the raw aggregate figures behind the stat cards.
type Stats struct {
	TotalUsers  int
	ActiveUsers int
	TotalTeams  int
	ActiveTeams int
}

// DemoStats returns the reference demo figures.
func DemoStats() Stats {
	return Stats{TotalUsers: 150, ActiveUsers: 142, TotalTeams: 23, ActiveTeams: 21}
}

// Overview is everything a dashboard render needs for one viewer.
type Overview struct {
	Welcome    string        `json:"welcome"`
	TeamLine   string        `json:"team_line"`
	Stats      []StatCard    `json:"stats"`
	Actions    []access.Item `json:"actions"`
	Navigation []access.Item `json:"navigation"`
	Activity   []EntryView   `json:"activity"`
}

// Service builds overviews from static stats and the live activity feed.
type Service struct {
	stats Stats
	feed  *Feed
	now   func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the time source.
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService creates a dashboard service.
func NewService(stats Stats, feed *Feed, opts ...ServiceOption) *Service {
	s := &Service{stats: stats, feed: feed, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overview assembles the dashboard for the given viewer. Every visibility
// decision goes through access.FilterVisible/IsVisible.
func (s *Service) Overview(user auth.User, team *auth.Team) Overview {
	teamLine := "No team assigned"
	if team != nil {
		teamLine = fmt.Sprintf("You're part of %s", team.Name)
	}
	return Overview{
		Welcome:    fmt.Sprintf("Welcome back, %s!", user.Name),
		TeamLine:   teamLine,
		Stats:      s.visibleStats(user.Role),
		Actions:    access.FilterVisible(access.QuickActions(), user.Role),
		Navigation: access.FilterVisible(access.Navigation(), user.Role),
		Activity:   s.recentActivity(),
	}
}

// visibleStats gates stat-card groups by role. The team aggregate group is
// visible to ADMIN and MANAGER only.
func (s *Service) visibleStats(role auth.Role) []StatCard {
	groups := []struct {
		gate  access.Item
		cards []StatCard
	}{
		{
			gate: access.Item{Name: "Users", AllowedRoles: access.Everyone()},
			cards: []StatCard{
				{Title: "Total Users", Value: s.stats.TotalUsers, Description: "Registered users", Trend: &Trend{Value: 12, IsPositive: true}},
				{Title: "Active Users", Value: s.stats.ActiveUsers, Description: "Users active this week", Trend: &Trend{Value: 8, IsPositive: true}},
			},
		},
		{
			gate: access.Item{Name: "Teams", AllowedRoles: access.ManagerAndUp()},
			cards: []StatCard{
				{Title: "Teams", Value: s.stats.TotalTeams, Description: "Active teams", Trend: &Trend{Value: 3, IsPositive: true}},
				{Title: "Team Activity", Value: s.stats.ActiveTeams, Description: "Teams with recent activity", Trend: &Trend{Value: 15, IsPositive: true}},
			},
		},
	}

	var cards []StatCard
	for _, g := range groups {
		if access.IsVisible(g.gate, role) {
			cards = append(cards, g.cards...)
		}
	}
	return cards
}

func (s *Service) recentActivity() []EntryView {
	if s.feed == nil {
		return nil
	}
	now := s.now().UTC()
	entries := s.feed.Recent(recentActivityLimit)
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, EntryView{
			ID:          e.ID,
			Description: e.Description,
			TimeAgo:     FormatTimeAgo(e.CreatedAt, now),
		})
	}
	return views
}
