package dashboard

import (
	"fmt"
	"sync"
	"time"

	"connectpro.org/internal/ids"
)

// Entry is one activity feed record.
type Entry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntryView is an Entry rendered for the dashboard, with a relative
// timestamp.
type EntryView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	TimeAgo     string `json:"time_ago"`
}

// Feed keeps recent activity in memory, newest first, trimmed to a fixed
// capacity.
type Feed struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
	now     func() time.Time
}

// NewFeed creates an empty feed holding up to limit entries.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 50
	}
	return &Feed{limit: limit, now: time.Now}
}

// Record prepends a new entry and returns it.
func (f *Feed) Record(description string) Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry := Entry{
		ID:          ids.New(),
		Description: description,
		CreatedAt:   f.now().UTC(),
	}
	f.entries = append([]Entry{entry}, f.entries...)
	if len(f.entries) > f.limit {
		f.entries = f.entries[:f.limit]
	}
	return entry
}

// Recent returns up to n entries, newest first.
func (f *Feed) Recent(n int) []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if n <= 0 || n > len(f.entries) {
		n = len(f.entries)
	}
	out := make([]Entry, n)
	copy(out, f.entries[:n])
	return out
}

// SeedDemo loads the reference demo entries with their original relative
// ages.
func (f *Feed) SeedDemo() {
	now := f.now().UTC()
	demo := []struct {
		description string
		age         time.Duration
	}{
		{"John Doe logged in", 5 * time.Minute},
		{"Alice Johnson joined Development Team", 15 * time.Minute},
		{`New team "Marketing" was created`, 30 * time.Minute},
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range demo {
		ts := now.Add(-d.age)
		f.entries = append(f.entries, Entry{
			ID:          ids.NewAt(ts),
			Description: d.description,
			CreatedAt:   ts,
		})
	}
}

// FormatTimeAgo renders a relative timestamp the dashboard way.
func FormatTimeAgo(ts, now time.Time) string {
	minutes := int(now.Sub(ts) / time.Minute)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return fmt.Sprintf("%dd ago", minutes/1440)
	}
}
