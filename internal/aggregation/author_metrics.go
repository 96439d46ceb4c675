package aggregation

import "github.com/masmgr/git-history-mcp/internal/git"

// AuthorMetrics holds commit activity of one author identity.
// Identities are the exact recorded author name; spellings are not merged.
type AuthorMetrics struct {
	Name        string
	CommitCount int
	FirstDate   string
	LastDate    string
	activeDays  map[string]struct{}
}

// ActiveDays returns the number of distinct days with at least one commit.
func (a *AuthorMetrics) ActiveDays() int {
	return len(a.activeDays)
}

func (a *AuthorMetrics) add(date string) {
	a.CommitCount++
	if date == "" {
		return
	}
	a.activeDays[date] = struct{}{}
	if a.FirstDate == "" || date < a.FirstDate {
		a.FirstDate = date
	}
	if date > a.LastDate {
		a.LastDate = date
	}
}

// AggregateAuthors groups records by author name.
func AggregateAuthors(records []git.CommitRecord) map[string]*AuthorMetrics {
	authors := make(map[string]*AuthorMetrics)
	for _, rec := range records {
		m, ok := authors[rec.Author]
		if !ok {
			m = &AuthorMetrics{Name: rec.Author, activeDays: make(map[string]struct{})}
			authors[rec.Author] = m
		}
		m.add(rec.Date)
	}
	return authors
}

// DateRange returns the oldest and newest commit dates. Dates are YYYY-MM-DD
// so lexical order is chronological.
func DateRange(records []git.CommitRecord) (first, last string, ok bool) {
	for _, rec := range records {
		if rec.Date == "" {
			continue
		}
		if !ok || rec.Date < first {
			first = rec.Date
		}
		if !ok || rec.Date > last {
			last = rec.Date
		}
		ok = true
	}
	return first, last, ok
}
