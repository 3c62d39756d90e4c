package dialog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// SortField orders the connection list.
type SortField string

const (
	SortByName        SortField = "name"
	SortByEnvironment SortField = "environment"
	SortByLastUsed    SortField = "lastUsed"
)

// ConnectionQuery is the search, filter and sort state of a connection list.
// It only affects presentation.
type ConnectionQuery struct {
	Search      string             `json:"query,omitempty"`
	Environment entity.Environment `json:"environment,omitempty"`
	SortBy      SortField          `json:"sortBy,omitempty"`
	Descending  bool               `json:"descending,omitempty"`
}

// ConnectionView is a connection as rendered in a selection list.
type ConnectionView struct {
	ID            entity.ConnectionID `json:"id"`
	Name          string              `json:"name"`
	URL           string              `json:"url"`
	Environment   entity.Environment  `json:"environment"`
	AuthType      entity.AuthType     `json:"authType"`
	IsActive      bool                `json:"isActive"`
	Authenticated bool                `json:"authenticated"`
	LastUsedAt    *time.Time          `json:"lastUsedAt,omitempty"`
}

type populateResponse struct {
	Connections []ConnectionView `json:"connections"`
	Total       int              `json:"total"`
}

type connectionSource []*entity.Connection

func (s connectionSource) String(i int) string {
	return s[i].Name + " " + s[i].URL
}

func (s connectionSource) Len() int {
	return len(s)
}

// Apply filters and orders conns. A search without an explicit sort keeps
// the fuzzy match ranking.
func (q ConnectionQuery) Apply(conns []*entity.Connection) []*entity.Connection {
	filtered := make([]*entity.Connection, 0, len(conns))
	for _, c := range conns {
		if c == nil {
			continue
		}
		if q.Environment != "" && c.Environment != q.Environment {
			continue
		}
		filtered = append(filtered, c)
	}

	search := strings.TrimSpace(q.Search)
	if search != "" {
		matches := fuzzy.FindFrom(search, connectionSource(filtered))
		ranked := make([]*entity.Connection, 0, len(matches))
		for _, m := range matches {
			ranked = append(ranked, filtered[m.Index])
		}
		filtered = ranked
		if q.SortBy == "" {
			return filtered
		}
	}

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortByName
	}
	slices.SortStableFunc(filtered, func(a, b *entity.Connection) int {
		var c int
		switch sortBy {
		case SortByEnvironment:
			c = cmp.Compare(a.Environment.Rank(), b.Environment.Rank())
		case SortByLastUsed:
			// Most recent first unless descending is requested.
			c = b.LastUsedAt.Compare(a.LastUsedAt)
		default:
			c = 0
		}
		if c == 0 {
			c = cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
		if q.Descending {
			return -c
		}
		return c
	})
	return filtered
}

// viewsOf converts conns to list rows. highlight marks the active row.
func viewsOf(conns []*entity.Connection, highlight entity.ConnectionID, now time.Time) []ConnectionView {
	views := make([]ConnectionView, 0, len(conns))
	for _, c := range conns {
		v := ConnectionView{
			ID:            c.ID,
			Name:          c.Name,
			URL:           c.URL,
			Environment:   c.Environment,
			AuthType:      c.AuthType,
			IsActive:      highlight != "" && c.ID == highlight,
			Authenticated: c.IsAuthenticated(now),
		}
		if !c.LastUsedAt.IsZero() {
			t := c.LastUsedAt
			v.LastUsedAt = &t
		}
		views = append(views, v)
	}
	return views
}
