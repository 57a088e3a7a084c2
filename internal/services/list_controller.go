package services

import (
	"context"
	"strings"
	"sync"

	"github.com/veranomx/eventos/internal/connect"
	"github.com/veranomx/eventos/internal/models"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Page sizes are fixed per view mode; the grid shows a 3x3 layout.
const (
	GridPageSize = 9
	ListPageSize = 10
)

func PageSizeFor(mode ViewMode) int {
	if mode == ViewList {
		return ListPageSize
	}
	return GridPageSize
}

// FilterEvents derives the filtered set: case-insensitive substring search
// over name, venue and description, then type, then status. A filter equal
// to models.FilterAll (or empty) matches everything.
func FilterEvents(all []models.Event, search, typeFilter, statusFilter string) []models.Event {
	result := all

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		matched := make([]models.Event, 0, len(result))
		for _, ev := range result {
			if strings.Contains(strings.ToLower(ev.Name), term) ||
				strings.Contains(strings.ToLower(ev.Venue), term) ||
				strings.Contains(strings.ToLower(ev.Description), term) {
				matched = append(matched, ev)
			}
		}
		result = matched
	}

	if typeFilter != "" && typeFilter != models.FilterAll {
		matched := make([]models.Event, 0, len(result))
		for _, ev := range result {
			if string(ev.EventType) == typeFilter {
				matched = append(matched, ev)
			}
		}
		result = matched
	}

	if statusFilter != "" && statusFilter != models.FilterAll {
		matched := make([]models.Event, 0, len(result))
		for _, ev := range result {
			if string(ev.Status) == statusFilter {
				matched = append(matched, ev)
			}
		}
		result = matched
	}

	return result
}

// TotalPages is ceil(count/pageSize); zero pages is a valid state for an
// empty filtered set.
func TotalPages(count, pageSize int) int {
	if count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the contiguous page window, clamped to the available
// length.
func Paginate(filtered []models.Event, page, pageSize int) []models.Event {
	start := (page - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		return []models.Event{}
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// StatusCounts are the per-status totals over the filtered set shown next
// to the list.
type StatusCounts struct {
	Active   int `json:"activos"`
	Draft    int `json:"borradores"`
	Finished int `json:"finalizados"`
}

// ListSnapshot is the derived view state handed to the presentation layer.
type ListSnapshot struct {
	Events        []models.Event `json:"eventos"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"total_pages"`
	PageSize      int            `json:"page_size"`
	FilteredCount int            `json:"filtered_count"`
	TotalCount    int            `json:"total_count"`
	Counts        StatusCounts   `json:"counts"`
	Search        string         `json:"search"`
	TypeFilter    string         `json:"tipo"`
	StatusFilter  string         `json:"estado"`
	ViewMode      ViewMode       `json:"view"`
}

// EventList holds the working set of events and the filter/paging state of
// the single logical user session. The full set is replaced wholesale on
// every reload, never patched in place; handlers run on multiple
// goroutines so the state is mutex-guarded and reloads are serialized
// (last completed reload wins).
type EventList struct {
	mu  sync.Mutex
	api *connect.EventsAPI

	all    []models.Event
	loaded bool

	search       string
	typeFilter   string
	statusFilter string
	viewMode     ViewMode
	page         int
}

func NewEventList(api *connect.EventsAPI) *EventList {
	return &EventList{
		api:          api,
		typeFilter:   models.FilterAll,
		statusFilter: models.FilterAll,
		viewMode:     ViewGrid,
		page:         1,
	}
}

// Load fetches the full event set from the remote service. With force
// false it only fetches when nothing has been loaded yet.
func (l *EventList) Load(ctx context.Context, force bool) error {
	l.mu.Lock()
	if l.loaded && !force {
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()

	events, err := l.api.List(ctx)
	if err != nil {
		// Keep the last successfully loaded set.
		return err
	}

	l.mu.Lock()
	l.all = events
	l.loaded = true
	l.mu.Unlock()
	return nil
}

func (l *EventList) SetSearch(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if term == l.search {
		return
	}
	l.search = term
	l.page = 1
}

func (l *EventList) SetTypeFilter(filter string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if filter == l.typeFilter {
		return
	}
	l.typeFilter = filter
	l.page = 1
}

func (l *EventList) SetStatusFilter(filter string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if filter == l.statusFilter {
		return
	}
	l.statusFilter = filter
	l.page = 1
}

func (l *EventList) SetViewMode(mode ViewMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if mode != ViewGrid && mode != ViewList {
		return
	}
	if mode == l.viewMode {
		return
	}
	l.viewMode = mode
	l.page = 1
}

// GoToPage moves to page n; out-of-range targets are ignored.
func (l *EventList) GoToPage(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	filtered := FilterEvents(l.all, l.search, l.typeFilter, l.statusFilter)
	total := TotalPages(len(filtered), PageSizeFor(l.viewMode))
	if n < 1 || n > total {
		return
	}
	l.page = n
}

// Snapshot derives the visible page and its surrounding counters from the
// current state.
func (l *EventList) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	pageSize := PageSizeFor(l.viewMode)
	filtered := FilterEvents(l.all, l.search, l.typeFilter, l.statusFilter)
	totalPages := TotalPages(len(filtered), pageSize)

	page := l.page
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	var counts StatusCounts
	for _, ev := range filtered {
		switch ev.Status {
		case models.StatusActive:
			counts.Active++
		case models.StatusDraft:
			counts.Draft++
		case models.StatusFinished:
			counts.Finished++
		}
	}

	return ListSnapshot{
		Events:        Paginate(filtered, page, pageSize),
		Page:          page,
		TotalPages:    totalPages,
		PageSize:      pageSize,
		FilteredCount: len(filtered),
		TotalCount:    len(l.all),
		Counts:        counts,
		Search:        l.search,
		TypeFilter:    l.typeFilter,
		StatusFilter:  l.statusFilter,
		ViewMode:      l.viewMode,
	}
}
