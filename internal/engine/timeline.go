package engine

import (
	"context"
	"sort"

	"github.com/devlogdesk/devlog/internal/models"
)

// TimelineCategory groups one category's items within a day. Name is the
// category's display name, or the raw category id when the category no
// longer resolves.
type TimelineCategory struct {
	Name  string
	Items []models.DailyEntry
}

// TimelineDay groups one date's entries by category.
type TimelineDay struct {
	Date       string
	Categories []TimelineCategory
}

// BuildTimeline groups entries into days and categories: days newest
// first, category names ascending (case-sensitive), items in creation
// order. Entries sharing a resolved name share a group.
func BuildTimeline(entries []models.DailyEntry, categories []models.Category) []TimelineDay {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	byDay := make(map[string]map[string][]models.DailyEntry)
	for _, e := range entries {
		name, ok := names[e.CategoryID]
		if !ok {
			name = e.CategoryID
		}
		day, ok := byDay[e.Date]
		if !ok {
			day = make(map[string][]models.DailyEntry)
			byDay[e.Date] = day
		}
		day[name] = append(day[name], e)
	}
	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	days := make([]TimelineDay, 0, len(dates))
	for _, date := range dates {
		groups := byDay[date]
		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)
		day := TimelineDay{Date: date}
		for _, name := range names {
			items := groups[name]
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].CreatedAt.Before(items[j].CreatedAt)
			})
			day.Categories = append(day.Categories, TimelineCategory{Name: name, Items: items})
		}
		days = append(days, day)
	}
	return days
}

// Timeline builds the grouped view of a sprint's entries. sprintRef may
// be an id or anything FindSprint resolves.
func (e *Engine) Timeline(ctx context.Context, sprintRef string) ([]TimelineDay, error) {
	sprint, err := e.FindSprint(ctx, sprintRef)
	if err != nil {
		return nil, err
	}
	entries, err := e.store.EntriesForSprint(ctx, sprint.ID)
	if err != nil {
		return nil, err
	}
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTimeline(entries, categories), nil
}
