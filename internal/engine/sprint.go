package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/util"
)

// ParseSprintNumber extracts the number from a sprint reference. It
// accepts "7", "sprint-7", "sprint 7" and "sprint7" in any case.
func ParseSprintNumber(value string) (int, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimPrefix(v, "sprint")
	v = strings.TrimLeft(v, "-_ ")
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// FormatSprintCode renders a sprint number as its canonical code.
func FormatSprintCode(n int) string {
	return config.SprintCodePrefix + strconv.Itoa(n)
}

// nextSprintCode allocates the next code number: one past the highest
// number found in any existing sprint's code or name. Deleted sprints
// keep their numbers retired because the maximum never goes down while
// they exist and new numbers only count upward.
func nextSprintCode(sprints []models.Sprint) string {
	max := 0
	for _, s := range sprints {
		n, ok := ParseSprintNumber(s.Code)
		if !ok {
			n, ok = ParseSprintNumber(s.Name)
		}
		if ok && n > max {
			max = n
		}
	}
	return FormatSprintCode(max + 1)
}

// ResolveActiveSprint picks the active sprint for a date: the most
// recently created sprint whose window contains the date, falling back
// to the most recently created sprint overall. Returns nil when no
// sprints exist. The result is derived on every call and never stored.
func ResolveActiveSprint(sprints []models.Sprint, today string) *models.Sprint {
	if len(sprints) == 0 {
		return nil
	}
	sorted := make([]models.Sprint, len(sprints))
	copy(sorted, sprints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	for i := range sorted {
		s := &sorted[i]
		if s.StartDate > today {
			continue
		}
		if s.EndDate == nil || *s.EndDate >= today {
			return s
		}
	}
	return &sorted[0]
}

// CreateSprint opens a new sprint starting on startDate. durationDays of
// 7 or 14 closes the window after that many days; nil leaves it
// open-ended. A blank name falls back to the allocated code.
func (e *Engine) CreateSprint(ctx context.Context, name, startDate string, durationDays *int) (models.Sprint, error) {
	startDate = strings.TrimSpace(startDate)
	if !validDate(startDate) {
		return models.Sprint{}, ValidationError{Msg: "start date must be a YYYY-MM-DD date"}
	}
	var endDate *string
	if durationDays != nil {
		d := *durationDays
		if d != config.SprintDurationShort && d != config.SprintDurationLong {
			return models.Sprint{}, ValidationError{Msg: fmt.Sprintf(
				"sprint duration must be %d or %d days", config.SprintDurationShort, config.SprintDurationLong)}
		}
		start, _ := time.Parse(config.DateFormat, startDate)
		endDate = util.Ptr(start.AddDate(0, 0, d-1).Format(config.DateFormat))
	}
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return models.Sprint{}, err
	}
	code := nextSprintCode(sprints)
	name = strings.TrimSpace(name)
	if name == "" {
		name = code
	}
	sprint := models.Sprint{
		ID:        e.newID("sprint"),
		Code:      code,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: e.now().UTC(),
	}
	if err := e.store.CreateSprint(ctx, sprint); err != nil {
		return models.Sprint{}, err
	}
	return sprint, nil
}

// ListSprints returns all sprints, newest window first.
func (e *Engine) ListSprints(ctx context.Context) ([]models.Sprint, error) {
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sprints, func(i, j int) bool {
		if sprints[i].StartDate != sprints[j].StartDate {
			return sprints[i].StartDate > sprints[j].StartDate
		}
		return sprints[i].CreatedAt.After(sprints[j].CreatedAt)
	})
	return sprints, nil
}

// RenameSprint changes a sprint's display name. The code is immutable.
func (e *Engine) RenameSprint(ctx context.Context, id, name string) (models.Sprint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Sprint{}, ValidationError{Msg: "sprint name is required"}
	}
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return models.Sprint{}, err
	}
	for _, s := range sprints {
		if s.ID == id {
			s.Name = name
			if err := e.store.UpdateSprint(ctx, s); err != nil {
				return models.Sprint{}, err
			}
			return s, nil
		}
	}
	return models.Sprint{}, NotFoundError{Resource: "sprint", ID: id}
}

// DeleteSprint removes a sprint and all of its entries. The active
// sprint is protected; its deletion is refused with a ConflictError.
func (e *Engine) DeleteSprint(ctx context.Context, id string) error {
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, s := range sprints {
		if s.ID == id {
			found = true
			break
		}
	}
	if !found {
		return NotFoundError{Resource: "sprint", ID: id}
	}
	if active := ResolveActiveSprint(sprints, e.today()); active != nil && active.ID == id {
		return ConflictError{Msg: "cannot delete the active sprint"}
	}
	return e.store.DeleteSprint(ctx, id)
}

// ActiveSprint resolves the active sprint for today, nil when no sprints
// exist.
func (e *Engine) ActiveSprint(ctx context.Context) (*models.Sprint, error) {
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveActiveSprint(sprints, e.today()), nil
}

// FindSprint resolves a sprint reference: an exact id, an exact code, or
// anything ParseSprintNumber understands ("7", "sprint 7").
func (e *Engine) FindSprint(ctx context.Context, ref string) (models.Sprint, error) {
	ref = strings.TrimSpace(ref)
	sprints, err := e.store.Sprints(ctx)
	if err != nil {
		return models.Sprint{}, err
	}
	for _, s := range sprints {
		if s.ID == ref || strings.EqualFold(s.Code, ref) {
			return s, nil
		}
	}
	if n, ok := ParseSprintNumber(ref); ok {
		for _, s := range sprints {
			if c, okc := ParseSprintNumber(s.Code); okc && c == n {
				return s, nil
			}
		}
	}
	return models.Sprint{}, NotFoundError{Resource: "sprint", ID: ref}
}
