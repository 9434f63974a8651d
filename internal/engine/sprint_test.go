package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/util"
	"github.com/golang/mock/gomock"
)

func TestParseSprintNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"7", 7, true},
		{"sprint-7", 7, true},
		{"Sprint 7", 7, true},
		{"sprint7", 7, true},
		{"sprint_7", 7, true},
		{"SPRINT-12", 12, true},
		{"  sprint-3  ", 3, true},
		{"", 0, false},
		{"sprint", 0, false},
		{"sprint-", 0, false},
		{"alpha", 0, false},
		{"sprint-x", 0, false},
		{"sprint-7x", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseSprintNumber(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseSprintNumber(%q) = %d, %v, want %d, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatSprintCode(t *testing.T) {
	if got := FormatSprintCode(7); got != "sprint-7" {
		t.Fatalf("FormatSprintCode(7) = %q", got)
	}
}

func TestNextSprintCode(t *testing.T) {
	mk := func(code, name string) models.Sprint {
		return models.Sprint{Code: code, Name: name}
	}
	cases := []struct {
		name    string
		sprints []models.Sprint
		want    string
	}{
		{"empty", nil, "sprint-1"},
		{"sequential", []models.Sprint{mk("sprint-3", ""), mk("sprint-7", "")}, "sprint-8"},
		{"number in name counts", []models.Sprint{mk("", "Sprint 9")}, "sprint-10"},
		{"code wins over name", []models.Sprint{mk("sprint-4", "sprint 11")}, "sprint-5"},
		{"gaps stay retired", []models.Sprint{mk("sprint-5", "")}, "sprint-6"},
	}
	for _, c := range cases {
		if got := nextSprintCode(c.sprints); got != c.want {
			t.Fatalf("%s: nextSprintCode() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestResolveActiveSprint(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2025, 3, 1, h, 0, 0, 0, time.UTC)
	}
	closed := models.Sprint{ID: "s-closed", StartDate: "2025-03-01", EndDate: util.Ptr("2025-03-07"), CreatedAt: at(1)}
	open := models.Sprint{ID: "s-open", StartDate: "2025-03-05", CreatedAt: at(2)}
	future := models.Sprint{ID: "s-future", StartDate: "2025-04-01", CreatedAt: at(3)}

	cases := []struct {
		name    string
		sprints []models.Sprint
		today   string
		want    string
	}{
		{"none", nil, "2025-03-10", ""},
		{"single match", []models.Sprint{closed}, "2025-03-03", "s-closed"},
		{"end date is inclusive", []models.Sprint{closed}, "2025-03-07", "s-closed"},
		{"expired falls back to newest created", []models.Sprint{closed}, "2025-03-09", "s-closed"},
		{"newest created wins among matches", []models.Sprint{closed, open}, "2025-03-06", "s-open"},
		{"future start is skipped", []models.Sprint{open, future}, "2025-03-06", "s-open"},
		{"only future falls back to newest created", []models.Sprint{closed, future}, "2025-03-20", "s-future"},
	}
	for _, c := range cases {
		got := ResolveActiveSprint(c.sprints, c.today)
		switch {
		case c.want == "" && got != nil:
			t.Fatalf("%s: ResolveActiveSprint() = %q, want nil", c.name, got.ID)
		case c.want != "" && (got == nil || got.ID != c.want):
			t.Fatalf("%s: ResolveActiveSprint() = %v, want %q", c.name, got, c.want)
		}
	}
}

func TestCreateSprintAllocatesNextCode(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	existing := []models.Sprint{{ID: "s1", Code: "sprint-4", Name: "Q1 wrap"}}
	store.EXPECT().Sprints(gomock.Any()).Return(existing, nil)
	var created models.Sprint
	store.EXPECT().CreateSprint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Sprint) error {
			created = s
			return nil
		})

	got, err := eng.CreateSprint(ctx, "", "2025-03-03", nil)
	if err != nil {
		t.Fatalf("CreateSprint() error: %v", err)
	}
	if got.Code != "sprint-5" {
		t.Fatalf("allocated code = %q, want sprint-5", got.Code)
	}
	if got.Name != "sprint-5" {
		t.Fatalf("blank name should fall back to code, got %q", got.Name)
	}
	if got.EndDate != nil {
		t.Fatalf("no duration should leave the sprint open-ended, got end %q", *got.EndDate)
	}
	if !strings.HasPrefix(got.ID, "sprint-") || got.ID == got.Code {
		t.Fatalf("unexpected sprint id %q", got.ID)
	}
	if created.ID != got.ID {
		t.Fatalf("stored sprint %q differs from returned %q", created.ID, got.ID)
	}
}

func TestCreateSprintDurationSetsInclusiveEnd(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	store.EXPECT().Sprints(gomock.Any()).Return(nil, nil).Times(2)
	store.EXPECT().CreateSprint(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	long, err := eng.CreateSprint(ctx, "Hardening", "2025-03-03", util.Ptr(14))
	if err != nil {
		t.Fatalf("CreateSprint(14) error: %v", err)
	}
	if long.EndDate == nil || *long.EndDate != "2025-03-16" {
		t.Fatalf("14-day window end = %v, want 2025-03-16", long.EndDate)
	}
	short, err := eng.CreateSprint(ctx, "Spike", "2025-03-03", util.Ptr(7))
	if err != nil {
		t.Fatalf("CreateSprint(7) error: %v", err)
	}
	if short.EndDate == nil || *short.EndDate != "2025-03-09" {
		t.Fatalf("7-day window end = %v, want 2025-03-09", short.EndDate)
	}
}

func TestCreateSprintRejectsMalformedStartDate(t *testing.T) {
	eng, _ := newTestEngine(t)
	for _, start := range []string{"", "03/10/2025", "2025-3-9", "2025-13-01", "soon"} {
		_, err := eng.CreateSprint(context.Background(), "x", start, nil)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("CreateSprint(start=%q) error = %v, want ValidationError", start, err)
		}
	}
}

func TestCreateSprintRejectsUnknownDuration(t *testing.T) {
	eng, _ := newTestEngine(t)
	for _, d := range []int{0, 1, 10, 30, -7} {
		_, err := eng.CreateSprint(context.Background(), "x", "2025-03-03", util.Ptr(d))
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("CreateSprint(duration=%d) error = %v, want ValidationError", d, err)
		}
	}
}

func TestRenameSprint(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	sprints := []models.Sprint{{ID: "s1", Code: "sprint-1", Name: "old"}}
	store.EXPECT().Sprints(gomock.Any()).Return(sprints, nil)
	store.EXPECT().UpdateSprint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Sprint) error {
			if s.ID != "s1" || s.Name != "new name" {
				t.Fatalf("UpdateSprint got %+v", s)
			}
			return nil
		})
	got, err := eng.RenameSprint(ctx, "s1", "  new name  ")
	if err != nil {
		t.Fatalf("RenameSprint() error: %v", err)
	}
	if got.Name != "new name" || got.Code != "sprint-1" {
		t.Fatalf("RenameSprint() = %+v", got)
	}
}

func TestRenameSprintUnknownID(t *testing.T) {
	eng, store := newTestEngine(t)
	store.EXPECT().Sprints(gomock.Any()).Return(nil, nil)
	_, err := eng.RenameSprint(context.Background(), "ghost", "name")
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "sprint" {
		t.Fatalf("RenameSprint() error = %v, want sprint NotFoundError", err)
	}
}

func TestRenameSprintBlankName(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.RenameSprint(context.Background(), "s1", "   ")
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("RenameSprint() error = %v, want ValidationError", err)
	}
}

func TestDeleteSprintRefusesActive(t *testing.T) {
	eng, store := newTestEngine(t)
	active := models.Sprint{ID: "s1", Code: "sprint-1", StartDate: "2025-03-01",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	store.EXPECT().Sprints(gomock.Any()).Return([]models.Sprint{active}, nil)

	err := eng.DeleteSprint(context.Background(), "s1")
	var ce ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("DeleteSprint(active) error = %v, want ConflictError", err)
	}
}

func TestDeleteSprintRemovesInactive(t *testing.T) {
	eng, store := newTestEngine(t)
	old := models.Sprint{ID: "s1", Code: "sprint-1", StartDate: "2025-01-06",
		EndDate: util.Ptr("2025-01-19"), CreatedAt: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)}
	current := models.Sprint{ID: "s2", Code: "sprint-2", StartDate: "2025-03-01",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	store.EXPECT().Sprints(gomock.Any()).Return([]models.Sprint{old, current}, nil)
	store.EXPECT().DeleteSprint(gomock.Any(), "s1").Return(nil)

	if err := eng.DeleteSprint(context.Background(), "s1"); err != nil {
		t.Fatalf("DeleteSprint() error: %v", err)
	}
}

func TestDeleteSprintUnknownID(t *testing.T) {
	eng, store := newTestEngine(t)
	store.EXPECT().Sprints(gomock.Any()).Return(nil, nil)
	err := eng.DeleteSprint(context.Background(), "ghost")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("DeleteSprint() error = %v, want NotFoundError", err)
	}
}

func TestActiveSprintEmptyDatabase(t *testing.T) {
	eng, store := newTestEngine(t)
	store.EXPECT().Sprints(gomock.Any()).Return(nil, nil)
	got, err := eng.ActiveSprint(context.Background())
	if err != nil {
		t.Fatalf("ActiveSprint() error: %v", err)
	}
	if got != nil {
		t.Fatalf("ActiveSprint() = %+v, want nil", got)
	}
}

func TestListSprintsOrder(t *testing.T) {
	eng, store := newTestEngine(t)
	a := models.Sprint{ID: "a", StartDate: "2025-01-06", CreatedAt: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)}
	b := models.Sprint{ID: "b", StartDate: "2025-03-01", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	c := models.Sprint{ID: "c", StartDate: "2025-03-01", CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)}
	store.EXPECT().Sprints(gomock.Any()).Return([]models.Sprint{a, b, c}, nil)

	got, err := eng.ListSprints(context.Background())
	if err != nil {
		t.Fatalf("ListSprints() error: %v", err)
	}
	var ids []string
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "b" || ids[2] != "a" {
		t.Fatalf("ListSprints() order = %v, want [c b a]", ids)
	}
}

func TestFindSprint(t *testing.T) {
	eng, store := newTestEngine(t)
	sprints := []models.Sprint{
		{ID: "sprint-1700000000000000001", Code: "sprint-7", Name: "Hardening"},
		{ID: "sprint-1700000000000000002", Code: "sprint-8", Name: "Polish"},
	}
	store.EXPECT().Sprints(gomock.Any()).Return(sprints, nil).AnyTimes()

	cases := []struct {
		ref  string
		want string
	}{
		{"sprint-1700000000000000002", "sprint-8"},
		{"sprint-7", "sprint-7"},
		{"SPRINT-7", "sprint-7"},
		{"8", "sprint-8"},
		{"sprint 7", "sprint-7"},
	}
	for _, c := range cases {
		got, err := eng.FindSprint(context.Background(), c.ref)
		if err != nil {
			t.Fatalf("FindSprint(%q) error: %v", c.ref, err)
		}
		if got.Code != c.want {
			t.Fatalf("FindSprint(%q) = %q, want %q", c.ref, got.Code, c.want)
		}
	}

	_, err := eng.FindSprint(context.Background(), "sprint-99")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("FindSprint(unknown) error = %v, want NotFoundError", err)
	}
}
