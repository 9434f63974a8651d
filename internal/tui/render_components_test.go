package tui

import (
	"strings"
	"testing"

	"github.com/devlogdesk/devlog/internal/config"
	"github.com/devlogdesk/devlog/internal/models"
	"github.com/devlogdesk/devlog/internal/testutil"
)

func TestTruncateRow(t *testing.T) {
	if got := truncateRow("short", 10); got != "short" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
	got := truncateRow("a very long row that does not fit", 10)
	if !strings.HasSuffix(got, config.TruncationSuffix) {
		t.Fatalf("expected truncation suffix, got %q", got)
	}
	if got := truncateRow("anything", 0); got != "" {
		t.Fatalf("expected empty result for zero width, got %q", got)
	}
}

func TestContentWidthDefaultsBeforeResize(t *testing.T) {
	var m MainModel
	if got := m.contentWidth(); got != config.TargetContentWidth {
		t.Fatalf("expected default width, got %d", got)
	}
	m.width = 200
	if got := m.contentWidth(); got != config.TargetContentWidth {
		t.Fatalf("expected width capped, got %d", got)
	}
	m.width = 30
	if got := m.contentWidth(); got != config.MinContentWidth {
		t.Fatalf("expected width floor, got %d", got)
	}
}

func TestFormRowMarksFocus(t *testing.T) {
	focused := formRow("Name", "value", true)
	if !strings.Contains(focused, "> Name:") {
		t.Fatalf("expected cursor prefix, got %q", focused)
	}
	blurred := formRow("Name", "value", false)
	if strings.Contains(blurred, ">") {
		t.Fatalf("expected no cursor prefix, got %q", blurred)
	}
}

func TestBuildDateCounts(t *testing.T) {
	entries := []models.DailyEntry{
		testutil.NewEntry().WithID("e1").WithDate("2025-03-03").Build(),
		testutil.NewEntry().WithID("e2").WithDate("2025-03-05").Build(),
		testutil.NewEntry().WithID("e3").WithDate("2025-03-05").Build(),
		testutil.NewEntry().WithID("e4").WithDate("2025-03-04").Build(),
	}
	got := buildDateCounts(entries)
	want := []dateCount{
		{date: "2025-03-05", count: 2},
		{date: "2025-03-04", count: 1},
		{date: "2025-03-03", count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestBuildDateCountsEmpty(t *testing.T) {
	if got := buildDateCounts(nil); len(got) != 0 {
		t.Fatalf("expected no rows, got %+v", got)
	}
}
