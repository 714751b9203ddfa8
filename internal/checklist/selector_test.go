package checklist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/edgard/checklistbot/internal/checklist"
	"github.com/edgard/checklistbot/internal/testutil"
)

var header = []string{"Задача", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// wednesday is 2026-10-14 09:00 UTC.
var wednesday = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) checklist.Option {
	return checklist.WithClock(func() time.Time { return t })
}

func TestDayLabel(t *testing.T) {
	t.Parallel()

	want := []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
	monday := time.Date(2026, time.October, 12, 12, 0, 0, 0, time.UTC)
	for i, label := range want {
		day := monday.AddDate(0, 0, i)
		if got := checklist.DayLabel(day); got != label {
			t.Errorf("DayLabel(%s) = %q, want %q", day.Weekday(), got, label)
		}
	}
}

func TestSelectActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     [][]string
		label    string
		expected []string
	}{
		{
			name: "Wednesday column",
			rows: [][]string{
				header,
				{"A", "TRUE", "", "TRUE", "", "", "", ""},
				{"B", "", "", "FALSE", "", "", "", ""},
			},
			label:    "Ср",
			expected: []string{"A"},
		},
		{
			name: "Marker is trimmed and case-insensitive",
			rows: [][]string{
				header,
				{" Зарядка ", "", "", " true ", "", "", "", ""},
				{"Чтение", "", "", "True", "", "", "", ""},
				{"Прогулка", "", "", "yes", "", "", "", ""},
			},
			label:    "Ср",
			expected: []string{"Зарядка", "Чтение"},
		},
		{
			name: "Sunday column",
			rows: [][]string{
				header,
				{"Уборка", "", "", "", "", "", "", "TRUE"},
				{"Отчёт", "TRUE", "", "", "", "", "", "FALSE"},
			},
			label:    "Вс",
			expected: []string{"Уборка"},
		},
		{
			name: "Short rows are skipped",
			rows: [][]string{
				header,
				{"Short", "TRUE"},
				{"Long", "", "", "TRUE"},
			},
			label:    "Ср",
			expected: []string{"Long"},
		},
		{
			name:     "Empty sheet",
			rows:     nil,
			label:    "Ср",
			expected: []string{},
		},
		{
			name:     "Header only",
			rows:     [][]string{header},
			label:    "Ср",
			expected: []string{},
		},
		{
			name:     "Empty header",
			rows:     [][]string{{}, {"A", "TRUE"}},
			label:    "Пн",
			expected: []string{},
		},
		{
			name: "Label missing from header",
			rows: [][]string{
				{"Задача", "Пн", "Вт"},
				{"A", "TRUE", "TRUE"},
			},
			label:    "Ср",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := checklist.SelectActive(tt.rows, tt.label)
			if got == nil {
				t.Fatal("SelectActive() returned nil, want empty slice")
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("SelectActive() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelector_Today(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeStore()
	store.SetRows("Tasks", [][]string{
		header,
		{"A", "TRUE", "", "TRUE", "", "", "", ""},
		{"B", "", "", "FALSE", "", "", "", ""},
		{"C", "", "", "TRUE", "", "", "", ""},
	})

	selector := checklist.NewSelector(store, "Tasks", nil, fixedClock(wednesday), checklist.WithLocation(time.UTC))
	if diff := cmp.Diff([]string{"A", "C"}, selector.Today(context.Background())); diff != "" {
		t.Errorf("Today() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelector_TodayUsesLocation(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeStore()
	store.SetRows("Tasks", [][]string{
		header,
		{"Wed", "", "", "TRUE", "", "", "", ""},
		{"Thu", "", "", "", "TRUE", "", "", ""},
	})

	// 22:30 UTC on Wednesday is already Thursday three hours east.
	late := time.Date(2026, time.October, 14, 22, 30, 0, 0, time.UTC)
	east := time.FixedZone("UTC+3", 3*60*60)

	selector := checklist.NewSelector(store, "Tasks", nil, fixedClock(late), checklist.WithLocation(east))
	if diff := cmp.Diff([]string{"Thu"}, selector.Today(context.Background())); diff != "" {
		t.Errorf("Today() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelector_TodayFailsOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		store func() *testutil.FakeStore
	}{
		{
			name: "Read error",
			store: func() *testutil.FakeStore {
				s := testutil.NewFakeStore()
				s.ReadErr = testutil.ErrUnavailable
				return s
			},
		},
		{
			name:  "Missing sheet",
			store: testutil.NewFakeStore,
		},
		{
			name: "Panicking backend",
			store: func() *testutil.FakeStore {
				s := testutil.NewFakeStore()
				s.PanicOnRead = true
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			selector := checklist.NewSelector(tt.store(), "Tasks", nil, fixedClock(wednesday))
			got := selector.Today(context.Background())
			if got == nil || len(got) != 0 {
				t.Errorf("Today() = %#v, want empty slice", got)
			}
		})
	}
}

func TestSelector_EnsureSheet(t *testing.T) {
	t.Parallel()

	t.Run("Creates missing sheet", func(t *testing.T) {
		t.Parallel()
		store := testutil.NewFakeStore()
		if err := checklist.NewSelector(store, "Tasks", nil).EnsureSheet(context.Background()); err != nil {
			t.Fatalf("EnsureSheet() error = %v", err)
		}
		if diff := cmp.Diff([][]string{checklist.TaskHeader}, store.Rows("Tasks")); diff != "" {
			t.Errorf("task sheet mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Reports store failure", func(t *testing.T) {
		t.Parallel()
		store := testutil.NewFakeStore()
		store.EnsureErr = testutil.ErrUnavailable
		err := checklist.NewSelector(store, "Tasks", nil).EnsureSheet(context.Background())
		if !errors.Is(err, testutil.ErrUnavailable) {
			t.Errorf("EnsureSheet() error = %v, want %v", err, testutil.ErrUnavailable)
		}
	})
}
