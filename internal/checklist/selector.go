// Package checklist picks today's tasks from the task sheet and records
// their outcome in the log sheet.
package checklist

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/edgard/checklistbot/internal/sheets"
)

const (
	// SundayLabel is the header of the Sunday column.
	SundayLabel = "Вс"

	// ActiveMarker marks a task as scheduled for a day, compared case-insensitively.
	ActiveMarker = "TRUE"
)

// TaskHeader is the header row written to a newly created task sheet.
var TaskHeader = []string{"Задача", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб", SundayLabel}

// weekdayLabels are the Monday..Saturday column headers.
var weekdayLabels = [...]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// DayLabel returns the column header for t's day of the week.
func DayLabel(t time.Time) string {
	idx := (int(t.Weekday()) + 6) % 7 // Monday = 0
	if idx == 6 {
		return SundayLabel
	}
	return weekdayLabels[idx]
}

// SelectActive returns the names of tasks whose cell in the label column is
// TRUE. rows[0] is the header. A missing column, an empty sheet or rows
// too short to reach the column yield no tasks. The result is never nil.
func SelectActive(rows [][]string, label string) []string {
	tasks := []string{}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return tasks
	}

	col := slices.Index(rows[0], label)
	if col < 0 {
		return tasks
	}

	for _, row := range rows[1:] {
		if len(row) <= col {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(row[col]), ActiveMarker) {
			tasks = append(tasks, strings.TrimSpace(row[0]))
		}
	}
	return tasks
}

// Selector reads the task sheet and selects the tasks for the current day.
type Selector struct {
	store  sheets.Store
	sheet  string
	logger *slog.Logger
	opts   options
}

// NewSelector creates a Selector over the named sheet.
func NewSelector(store sheets.Store, sheet string, logger *slog.Logger, opts ...Option) *Selector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Selector{
		store:  store,
		sheet:  sheet,
		logger: logger.With("component", "selector"),
		opts:   applyOptions(opts),
	}
}

// EnsureSheet opens the task sheet, creating it with TaskHeader when it is
// missing. Unlike Today it reports connection and permission failures.
func (s *Selector) EnsureSheet(ctx context.Context) error {
	if err := s.store.Ensure(ctx, s.sheet, TaskHeader); err != nil {
		s.logger.ErrorContext(ctx, "Failed to open task sheet", "sheet", s.sheet, "error", err)
		return err
	}
	return nil
}

// Today returns the tasks scheduled for the current day. It never fails:
// a read error or a panic is logged and reported as an empty list.
func (s *Selector) Today(ctx context.Context) (tasks []string) {
	label := DayLabel(s.opts.now().In(s.opts.loc))

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "Panic while selecting today's tasks", "sheet", s.sheet, "day", label, "panic", r)
			tasks = []string{}
		}
	}()

	rows, err := s.store.ReadAll(ctx, s.sheet)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to read task sheet", "sheet", s.sheet, "day", label, "error", err)
		return []string{}
	}

	tasks = SelectActive(rows, label)
	s.logger.InfoContext(ctx, "Selected today's tasks", "sheet", s.sheet, "day", label, "rows", len(rows), "tasks", len(tasks))
	return tasks
}
