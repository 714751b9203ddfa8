package checklist

import (
	"context"
	"io"
	"log/slog"

	"github.com/edgard/checklistbot/internal/sheets"
)

// TimestampLayout is the format of the Дата column.
const TimestampLayout = "2006-01-02 15:04:05"

// LogHeader is the header row of the log sheet.
var LogHeader = []string{"Задача", "Дата", "Результат"}

// Recorder appends completion records to the log sheet.
type Recorder struct {
	store  sheets.Store
	sheet  string
	logger *slog.Logger
	opts   options
}

// NewRecorder creates a Recorder writing to the named sheet.
func NewRecorder(store sheets.Store, sheet string, logger *slog.Logger, opts ...Option) *Recorder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Recorder{
		store:  store,
		sheet:  sheet,
		logger: logger.With("component", "recorder"),
		opts:   applyOptions(opts),
	}
}

// EnsureSheet creates the log sheet with LogHeader if it is missing.
func (r *Recorder) EnsureSheet(ctx context.Context) error {
	return r.store.Ensure(ctx, r.sheet, LogHeader)
}

// Record appends (task, now, symbol) and reports whether the write succeeded.
// Every call appends, duplicates included.
func (r *Recorder) Record(ctx context.Context, task, symbol string) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.ErrorContext(ctx, "Panic while recording result", "sheet", r.sheet, "task", task, "panic", p)
			ok = false
		}
	}()

	stamp := r.opts.now().In(r.opts.loc).Format(TimestampLayout)
	if err := r.store.Append(ctx, r.sheet, []string{task, stamp, symbol}); err != nil {
		r.logger.ErrorContext(ctx, "Failed to record result", "sheet", r.sheet, "task", task, "result", symbol, "error", err)
		return false
	}

	r.logger.InfoContext(ctx, "Recorded result", "sheet", r.sheet, "task", task, "result", symbol, "timestamp", stamp)
	return true
}
