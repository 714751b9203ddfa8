// Package testutil provides in-memory fakes for the spreadsheet and the
// chat transport.
package testutil

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/edgard/checklistbot/internal/sheets"
)

// ErrUnavailable is a convenient error to inject.
var ErrUnavailable = errors.New("store unavailable")

// FakeStore is an in-memory implementation of sheets.Store.
type FakeStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string

	// Error injection for testing
	ReadErr   error
	AppendErr error
	EnsureErr error

	// PanicOnRead and PanicOnAppend simulate a bug in a backend.
	PanicOnRead   bool
	PanicOnAppend bool
}

var _ sheets.Store = (*FakeStore)(nil)

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{sheets: make(map[string][][]string)}
}

// SetRows replaces the content of a sheet.
func (f *FakeStore) SetRows(sheet string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sheets[sheet] = cloneRows(rows)
}

// Rows returns a copy of a sheet's content.
func (f *FakeStore) Rows(sheet string) [][]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return cloneRows(f.sheets[sheet])
}

func (f *FakeStore) ReadAll(_ context.Context, sheet string) ([][]string, error) {
	if f.PanicOnRead {
		panic("fake store: read panic")
	}
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	rows, ok := f.sheets[sheet]
	if !ok {
		return nil, errors.New("sheet not found: " + sheet)
	}
	return cloneRows(rows), nil
}

func (f *FakeStore) Append(_ context.Context, sheet string, row []string) error {
	if f.PanicOnAppend {
		panic("fake store: append panic")
	}
	if f.AppendErr != nil {
		return f.AppendErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sheets[sheet]; !ok {
		return errors.New("sheet not found: " + sheet)
	}
	f.sheets[sheet] = append(f.sheets[sheet], slices.Clone(row))
	return nil
}

func (f *FakeStore) Ensure(_ context.Context, sheet string, header []string) error {
	if f.EnsureErr != nil {
		return f.EnsureErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	rows, ok := f.sheets[sheet]
	switch {
	case len(rows) > 0:
	case len(header) > 0:
		f.sheets[sheet] = [][]string{slices.Clone(header)}
	case !ok:
		f.sheets[sheet] = [][]string{}
	}
	return nil
}

func cloneRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}
