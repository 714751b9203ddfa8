// Package sheets provides access to the Google Sheets spreadsheet that holds
// the task list and the completion log.
package sheets

import "context"

// Store is the narrow view of a spreadsheet the bot depends on.
// Sheets are addressed by their tab title.
type Store interface {
	// ReadAll returns every non-empty row of the sheet, cells as strings.
	ReadAll(ctx context.Context, sheet string) ([][]string, error)

	// Append adds row after the last row of the sheet.
	Append(ctx context.Context, sheet string, row []string) error

	// Ensure creates the sheet if it does not exist and writes header when
	// the sheet's first row is empty. It fails when the spreadsheet cannot
	// be reached.
	Ensure(ctx context.Context, sheet string, header []string) error
}
