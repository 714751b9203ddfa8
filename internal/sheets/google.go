package sheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/edgard/checklistbot/internal/config"
)

const (
	// DefaultRequestTimeout bounds a single API round trip.
	DefaultRequestTimeout = 10 * time.Second

	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

	newSheetRows = 100
)

// Client implements Store on top of the Google Sheets v4 API.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	timeout       time.Duration
	logger        *slog.Logger
}

var _ Store = (*Client)(nil)

// New creates a Client authenticated with the service account key at
// cfg.CredentialsPath.
func New(ctx context.Context, cfg config.SheetsConfig, logger *slog.Logger) (*Client, error) {
	keyJSON, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(keyJSON, spreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	return NewWithHTTPClient(ctx, jwtConfig.Client(ctx), cfg.SpreadsheetID, cfg.RequestTimeout, logger)
}

// NewWithHTTPClient creates a Client that sends requests through httpClient.
// Extra options are passed to the API service, e.g. option.WithEndpoint in tests.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, spreadsheetID string, timeout time.Duration, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id cannot be empty")
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	svc, err := sheetsapi.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		timeout:       timeout,
		logger:        logger.With("component", "sheets"),
	}, nil
}

// ReadAll returns the formatted values of every row in the sheet.
func (c *Client) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetRange(sheet)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}

	c.logger.DebugContext(ctx, "Read sheet", "sheet", sheet, "rows", len(rows))
	return rows, nil
}

// Append inserts row after the sheet's data.
func (c *Client) Append(ctx context.Context, sheet string, row []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheetRange(sheet), valueRange(row)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet %q: %w", sheet, err)
	}

	c.logger.DebugContext(ctx, "Appended row", "sheet", sheet, "cells", len(row))
	return nil
}

// Ensure adds the sheet when no sheet with that title exists. The header is
// written whenever the sheet's first row is empty, including on a sheet
// created by an earlier call that failed halfway.
func (c *Client) Ensure(ctx context.Context, sheet string, header []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	if !slices.Contains(titles, sheet) {
		if err := c.addSheet(ctx, sheet, len(header)); err != nil {
			return err
		}
		c.logger.InfoContext(ctx, "Created sheet", "sheet", sheet)
	}

	if len(header) == 0 {
		return nil
	}

	first, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetRange(sheet)+"!1:1").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read header of sheet %q: %w", sheet, err)
	}
	if len(first.Values) > 0 {
		c.logger.DebugContext(ctx, "Sheet already has a header", "sheet", sheet)
		return nil
	}

	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, sheetRange(sheet)+"!A1", valueRange(header)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write header to sheet %q: %w", sheet, err)
	}

	c.logger.InfoContext(ctx, "Wrote sheet header", "sheet", sheet, "header", header)
	return nil
}

func (c *Client) addSheet(ctx context.Context, sheet string, columns int) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{
					Title: sheet,
					GridProperties: &sheetsapi.GridProperties{
						RowCount:    newSheetRows,
						ColumnCount: int64(max(columns, 1)),
					},
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
	}
	return nil
}

// sheetRange quotes a sheet title for A1 notation.
func sheetRange(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func valueRange(row []string) *sheetsapi.ValueRange {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	return &sheetsapi.ValueRange{Values: [][]interface{}{values}}
}
