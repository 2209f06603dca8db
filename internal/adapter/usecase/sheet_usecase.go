package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"creative-pulse/internal/config/configs"
	"creative-pulse/internal/core/port"
)

// SheetUseCase implements port.SheetUseCase over a port.SheetReader.
type SheetUseCase struct {
	reader port.SheetReader
	cfg    configs.Sheets
	log    *slog.Logger
}

// NewSheetUseCase returns a use case reading the spreadsheet named in cfg.
func NewSheetUseCase(reader port.SheetReader, cfg configs.Sheets, log *slog.Logger) *SheetUseCase {
	return &SheetUseCase{reader: reader, cfg: cfg, log: log}
}

// Rows reads readRange, or the configured range when it is empty. The
// first row names the columns; every later row becomes a map from column
// name to cell, with missing cells as "". Every failure wraps
// port.ErrUpstream.
func (u *SheetUseCase) Rows(ctx context.Context, readRange string) ([]map[string]string, error) {
	if !u.cfg.Configured() {
		return nil, fmt.Errorf("%w: google sheet id is not configured", port.ErrUpstream)
	}
	readRange = strings.TrimSpace(readRange)
	if readRange == "" {
		readRange = u.cfg.Range
	}

	values, err := u.reader.ReadRange(ctx, u.cfg.SpreadsheetID, readRange)
	if err != nil {
		u.log.ErrorContext(ctx, "sheet read failed", slog.String("range", readRange), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", port.ErrUpstream, err)
	}
	return keyRows(values), nil
}

func keyRows(values [][]string) []map[string]string {
	if len(values) == 0 {
		return []map[string]string{}
	}
	headers := values[0]
	rows := make([]map[string]string, 0, len(values)-1)
	for _, v := range values[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(v) {
				row[h] = v[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
