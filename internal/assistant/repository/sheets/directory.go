package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bank-policy-assistant/internal/assistant/repository"
	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/pkg/gsheets"
	pkgLog "bank-policy-assistant/pkg/log"
)

// Expected header names in the first row of the sheet.
const (
	columnUsername        = "username"
	columnGrade           = "grade"
	columnRemainingLeaves = "remaining_leaves"
)

type implDirectory struct {
	client        *gsheets.Client
	spreadsheetID string
	sheetName     string
	l             pkgLog.Logger
}

// New creates a Google Sheets backed user directory.
func New(client *gsheets.Client, spreadsheetID, sheetName string, l pkgLog.Logger) repository.UserDirectory {
	return &implDirectory{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		l:             l,
	}
}

// GetUser looks the username up in the sheet. Returns nil when the user
// is not present. A malformed balance cell yields a nil RemainingLeaves
// rather than an error, so the assistant can still answer.
func (d *implDirectory) GetUser(ctx context.Context, username string) (*model.UserContext, error) {
	rows, cols, err := d.load(ctx)
	if err != nil {
		return nil, err
	}

	rowIdx := findUserRow(rows, cols.username, username)
	if rowIdx < 0 {
		return nil, nil
	}

	user := &model.UserContext{
		Username: cellString(rows[rowIdx], cols.username),
		Grade:    cellString(rows[rowIdx], cols.grade),
	}

	if balance, ok := parseBalance(cellString(rows[rowIdx], cols.remaining)); ok {
		user.RemainingLeaves = &balance
	} else {
		d.l.Warnf(ctx, "sheets directory: unparseable balance for user %s", username)
	}

	return user, nil
}

// ApplyForLeave decrements the user's balance by days. Returns false
// when the user is missing, the balance is unparseable, or the balance
// is insufficient.
func (d *implDirectory) ApplyForLeave(ctx context.Context, username string, days float64) (bool, error) {
	rows, cols, err := d.load(ctx)
	if err != nil {
		return false, err
	}

	rowIdx := findUserRow(rows, cols.username, username)
	if rowIdx < 0 {
		d.l.Warnf(ctx, "sheets directory: leave application for unknown user %s", username)
		return false, nil
	}

	balance, ok := parseBalance(cellString(rows[rowIdx], cols.remaining))
	if !ok {
		d.l.Warnf(ctx, "sheets directory: unparseable balance for user %s, rejecting application", username)
		return false, nil
	}

	if balance < days {
		d.l.Infof(ctx, "sheets directory: insufficient balance for user %s (%.1f < %.1f)", username, balance, days)
		return false, nil
	}

	newBalance := balance - days

	// Sheet rows are 1-based and rowIdx 0 is the header.
	cellRange := fmt.Sprintf("%s!%s%d", d.sheetName, columnLetter(cols.remaining), rowIdx+1)
	if err := d.client.UpdateCell(ctx, d.spreadsheetID, cellRange, newBalance); err != nil {
		return false, fmt.Errorf("failed to update balance: %w", err)
	}

	d.l.Infof(ctx, "sheets directory: applied %.1f days leave for user %s, %.1f remaining", days, username, newBalance)
	return true, nil
}

type columnIndexes struct {
	username  int
	grade     int
	remaining int
}

// load reads the whole sheet and maps the header row into column indexes.
func (d *implDirectory) load(ctx context.Context) ([][]interface{}, columnIndexes, error) {
	rows, err := d.client.ReadRange(ctx, d.spreadsheetID, d.sheetName)
	if err != nil {
		return nil, columnIndexes{}, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, columnIndexes{}, fmt.Errorf("sheet %q is empty", d.sheetName)
	}

	cols := columnIndexes{username: -1, grade: -1, remaining: -1}
	for i, cell := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(fmt.Sprint(cell))) {
		case columnUsername:
			cols.username = i
		case columnGrade:
			cols.grade = i
		case columnRemainingLeaves:
			cols.remaining = i
		}
	}

	if cols.username < 0 || cols.grade < 0 || cols.remaining < 0 {
		return nil, columnIndexes{}, fmt.Errorf("sheet %q is missing required columns", d.sheetName)
	}

	return rows, cols, nil
}

// findUserRow returns the 0-based row index of the user, or -1.
// Matching is case-insensitive. The header row is skipped.
func findUserRow(rows [][]interface{}, usernameCol int, username string) int {
	target := strings.ToLower(strings.TrimSpace(username))
	for i := 1; i < len(rows); i++ {
		if strings.ToLower(strings.TrimSpace(cellString(rows[i], usernameCol))) == target {
			return i
		}
	}
	return -1
}

func cellString(row []interface{}, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return fmt.Sprint(row[col])
}

func parseBalance(raw string) (float64, bool) {
	balance, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || balance < 0 {
		return 0, false
	}
	return balance, true
}

// columnLetter converts a 0-based column index to its A1 letter(s).
func columnLetter(col int) string {
	letters := ""
	for col >= 0 {
		letters = string(rune('A'+col%26)) + letters
		col = col/26 - 1
	}
	return letters
}
