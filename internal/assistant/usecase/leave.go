package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/internal/router"
)

// applyForLeave parses the day count from the command, submits the
// application, and reports the refreshed balance.
func (uc *implUseCase) applyForLeave(ctx context.Context, query string, user model.UserContext) (string, error) {
	days, ok := parseLeaveDays(query)
	if !ok {
		return "", assistant.ErrMissingDays
	}

	if days < uc.cfg.MinLeaveDays || days > uc.cfg.MaxLeaveDays {
		return "", fmt.Errorf("%w: %.1f", assistant.ErrDaysOutOfRange, days)
	}

	app := model.LeaveApplication{
		Username: user.Username,
		Days:     days,
		Status:   model.LeaveStatusPending,
	}

	dirCtx, cancel := uc.withTimeout(ctx, uc.cfg.DirectoryTimeout)
	defer cancel()

	accepted, err := uc.directory.ApplyForLeave(dirCtx, app.Username, app.Days)
	if err != nil {
		return "", &assistant.BackendError{Op: "leave_apply", Err: err}
	}
	if !accepted {
		app.Status = model.LeaveStatusRejected
		uc.l.Infof(ctx, "applyForLeave: user=%s days=%s status=%s", app.Username, formatDays(app.Days), app.Status)
		return "", assistant.ErrLeaveRejected
	}

	// Best-effort refresh so the reply shows the decremented balance.
	balance := "N/A"
	if refreshed := uc.refreshUser(ctx, app.Username); refreshed != nil && refreshed.RemainingLeaves != nil {
		balance = formatBalance(*refreshed.RemainingLeaves)
	}

	uc.l.Infof(ctx, "applyForLeave: user=%s days=%s status=%s", app.Username, formatDays(app.Days), app.Status)

	return fmt.Sprintf("✅ **Leave Application Submitted Successfully!**\n\n"+
		"📊 **Details:**\n"+
		"• Applied for: **%s days**\n"+
		"• Remaining leaves: **%s days**\n"+
		"• Status: **%s** ⏳\n\n"+
		"You will receive confirmation once your application is reviewed.",
		formatDays(app.Days), balance, app.Status), nil
}

// leaveBalance reports the current balance, refreshed from the
// directory when reachable.
func (uc *implUseCase) leaveBalance(ctx context.Context, user model.UserContext) string {
	balance := "N/A"
	if user.RemainingLeaves != nil {
		balance = formatBalance(*user.RemainingLeaves)
	}
	if refreshed := uc.refreshUser(ctx, user.Username); refreshed != nil && refreshed.RemainingLeaves != nil {
		balance = formatBalance(*refreshed.RemainingLeaves)
	}
	return balanceReply(balance)
}

// refreshUser re-reads the directory record. Failures are logged, not
// surfaced: a stale balance beats a failed command.
func (uc *implUseCase) refreshUser(ctx context.Context, username string) *model.UserContext {
	dirCtx, cancel := uc.withTimeout(ctx, uc.cfg.DirectoryTimeout)
	defer cancel()

	refreshed, err := uc.directory.GetUser(dirCtx, username)
	if err != nil {
		uc.l.Warnf(ctx, "refreshUser: could not refresh user %s: %v", username, err)
		return nil
	}
	return refreshed
}

func (uc *implUseCase) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// parseLeaveDays scans the command tokens and returns the first one
// that parses as a number. Zero counts as unspecified.
func parseLeaveDays(query string) (float64, bool) {
	for _, token := range strings.Fields(router.Normalize(query)) {
		days, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if days == 0 {
			return 0, false
		}
		return days, true
	}
	return 0, false
}

// formatDays keeps one decimal for whole numbers ("2.0") and the
// shortest form otherwise ("2.5").
func formatDays(days float64) string {
	if days == math.Trunc(days) {
		return strconv.FormatFloat(days, 'f', 1, 64)
	}
	return strconv.FormatFloat(days, 'f', -1, 64)
}

// formatBalance renders a balance without trailing zeros ("8", "9.5").
func formatBalance(balance float64) string {
	return strconv.FormatFloat(balance, 'f', -1, 64)
}
