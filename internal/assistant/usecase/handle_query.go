package usecase

import (
	"context"
	"errors"
	"strings"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/internal/router"
)

// HandleQuery routes the query by intent and returns the final reply.
// Failures inside the flows are formatted into user-facing text here;
// the only error surfaced to the caller is ErrEmptyQuery.
func (uc *implUseCase) HandleQuery(ctx context.Context, query string, user model.UserContext) (assistant.Output, error) {
	if strings.TrimSpace(query) == "" {
		return assistant.Output{}, assistant.ErrEmptyQuery
	}

	intent := uc.router.Classify(query)
	uc.l.Infof(ctx, "HandleQuery: user=%s intent=%s query=%q", user.Username, intent, query)

	var reply string
	var err error

	switch intent {
	case router.IntentLeaveApply:
		reply, err = uc.applyForLeave(ctx, query, user)
	case router.IntentLeaveBalance:
		reply = uc.leaveBalance(ctx, user)
	case router.IntentGreeting:
		reply = greetingReply(user.Username)
	case router.IntentHelp:
		reply = helpReply
	case router.IntentThanks:
		reply = thanksReply
	default:
		reply, err = uc.answerPolicyQuery(ctx, query, user)
	}

	if err != nil {
		reply = uc.formatError(ctx, err)
	}

	return assistant.Output{Reply: reply, Intent: intent}, nil
}

// formatError turns a flow error into the reply the user sees.
func (uc *implUseCase) formatError(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, assistant.ErrMissingDays):
		return missingDaysReply
	case errors.Is(err, assistant.ErrDaysOutOfRange):
		return daysOutOfRangeReply(uc.cfg.MinLeaveDays, uc.cfg.MaxLeaveDays)
	case errors.Is(err, assistant.ErrLeaveRejected):
		return leaveFailedReply
	case errors.Is(err, assistant.ErrEmptyAnswer):
		return noAnswerReply(uc.cfg.HRContact)
	}

	var backendErr *assistant.BackendError
	if errors.As(err, &backendErr) {
		uc.l.Errorf(ctx, "HandleQuery: backend failure in %s: %v", backendErr.Op, backendErr.Err)
		if strings.HasPrefix(backendErr.Op, "leave") {
			return leaveBackendErrorReply(backendErr.Err)
		}
		return providerErrorReply(backendErr.Err)
	}

	var providerErr *assistant.ProviderError
	if errors.As(err, &providerErr) {
		uc.l.Errorf(ctx, "HandleQuery: provider failure: %v", providerErr.Err)
		return providerErrorReply(providerErr.Err)
	}

	uc.l.Errorf(ctx, "HandleQuery: unexpected failure: %v", err)
	return providerErrorReply(err)
}
