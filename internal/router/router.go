package router

import (
	"strings"
)

// Normalize lowercases and trims the query the same way Classify does.
// Exported so callers can parse command arguments from the exact string
// the router matched against.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Classify determines user intent from the message. Matching is
// first-match-wins in priority order: leave application (prefix),
// leave balance, greeting, help, thanks, then policy query as the
// default. The function is pure: same input, same intent.
func (r *KeywordRouter) Classify(query string) Intent {
	normalized := Normalize(query)

	if strings.HasPrefix(normalized, LeaveApplyPrefix) {
		return IntentLeaveApply
	}

	if containsAny(normalized, leaveBalanceKeywords) {
		return IntentLeaveBalance
	}

	if containsAny(normalized, greetingKeywords) {
		return IntentGreeting
	}

	if containsAny(normalized, helpKeywords) {
		return IntentHelp
	}

	if containsAny(normalized, thanksKeywords) {
		return IntentThanks
	}

	return IntentPolicyQuery
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
