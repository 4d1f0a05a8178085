package router

// Intent represents user's intention
type Intent string

const (
	IntentLeaveApply   Intent = "LEAVE_APPLY"
	IntentLeaveBalance Intent = "LEAVE_BALANCE"
	IntentGreeting     Intent = "GREETING"
	IntentHelp         Intent = "HELP"
	IntentThanks       Intent = "THANKS"
	IntentPolicyQuery  Intent = "POLICY_QUERY"
)
