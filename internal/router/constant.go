package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// LeaveApplyPrefix must start the message for a leave application.
// Containment is not enough: "how do I apply for leave" is a policy
// question, not a command.
const LeaveApplyPrefix = "apply for leave"

// Keyword tables checked by containment, in priority order.
var (
	leaveBalanceKeywords = []string{
		"leave balance",
		"remaining leaves",
		"how many leaves",
		"my leaves",
	}

	greetingKeywords = []string{
		"hello",
		"hi",
		"hey",
		"good morning",
		"good afternoon",
	}

	helpKeywords = []string{
		"help",
		"what can you do",
		"how to use",
		"commands",
	}

	thanksKeywords = []string{
		"thank you",
		"thanks",
		"appreciate",
	}
)
