package usecase

import "fmt"

// Fixed replies for conversational intents. These never touch the
// vector store or the LLM.

const helpReply = "🤖 **I'm your Bank Policy Assistant!** Here's what I can help you with:\n\n" +
	"**📋 Policy Questions:**\n" +
	"• Medical/Health policies\n" +
	"• Travel and transport allowances\n" +
	"• Loan and advance policies\n" +
	"• Performance bonuses\n" +
	"• Exit procedures\n\n" +
	"**🌿 Leave Management:**\n" +
	"• Check your leave balance\n" +
	"• Apply for leave (e.g., 'apply for leave 2')\n" +
	"• Leave policy information\n\n" +
	"**💡 Examples:**\n" +
	"• 'What is the medical policy?'\n" +
	"• 'How do I get travel allowance?'\n" +
	"• 'Apply for leave 1.5'\n" +
	"• 'What is my leave balance?'\n\n" +
	"Just ask me anything in natural language! 😊"

const thanksReply = "You're welcome! 😊 Feel free to ask me anything else about bank policies or leave applications."

const missingDaysReply = "❌ Please specify leave days like: 'apply for leave 2.5' or 'apply for leave 1'"

const leaveFailedReply = "❌ Leave application failed. Please try again or contact HR."

func greetingReply(username string) string {
	return fmt.Sprintf("Hello %s! 👋 I'm here to help you with bank policy questions and leave applications. What can I assist you with today?", username)
}

func balanceReply(balance string) string {
	return fmt.Sprintf("💼 Your current leave balance: **%s days**", balance)
}

func noAnswerReply(hrContact string) string {
	return fmt.Sprintf("🤔 I couldn't find a clear answer to your question in the bank policies. Please contact HR at **%s** for assistance, or try rephrasing your question.", hrContact)
}

func providerErrorReply(err error) string {
	return fmt.Sprintf("⚠️ Sorry, there was an error processing your question: %v", err)
}

func leaveBackendErrorReply(err error) string {
	return fmt.Sprintf("❌ **Failed to apply for leave:** %v", err)
}

func daysOutOfRangeReply(min, max float64) string {
	return fmt.Sprintf("❌ **Application Error:** leave days must be between %.1f and %.1f", min, max)
}
