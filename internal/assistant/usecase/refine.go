package usecase

import (
	"fmt"
	"strings"

	"bank-policy-assistant/internal/model"
)

// balanceLineMarker guards against appending the balance line twice
// when refine is applied to an already refined answer.
const balanceLineMarker = "💼 **Your current leave balance:**"

// refine post-processes a synthesized answer: trims whitespace and, for
// leave-related answers, appends the user's balance. Idempotent.
func (uc *implUseCase) refine(answer string, user model.UserContext) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return noAnswerReply(uc.cfg.HRContact)
	}

	if strings.Contains(strings.ToLower(answer), "leave") &&
		user.RemainingLeaves != nil &&
		!strings.Contains(answer, balanceLineMarker) {
		answer += fmt.Sprintf("\n\n%s %s days", balanceLineMarker, formatBalance(*user.RemainingLeaves))
	}

	return answer
}
