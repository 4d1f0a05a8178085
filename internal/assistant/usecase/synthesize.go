package usecase

import (
	"context"
	"strings"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/pkg/llmprovider"
)

// answerPolicyQuery runs the full RAG flow: retrieve, synthesize, and
// refine. An empty answer gets one retry with fresh retrieval before
// falling back to the HR contact reply.
func (uc *implUseCase) answerPolicyQuery(ctx context.Context, query string, user model.UserContext) (string, error) {
	answer, err := uc.retrieveAndSynthesize(ctx, query, user.Grade)
	if err != nil {
		return "", err
	}

	if answer == "" {
		uc.l.Warnf(ctx, "answerPolicyQuery: empty answer, retrying once")
		answer, err = uc.retrieveAndSynthesize(ctx, query, user.Grade)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", assistant.ErrEmptyAnswer
		}
	}

	return uc.refine(answer, user), nil
}

func (uc *implUseCase) retrieveAndSynthesize(ctx context.Context, query, grade string) (string, error) {
	policyContext, err := uc.retrieveContext(ctx, query)
	if err != nil {
		return "", err
	}
	return uc.synthesize(ctx, policyContext, query, grade)
}

// synthesize calls the LLM and applies the conciseness gate: verbose
// answers get a second, colder summarization pass. A failed
// summarization keeps the original answer.
func (uc *implUseCase) synthesize(ctx context.Context, policyContext, question, grade string) (string, error) {
	answer, err := uc.generate(ctx, buildPrompt(policyContext, question, grade), uc.cfg.LLMTemperature, MaxAnswerTokens)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", nil
	}

	if strings.Count(answer, ". ") > MaxSentenceMarkers || len(answer) > MaxAnswerChars {
		uc.l.Infof(ctx, "synthesize: summarizing verbose answer (%d chars)", len(answer))

		summary, err := uc.generate(ctx, summarizationPromptPrefix+answer, SummaryTemperature, SummaryMaxTokens)
		if err != nil || summary == "" {
			uc.l.Warnf(ctx, "synthesize: summarization failed, keeping original answer: %v", err)
			return answer, nil
		}
		return summary, nil
	}

	return answer, nil
}

// generate performs one LLM call through the provider chain.
func (uc *implUseCase) generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	llmCtx, cancel := uc.withTimeout(ctx, uc.cfg.LLMTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(llmCtx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role: "user",
				Parts: []llmprovider.Part{
					{Text: prompt},
				},
			},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", &assistant.ProviderError{Err: err}
	}

	return strings.TrimSpace(resp.Text()), nil
}
