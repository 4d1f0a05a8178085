package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/internal/router"
)

func TestHandleQuery_CannedIntents(t *testing.T) {
	uc := newTestUseCase(nil, nil, &mockDirectory{}, nil, defaultTestConfig())
	user := model.UserContext{Username: "alice", Grade: "G5"}

	t.Run("Greeting", func(t *testing.T) {
		out, err := uc.HandleQuery(context.Background(), "hello", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != router.IntentGreeting {
			t.Errorf("unexpected intent: %s", out.Intent)
		}
		if !strings.Contains(out.Reply, "Hello alice!") {
			t.Errorf("expected personalized greeting, got %q", out.Reply)
		}
	})

	t.Run("Help", func(t *testing.T) {
		out, _ := uc.HandleQuery(context.Background(), "what can you do?", user)
		if out.Intent != router.IntentHelp {
			t.Errorf("unexpected intent: %s", out.Intent)
		}
		if out.Reply != helpReply {
			t.Errorf("expected help reply, got %q", out.Reply)
		}
	})

	t.Run("Thanks", func(t *testing.T) {
		out, _ := uc.HandleQuery(context.Background(), "thanks!", user)
		if out.Intent != router.IntentThanks {
			t.Errorf("unexpected intent: %s", out.Intent)
		}
		if out.Reply != thanksReply {
			t.Errorf("expected thanks reply, got %q", out.Reply)
		}
	})
}

func TestHandleQuery_EmptyQuery(t *testing.T) {
	uc := newTestUseCase(nil, nil, &mockDirectory{}, nil, defaultTestConfig())

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := uc.HandleQuery(context.Background(), query, model.UserContext{Username: "alice"})
		if !errors.Is(err, assistant.ErrEmptyQuery) {
			t.Errorf("HandleQuery(%q): expected ErrEmptyQuery, got %v", query, err)
		}
	}
}
