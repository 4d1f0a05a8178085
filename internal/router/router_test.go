package router_test

import (
	"testing"

	"bank-policy-assistant/internal/router"
)

func TestKeywordRouter_Classify(t *testing.T) {
	r := router.New(nil)

	cases := []struct {
		name  string
		query string
		want  router.Intent
	}{
		{"leave apply simple", "apply for leave 2", router.IntentLeaveApply},
		{"leave apply fractional", "apply for leave 2.5", router.IntentLeaveApply},
		{"leave apply no days", "apply for leave", router.IntentLeaveApply},
		{"leave apply uppercase", "APPLY FOR LEAVE 3", router.IntentLeaveApply},
		{"leave apply leading whitespace", "   apply for leave 1  ", router.IntentLeaveApply},
		{"apply mentioned mid-sentence is a question", "how do I apply for leave?", router.IntentPolicyQuery},

		{"balance phrase", "what is my leave balance?", router.IntentLeaveBalance},
		{"remaining leaves", "remaining leaves please", router.IntentLeaveBalance},
		{"how many leaves", "How many leaves do I have left", router.IntentLeaveBalance},
		{"my leaves", "show my leaves", router.IntentLeaveBalance},

		{"hello", "Hello", router.IntentGreeting},
		{"hi", "hi there", router.IntentGreeting},
		{"good morning", "Good Morning!", router.IntentGreeting},

		{"help", "help", router.IntentHelp},
		{"what can you do", "what can you do?", router.IntentHelp},
		{"commands", "list commands", router.IntentHelp},

		{"thanks", "thanks a lot", router.IntentThanks},
		{"thank you", "Thank you!", router.IntentThanks},
		{"appreciate", "I appreciate it", router.IntentThanks},

		{"policy default", "what is the travel allowance policy?", router.IntentPolicyQuery},
		{"fuel question", "can I claim fuel expenses", router.IntentPolicyQuery},
		{"empty string", "", router.IntentPolicyQuery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Classify(tc.query)
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.query, got, tc.want)
			}
		})
	}

	t.Run("Repeatable", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if got := r.Classify("apply for leave 5"); got != router.IntentLeaveApply {
				t.Fatalf("run %d: got %s", i, got)
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	if got := router.Normalize("  Apply FOR Leave 2.5  "); got != "apply for leave 2.5" {
		t.Errorf("unexpected normalized query: %q", got)
	}
}
