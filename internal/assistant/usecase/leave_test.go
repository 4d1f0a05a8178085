package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bank-policy-assistant/internal/model"
	"bank-policy-assistant/internal/router"
)

func floatPtr(f float64) *float64 { return &f }

func TestHandleQuery_LeaveApply(t *testing.T) {
	user := model.UserContext{Username: "alice", Grade: "G5", RemainingLeaves: floatPtr(10)}

	t.Run("Success with fractional days", func(t *testing.T) {
		var appliedDays float64
		directory := &mockDirectory{
			applyForLeaveFunc: func(ctx context.Context, username string, days float64) (bool, error) {
				appliedDays = days
				return true, nil
			},
			getUserFunc: func(ctx context.Context, username string) (*model.UserContext, error) {
				return &model.UserContext{Username: "alice", Grade: "G5", RemainingLeaves: floatPtr(7.5)}, nil
			},
		}

		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, err := uc.HandleQuery(context.Background(), "apply for leave 2.5", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != router.IntentLeaveApply {
			t.Errorf("unexpected intent: %s", out.Intent)
		}
		if appliedDays != 2.5 {
			t.Errorf("expected 2.5 days applied, got %v", appliedDays)
		}
		if !strings.Contains(out.Reply, "**2.5 days**") {
			t.Errorf("expected applied days in reply, got %q", out.Reply)
		}
		if !strings.Contains(out.Reply, "**7.5 days**") {
			t.Errorf("expected refreshed balance in reply, got %q", out.Reply)
		}
		if !strings.Contains(out.Reply, "Pending Approval") {
			t.Errorf("expected pending status in reply, got %q", out.Reply)
		}
	})

	t.Run("Whole days keep one decimal", func(t *testing.T) {
		directory := &mockDirectory{
			applyForLeaveFunc: func(ctx context.Context, username string, days float64) (bool, error) {
				return true, nil
			},
			getUserFunc: func(ctx context.Context, username string) (*model.UserContext, error) {
				return &model.UserContext{Username: "alice", RemainingLeaves: floatPtr(8)}, nil
			},
		}

		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "apply for leave 2", user)
		if !strings.Contains(out.Reply, "**2.0 days**") {
			t.Errorf("expected '2.0 days', got %q", out.Reply)
		}
		if !strings.Contains(out.Reply, "**8 days**") {
			t.Errorf("expected '8 days' balance, got %q", out.Reply)
		}
	})

	t.Run("Missing days", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, &mockDirectory{}, nil, defaultTestConfig())

		out, err := uc.HandleQuery(context.Background(), "apply for leave", user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != missingDaysReply {
			t.Errorf("expected guidance reply, got %q", out.Reply)
		}
	})

	t.Run("Zero days treated as missing", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, &mockDirectory{}, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "apply for leave 0", user)
		if out.Reply != missingDaysReply {
			t.Errorf("expected guidance reply, got %q", out.Reply)
		}
	})

	t.Run("Days out of range skip the directory", func(t *testing.T) {
		directory := &mockDirectory{
			applyForLeaveFunc: func(ctx context.Context, username string, days float64) (bool, error) {
				t.Error("directory should not be called for out-of-range days")
				return false, nil
			},
		}
		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "apply for leave 45", user)
		if !strings.Contains(out.Reply, "Application Error") {
			t.Errorf("expected range error reply, got %q", out.Reply)
		}

		out, _ = uc.HandleQuery(context.Background(), "apply for leave 0.25", user)
		if !strings.Contains(out.Reply, "Application Error") {
			t.Errorf("expected range error reply for below-minimum, got %q", out.Reply)
		}
	})

	t.Run("Rejected application", func(t *testing.T) {
		directory := &mockDirectory{
			applyForLeaveFunc: func(ctx context.Context, username string, days float64) (bool, error) {
				return false, nil
			},
		}
		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "apply for leave 3", user)
		if out.Reply != leaveFailedReply {
			t.Errorf("expected failure reply, got %q", out.Reply)
		}
	})

	t.Run("Backend failure", func(t *testing.T) {
		directory := &mockDirectory{
			applyForLeaveFunc: func(ctx context.Context, username string, days float64) (bool, error) {
				return false, errors.New("sheets unreachable")
			},
		}
		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "apply for leave 3", user)
		if !strings.Contains(out.Reply, "Failed to apply for leave") || !strings.Contains(out.Reply, "sheets unreachable") {
			t.Errorf("expected backend error reply, got %q", out.Reply)
		}
	})

	t.Run("Refresh failure falls back to N/A", func(t *testing.T) {
		directory := &mockDirectory{
			applyForLeaveFunc: func(ctx context.Context, username string, days float64) (bool, error) {
				return true, nil
			},
			getUserFunc: func(ctx context.Context, username string) (*model.UserContext, error) {
				return nil, errors.New("sheets unreachable")
			},
		}
		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "apply for leave 3", user)
		if !strings.Contains(out.Reply, "**N/A days**") {
			t.Errorf("expected N/A balance, got %q", out.Reply)
		}
		if !strings.Contains(out.Reply, "Submitted Successfully") {
			t.Errorf("application should still succeed, got %q", out.Reply)
		}
	})
}

func TestHandleQuery_LeaveBalance(t *testing.T) {
	t.Run("Refreshed balance", func(t *testing.T) {
		directory := &mockDirectory{
			getUserFunc: func(ctx context.Context, username string) (*model.UserContext, error) {
				return &model.UserContext{Username: "alice", RemainingLeaves: floatPtr(9.5)}, nil
			},
		}
		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, err := uc.HandleQuery(context.Background(), "what is my leave balance?", model.UserContext{Username: "alice", RemainingLeaves: floatPtr(10)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Intent != router.IntentLeaveBalance {
			t.Errorf("unexpected intent: %s", out.Intent)
		}
		if out.Reply != balanceReply("9.5") {
			t.Errorf("expected refreshed balance reply, got %q", out.Reply)
		}
	})

	t.Run("Stale balance when refresh fails", func(t *testing.T) {
		directory := &mockDirectory{
			getUserFunc: func(ctx context.Context, username string) (*model.UserContext, error) {
				return nil, errors.New("sheets unreachable")
			},
		}
		uc := newTestUseCase(nil, nil, directory, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "remaining leaves", model.UserContext{Username: "alice", RemainingLeaves: floatPtr(10)})
		if out.Reply != balanceReply("10") {
			t.Errorf("expected stale balance reply, got %q", out.Reply)
		}
	})

	t.Run("No balance on record", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, &mockDirectory{}, nil, defaultTestConfig())

		out, _ := uc.HandleQuery(context.Background(), "how many leaves do I have", model.UserContext{Username: "alice"})
		if out.Reply != balanceReply("N/A") {
			t.Errorf("expected N/A reply, got %q", out.Reply)
		}
	})
}

func TestParseLeaveDays(t *testing.T) {
	cases := []struct {
		query string
		days  float64
		ok    bool
	}{
		{"apply for leave 2", 2, true},
		{"apply for leave 2.5", 2.5, true},
		{"apply for leave", 0, false},
		{"apply for leave tomorrow", 0, false},
		{"apply for leave 0", 0, false},
		{"apply for leave 3 days", 3, true},
	}

	for _, tc := range cases {
		days, ok := parseLeaveDays(tc.query)
		if days != tc.days || ok != tc.ok {
			t.Errorf("parseLeaveDays(%q) = (%v, %v), want (%v, %v)", tc.query, days, ok, tc.days, tc.ok)
		}
	}
}
