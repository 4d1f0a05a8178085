package model

// UserContext carries the employee record used to personalize answers
// and apply leave operations. RemainingLeaves is nil when the directory
// has no parseable balance for the user.
type UserContext struct {
	Username        string
	Grade           string
	RemainingLeaves *float64
}
