package model

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending Approval"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// LeaveApplication records a submitted leave request.
type LeaveApplication struct {
	Username string
	Days     float64
	Status   LeaveStatus
}
