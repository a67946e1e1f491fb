package payment

type Status string

const (
	StatusPending  = Status("PENDING")
	StatusApproved = Status("APPROVED")
	// StatusDeclined is never produced by Pay.
	StatusDeclined = Status("DECLINED")
)
